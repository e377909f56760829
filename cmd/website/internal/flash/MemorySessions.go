package flash

import (
	"fmt"
	"net/http"
	"sync"
)

/*
MemorySessions is a SessionStore that keeps a single value in memory. It
stands in for the cookie store in handler tests.
*/
type MemorySessions struct {
	mu    sync.Mutex
	value *Messages
	Saves int
}

func NewMemorySessions() *MemorySessions {
	return &MemorySessions{}
}

func (m *MemorySessions) Get(r *http.Request) (*Messages, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.value == nil {
		return nil, fmt.Errorf("no session value")
	}

	copied := &Messages{Items: append([]Message{}, m.value.Items...)}
	return copied, nil
}

func (m *MemorySessions) Set(r *http.Request, value *Messages) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.value = value
	return nil
}

func (m *MemorySessions) Save(w http.ResponseWriter, r *http.Request) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Saves++
	return nil
}
