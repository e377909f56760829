/*
Package storetest provides an in-memory ObjectStore for tests.
*/
package storetest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/adampresley/photovault/pkg/models"
	"github.com/adampresley/photovault/pkg/store"
)

type object struct {
	data         []byte
	contentType  string
	lastModified time.Time
}

/*
MemoryStore keeps objects in insertion order. Setting one of the Fail
fields makes the matching operation return that error wrapped in
store.ErrUnavailable.
*/
type MemoryStore struct {
	mu      sync.Mutex
	keys    []string
	objects map[string]object

	FailList   error
	FailGet    error
	FailPut    error
	FailDelete error

	ListCalls int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		keys:    []string{},
		objects: map[string]object{},
	}
}

/*
Seed adds objects with the given keys. Each body is the key itself.
*/
func (m *MemoryStore) Seed(keys ...string) *MemoryStore {
	for _, key := range keys {
		_ = m.Put(context.Background(), key, bytes.NewReader([]byte(key)), int64(len(key)), "")
	}

	return m
}

func (m *MemoryStore) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string{}, m.keys...)
}

func (m *MemoryStore) ContentType(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.objects[key].contentType
}

func (m *MemoryStore) ListAll(ctx context.Context) ([]models.StoreEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ListCalls++

	if m.FailList != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrUnavailable, m.FailList)
	}

	result := []models.StoreEntry{}

	for _, key := range m.keys {
		obj := m.objects[key]
		result = append(result, models.StoreEntry{
			Key:          key,
			Size:         int64(len(obj.data)),
			LastModified: obj.lastModified,
		})
	}

	return result, nil
}

func (m *MemoryStore) Get(ctx context.Context, key string) (store.Object, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailGet != nil {
		return store.Object{}, fmt.Errorf("%w: %w", store.ErrUnavailable, m.FailGet)
	}

	obj, ok := m.objects[key]
	if !ok {
		return store.Object{}, fmt.Errorf("%w: The specified key does not exist.", store.ErrNotFound)
	}

	return store.Object{
		Body:        io.NopCloser(bytes.NewReader(obj.data)),
		ContentType: obj.contentType,
		Size:        int64(len(obj.data)),
	}, nil
}

func (m *MemoryStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	if m.FailPut != nil {
		return fmt.Errorf("%w: %w", store.ErrUnavailable, m.FailPut)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("%w: %w", store.ErrUnavailable, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.objects[key]; !exists {
		m.keys = append(m.keys, key)
	}

	m.objects[key] = object{
		data:         data,
		contentType:  contentType,
		lastModified: time.Date(2024, 8, 14, 12, 0, 0, 0, time.UTC),
	}

	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailDelete != nil {
		return fmt.Errorf("%w: %w", store.ErrUnavailable, m.FailDelete)
	}

	if _, ok := m.objects[key]; !ok {
		return nil
	}

	delete(m.objects, key)

	for index, existing := range m.keys {
		if existing == key {
			m.keys = append(m.keys[:index], m.keys[index+1:]...)
			break
		}
	}

	return nil
}
