package flash

import (
	"log/slog"
	"net/http"
)

type Category string

const (
	Success Category = "success"
	Warning Category = "warning"
	Error   Category = "error"
)

type Message struct {
	Category Category
	Text     string
}

func (m Message) IsSuccess() bool { return m.Category == Success }
func (m Message) IsWarning() bool { return m.Category == Warning }
func (m Message) IsError() bool   { return m.Category == Error }

/*
Messages is the value kept in the session between a redirect and the next
page render. It must be registered with encoding/gob.
*/
type Messages struct {
	Items []Message
}

/*
SessionStore is satisfied by the cookie session wrapper from
adamgokit/sessions.
*/
type SessionStore interface {
	Get(r *http.Request) (*Messages, error)
	Set(r *http.Request, value *Messages) error
	Save(w http.ResponseWriter, r *http.Request) error
}

type FlasherConfig struct {
	Sessions SessionStore
}

type Flasher struct {
	sessions SessionStore
}

func NewFlasher(config FlasherConfig) Flasher {
	return Flasher{
		sessions: config.Sessions,
	}
}

/*
Add queues messages to be shown on the next page the user sees. It must
be called before anything is written to the response.
*/
func (f Flasher) Add(w http.ResponseWriter, r *http.Request, messages ...Message) {
	var (
		err     error
		current *Messages
	)

	if len(messages) == 0 {
		return
	}

	if current, err = f.sessions.Get(r); err != nil || current == nil {
		current = &Messages{}
	}

	current.Items = append(current.Items, messages...)

	if err = f.sessions.Set(r, current); err != nil {
		slog.Error("error setting flash messages", "error", err)
		return
	}

	if err = f.sessions.Save(w, r); err != nil {
		slog.Error("error saving flash messages", "error", err)
	}
}

/*
Pop returns the queued messages and clears them.
*/
func (f Flasher) Pop(w http.ResponseWriter, r *http.Request) []Message {
	var (
		err     error
		current *Messages
	)

	if current, err = f.sessions.Get(r); err != nil || current == nil || len(current.Items) == 0 {
		return []Message{}
	}

	result := current.Items

	if err = f.sessions.Set(r, &Messages{}); err != nil {
		slog.Error("error clearing flash messages", "error", err)
		return result
	}

	if err = f.sessions.Save(w, r); err != nil {
		slog.Error("error saving cleared flash messages", "error", err)
	}

	return result
}

func SuccessMessage(text string) Message {
	return Message{Category: Success, Text: text}
}

func WarningMessage(text string) Message {
	return Message{Category: Warning, Text: text}
}

func ErrorMessage(text string) Message {
	return Message{Category: Error, Text: text}
}
