package list

import (
	"encoding/json"
	"fmt"
)

// Message kinds carried over the wire. The shapes are symmetric: the server
// rebroadcasts the exact frame a client sent, and clients feed received
// frames back through Apply.
const (
	TypeInit            = "init"
	TypeUpdateName      = "update-name"
	TypeAdd             = "add"
	TypeUpdate          = "update"
	TypeDelete          = "delete"
	TypeDeleteCompleted = "delete-completed"
	TypeTextUpdate      = "text-update"
)

// Message is the single envelope for every frame. Which fields are meaningful
// depends on Type; Validate enforces that.
type Message struct {
	Type string `json:"type"`
	List *List  `json:"list,omitempty"`
	Name string `json:"name,omitempty"`
	Todo *Todo  `json:"todo,omitempty"`
	ID   string `json:"id,omitempty"`
	Text string `json:"text,omitempty"`
}

// Decode parses and validates a raw frame.
func Decode(raw []byte) (Message, error) {
	var m Message
	if err := json.Unmarshal(raw, &m); err != nil {
		return Message{}, fmt.Errorf("failed to decode message: %w", err)
	}
	if err := m.Validate(); err != nil {
		return Message{}, err
	}
	return m, nil
}

// Validate checks that the payload required by the message type is present.
func (m Message) Validate() error {
	switch m.Type {
	case TypeInit:
		if m.List == nil {
			return fmt.Errorf("init message is missing its list")
		}
	case TypeUpdateName, TypeDeleteCompleted:
	case TypeAdd, TypeUpdate:
		if m.Todo == nil {
			return fmt.Errorf("%s message is missing its todo", m.Type)
		}
		if m.Todo.ID == "" {
			return fmt.Errorf("%s message has a todo without an id", m.Type)
		}
	case TypeDelete:
		if m.ID == "" {
			return fmt.Errorf("delete message is missing an id")
		}
	case TypeTextUpdate:
		if m.ID == "" {
			return fmt.Errorf("text-update message is missing an id")
		}
	default:
		return fmt.Errorf("unrecognized message type %q", m.Type)
	}
	return nil
}
