package chat

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one transcript entry.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Category  string    `json:"category,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Transcript is an append-only message log. It is only ever replaced
// wholesale by Reset.
type Transcript struct {
	messages []Message
	now      func() time.Time
}

// NewTranscript starts a transcript holding a single assistant greeting.
func NewTranscript(greeting string) *Transcript {
	t := &Transcript{now: time.Now}
	t.Reset(greeting)
	return t
}

func restoreTranscript(messages []Message) *Transcript {
	return &Transcript{
		messages: append([]Message(nil), messages...),
		now:      time.Now,
	}
}

// Append adds msg, assigning an id and timestamp when missing.
func (t *Transcript) Append(msg Message) Message {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = t.now().UTC()
	}
	t.messages = append(t.messages, msg)
	return msg
}

// Reset replaces the whole transcript with one assistant greeting.
func (t *Transcript) Reset(greeting string) {
	t.messages = nil
	t.Append(Message{Role: RoleAssistant, Content: greeting})
}

// Messages returns a copy of the transcript in order.
func (t *Transcript) Messages() []Message {
	return append([]Message(nil), t.messages...)
}

// Len is the number of messages.
func (t *Transcript) Len() int { return len(t.messages) }
