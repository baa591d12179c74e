package chat

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrUnknownCategory is returned for category ids outside the catalog.
	ErrUnknownCategory = errors.New("chat: unknown category")
	// ErrInvalidView is returned when an action is not offered by the current view.
	ErrInvalidView = errors.New("chat: action not available in current view")
	// ErrEmptyMessage is returned for blank free text.
	ErrEmptyMessage = errors.New("chat: message is empty")
)

// View is what the widget offers below the transcript.
type View string

const (
	ViewCategories      View = "categories"
	ViewCategoryOptions View = "category_options"
	ViewQuickActions    View = "quick_actions"
)

// Delivery is a reply waiting to be appended to the transcript.
// Generation ties it to the session state it was produced for.
type Delivery struct {
	SessionID  string `json:"session_id"`
	Generation uint64 `json:"generation"`
	Reply      Reply  `json:"reply"`
}

// State is the persisted form of a Session.
type State struct {
	ID         string    `json:"id"`
	Messages   []Message `json:"messages"`
	View       View      `json:"view"`
	Category   string    `json:"category,omitempty"`
	Generation uint64    `json:"generation"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Session is one visitor's conversation. It is not safe for concurrent use;
// callers give each session a single owner.
type Session struct {
	id         string
	transcript *Transcript
	view       View
	category   string
	generation uint64
	responder  *Responder
}

// NewSession starts a conversation with the greeting and the category view.
func NewSession(id string, responder *Responder) *Session {
	if responder == nil {
		responder = NewResponder(nil)
	}
	return &Session{
		id:         id,
		transcript: NewTranscript(Greeting),
		view:       ViewCategories,
		responder:  responder,
	}
}

// RestoreSession rebuilds a session from state.
func RestoreSession(state State, responder *Responder) *Session {
	if responder == nil {
		responder = NewResponder(nil)
	}
	s := &Session{
		id:         state.ID,
		transcript: restoreTranscript(state.Messages),
		view:       state.View,
		category:   state.Category,
		generation: state.Generation,
		responder:  responder,
	}
	if s.transcript.Len() == 0 {
		s.transcript.Reset(Greeting)
	}
	switch s.view {
	case ViewCategories, ViewCategoryOptions, ViewQuickActions:
	default:
		s.view = ViewCategories
		s.category = ""
	}
	return s
}

func (s *Session) ID() string            { return s.id }
func (s *Session) View() View            { return s.view }
func (s *Session) Category() string      { return s.category }
func (s *Session) Generation() uint64    { return s.generation }
func (s *Session) Messages() []Message   { return s.transcript.Messages() }
func (s *Session) Responder() *Responder { return s.responder }

// Options lists what the category options view offers.
func (s *Session) Options() []Option {
	if s.view != ViewCategoryOptions {
		return nil
	}
	return s.responder.catalog.OptionsFor(s.category)
}

// SelectCategory opens a category from the category view.
func (s *Session) SelectCategory(id string) error {
	if s.view != ViewCategories {
		return ErrInvalidView
	}
	if _, ok := s.responder.catalog.Category(id); !ok {
		return fmt.Errorf("%w %q", ErrUnknownCategory, id)
	}
	s.view = ViewCategoryOptions
	s.category = id
	return nil
}

// Back returns from a category's options to the category view.
func (s *Session) Back() error {
	if s.view != ViewCategoryOptions {
		return ErrInvalidView
	}
	s.view = ViewCategories
	s.category = ""
	return nil
}

// ChooseOption records the option label as the user's message and returns
// the reply to deliver.
func (s *Session) ChooseOption(id string) (Message, Delivery, error) {
	if s.view != ViewCategoryOptions {
		return Message{}, Delivery{}, ErrInvalidView
	}
	reply, err := s.responder.RespondOption(id)
	if err != nil {
		return Message{}, Delivery{}, fmt.Errorf("%w %q", err, id)
	}
	opt, _ := s.responder.catalog.Option(id)
	msg := s.transcript.Append(Message{Role: RoleUser, Content: opt.Label, Category: opt.Category})
	return msg, s.pending(reply), nil
}

// Followup records a follow-up label as the user's message.
func (s *Session) Followup(label string) (Message, Delivery, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Message{}, Delivery{}, ErrEmptyMessage
	}
	msg := s.transcript.Append(Message{Role: RoleUser, Content: label})
	return msg, s.pending(s.responder.RespondFollowup(label)), nil
}

// SendText records free text and returns the keyword reply.
func (s *Session) SendText(text string) (Message, Delivery, error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, Delivery{}, ErrEmptyMessage
	}
	msg := s.transcript.Append(Message{Role: RoleUser, Content: text})
	return msg, s.pending(s.responder.RespondText(text)), nil
}

// Deliver appends a scheduled reply. Deliveries made before the latest
// reset are dropped and report false.
func (s *Session) Deliver(d Delivery) (Message, bool) {
	if d.Generation != s.generation {
		return Message{}, false
	}
	msg := s.transcript.Append(Message{
		Role:     RoleAssistant,
		Content:  d.Reply.Content,
		Category: d.Reply.Category,
	})
	if d.Reply.Kind == KindOption {
		s.view = ViewQuickActions
	}
	return msg, true
}

// Reset starts the conversation over. Pending deliveries become stale.
func (s *Session) Reset() {
	s.generation++
	s.transcript.Reset(Greeting)
	s.view = ViewCategories
	s.category = ""
}

// State snapshots the session.
func (s *Session) State() State {
	return State{
		ID:         s.id,
		Messages:   s.transcript.Messages(),
		View:       s.view,
		Category:   s.category,
		Generation: s.generation,
		UpdatedAt:  time.Now().UTC(),
	}
}

func (s *Session) pending(reply Reply) Delivery {
	return Delivery{SessionID: s.id, Generation: s.generation, Reply: reply}
}
