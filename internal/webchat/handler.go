package webchat

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Anshgoswami194/mind-embrace-connect/internal/chat"
	"github.com/Anshgoswami194/mind-embrace-connect/pkg/logging"
	"github.com/google/uuid"
	"golang.org/x/net/websocket"
)

// Inbound message types.
const (
	TypeSelectCategory = "select_category"
	TypeBack           = "back"
	TypeOption         = "option"
	TypeFollowup       = "followup"
	TypeMessage        = "message"
	TypeReset          = "reset"
	TypePing           = "ping"
)

// Recorder receives chat activity counts.
type Recorder interface {
	ObserveChatReply(kind, category string)
	ChatConnectionOpened()
	ChatConnectionClosed()
}

// Config tunes reply pacing.
type Config struct {
	OptionDelay time.Duration
	TextDelay   time.Duration
}

// Handler serves chat sessions over WebSocket with an HTTP fallback.
type Handler struct {
	responder *chat.Responder
	store     chat.SessionStore
	metrics   Recorder
	logger    *logging.Logger
	cfg       Config
}

// InboundMessage is a visitor action.
type InboundMessage struct {
	Type     string `json:"type"`
	Category string `json:"category,omitempty"`
	Option   string `json:"option,omitempty"`
	Text     string `json:"text,omitempty"`
}

// OutboundMessage is sent to the visitor.
type OutboundMessage struct {
	Type      string         `json:"type"`
	SessionID string         `json:"session_id,omitempty"`
	Message   *chat.Message  `json:"message,omitempty"`
	Messages  []chat.Message `json:"messages,omitempty"`
	View      *ViewState     `json:"view,omitempty"`
	Text      string         `json:"text,omitempty"`
	DelayMS   int64          `json:"delay_ms,omitempty"`
}

// ViewState describes the controls shown under the transcript.
type ViewState struct {
	View         chat.View          `json:"view"`
	Category     *chat.Category     `json:"category,omitempty"`
	Categories   []chat.Category    `json:"categories,omitempty"`
	Options      []chat.Option      `json:"options,omitempty"`
	QuickActions []chat.QuickAction `json:"quick_actions,omitempty"`
	Disclaimer   string             `json:"disclaimer"`
}

// NewHandler creates a chat handler. A nil store keeps sessions in memory.
func NewHandler(responder *chat.Responder, store chat.SessionStore, metrics Recorder, cfg Config, logger *logging.Logger) *Handler {
	if responder == nil {
		responder = chat.NewResponder(nil)
	}
	if store == nil {
		store = chat.NewMemoryStore(0)
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.OptionDelay <= 0 {
		cfg.OptionDelay = chat.DefaultOptionDelay
	}
	if cfg.TextDelay <= 0 {
		cfg.TextDelay = chat.DefaultTextDelay
	}
	return &Handler{
		responder: responder,
		store:     store,
		metrics:   metrics,
		logger:    logger,
		cfg:       cfg,
	}
}

func (h *Handler) delay(kind string) time.Duration {
	if kind == chat.KindText {
		return h.cfg.TextDelay
	}
	return h.cfg.OptionDelay
}

func newViewState(sess *chat.Session) *ViewState {
	vs := &ViewState{View: sess.View(), Disclaimer: chat.Disclaimer}
	catalog := sess.Responder().Catalog()
	switch sess.View() {
	case chat.ViewCategories:
		vs.Categories = catalog.Categories
	case chat.ViewCategoryOptions:
		if cat, ok := catalog.Category(sess.Category()); ok {
			vs.Category = &cat
		}
		vs.Options = sess.Options()
	case chat.ViewQuickActions:
		vs.QuickActions = chat.QuickActions
	}
	return vs
}

// openSession loads id, or starts a new session when id is empty or unknown.
func (h *Handler) openSession(ctx context.Context, id string) (*chat.Session, error) {
	if id != "" {
		state, err := h.store.Load(ctx, id)
		if err == nil {
			return chat.RestoreSession(state, h.responder), nil
		}
		if !errors.Is(err, chat.ErrSessionNotFound) {
			return nil, err
		}
	}
	sess := chat.NewSession(uuid.New().String(), h.responder)
	if err := h.store.Save(ctx, sess.State()); err != nil {
		return nil, err
	}
	return sess, nil
}

// apply performs one visitor action. It returns the user's message and the
// reply to deliver for actions that produce one.
func (h *Handler) apply(sess *chat.Session, msg InboundMessage) (*chat.Message, *chat.Delivery, error) {
	var (
		user chat.Message
		d    chat.Delivery
		err  error
	)
	switch msg.Type {
	case TypeSelectCategory:
		return nil, nil, sess.SelectCategory(msg.Category)
	case TypeBack:
		return nil, nil, sess.Back()
	case TypeReset:
		sess.Reset()
		return nil, nil, nil
	case TypeOption:
		user, d, err = sess.ChooseOption(msg.Option)
	case TypeFollowup:
		user, d, err = sess.Followup(msg.Text)
	case TypeMessage:
		user, d, err = sess.SendText(msg.Text)
	default:
		return nil, nil, errUnknownType
	}
	if err != nil {
		return nil, nil, err
	}
	return &user, &d, nil
}

var errUnknownType = errors.New("webchat: unknown message type")

// deliver appends a reply and records it.
func (h *Handler) deliver(sess *chat.Session, d chat.Delivery) (chat.Message, bool) {
	msg, ok := sess.Deliver(d)
	if !ok {
		return chat.Message{}, false
	}
	if h.metrics != nil {
		h.metrics.ObserveChatReply(d.Reply.Kind, d.Reply.Category)
	}
	return msg, true
}

func (h *Handler) save(ctx context.Context, sess *chat.Session) {
	if err := h.store.Save(ctx, sess.State()); err != nil {
		h.logger.Error("webchat: failed to save session", "error", err, "session_id", sess.ID())
	}
}

// HandleWebSocket upgrades to WebSocket and handles real-time messaging.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	websocket.Handler(func(conn *websocket.Conn) {
		h.serveWS(conn, r)
	}).ServeHTTP(w, r)
}

func (h *Handler) serveWS(conn *websocket.Conn, r *http.Request) {
	defer conn.Close()
	ctx := r.Context()
	sess, err := h.openSession(ctx, r.URL.Query().Get("session"))
	if err != nil {
		h.logger.Error("webchat: failed to open session", "error", err)
		_ = websocket.JSON.Send(conn, OutboundMessage{Type: "error", Text: "Sorry, something went wrong. Please try again."})
		return
	}

	_ = websocket.JSON.Send(conn, OutboundMessage{Type: "session", SessionID: sess.ID()})
	_ = websocket.JSON.Send(conn, OutboundMessage{Type: "history", Messages: sess.Messages()})
	_ = websocket.JSON.Send(conn, OutboundMessage{Type: "view", View: newViewState(sess)})

	if h.metrics != nil {
		h.metrics.ChatConnectionOpened()
		defer h.metrics.ChatConnectionClosed()
	}
	h.logger.Info("webchat: connection opened", "session_id", sess.ID())

	sched := chat.NewScheduler(h.cfg.OptionDelay, h.cfg.TextDelay)
	defer sched.Stop()

	done := make(chan struct{})
	defer close(done)
	inbound := make(chan InboundMessage)
	go func() {
		defer close(inbound)
		for {
			var msg InboundMessage
			if err := websocket.JSON.Receive(conn, &msg); err != nil {
				h.logger.Debug("webchat: connection closed", "session_id", sess.ID(), "error", err)
				return
			}
			select {
			case inbound <- msg:
			case <-done:
				return
			}
		}
	}()

	// This goroutine is the only one touching sess.
	for {
		select {
		case msg, ok := <-inbound:
			if !ok {
				return
			}
			if msg.Type == TypePing {
				_ = websocket.JSON.Send(conn, OutboundMessage{Type: "pong"})
				continue
			}
			h.handleInbound(ctx, conn, sess, sched, msg)
		case d := <-sched.C():
			before := sess.View()
			reply, ok := h.deliver(sess, d)
			if !ok {
				continue
			}
			h.save(ctx, sess)
			_ = websocket.JSON.Send(conn, OutboundMessage{Type: "message", Message: &reply})
			if sess.View() != before {
				_ = websocket.JSON.Send(conn, OutboundMessage{Type: "view", View: newViewState(sess)})
			}
		}
	}
}

func (h *Handler) handleInbound(ctx context.Context, conn *websocket.Conn, sess *chat.Session, sched *chat.Scheduler, msg InboundMessage) {
	user, d, err := h.apply(sess, msg)
	if err != nil {
		_ = websocket.JSON.Send(conn, OutboundMessage{Type: "error", Text: errorText(err)})
		return
	}
	h.save(ctx, sess)

	if msg.Type == TypeReset {
		_ = websocket.JSON.Send(conn, OutboundMessage{Type: "history", Messages: sess.Messages()})
	}
	if user != nil {
		_ = websocket.JSON.Send(conn, OutboundMessage{Type: "message", Message: user})
	}
	if d != nil {
		sched.Schedule(*d)
		_ = websocket.JSON.Send(conn, OutboundMessage{Type: "typing", DelayMS: sched.Delay(d.Reply.Kind).Milliseconds()})
		return
	}
	_ = websocket.JSON.Send(conn, OutboundMessage{Type: "view", View: newViewState(sess)})
}

func errorText(err error) string {
	switch {
	case errors.Is(err, chat.ErrUnknownCategory):
		return "unknown category"
	case errors.Is(err, chat.ErrUnknownOption):
		return "unknown option"
	case errors.Is(err, chat.ErrInvalidView):
		return "that action is not available right now"
	case errors.Is(err, chat.ErrEmptyMessage):
		return "message is empty"
	case errors.Is(err, errUnknownType):
		return "unknown message type"
	}
	return "Sorry, something went wrong. Please try again."
}
