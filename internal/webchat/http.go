package webchat

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Anshgoswami194/mind-embrace-connect/internal/chat"
	"github.com/go-chi/chi/v5"
)

// SessionResponse is the HTTP fallback's view of a session. Replies are
// applied immediately; TypingDelayMS lets a client animate the pause.
type SessionResponse struct {
	SessionID     string         `json:"session_id"`
	Messages      []chat.Message `json:"messages"`
	View          *ViewState     `json:"view"`
	Reply         *chat.Message  `json:"reply,omitempty"`
	TypingDelayMS int64          `json:"typing_delay_ms,omitempty"`
}

// Routes mounts the HTTP fallback endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/catalog", h.HandleCatalog)
	r.Post("/sessions", h.HandleStart)
	r.Get("/sessions/{id}", h.HandleGet)
	r.Post("/sessions/{id}/category", h.action(TypeSelectCategory))
	r.Post("/sessions/{id}/back", h.action(TypeBack))
	r.Post("/sessions/{id}/option", h.action(TypeOption))
	r.Post("/sessions/{id}/followup", h.action(TypeFollowup))
	r.Post("/sessions/{id}/message", h.action(TypeMessage))
	r.Post("/sessions/{id}/reset", h.action(TypeReset))
}

// HandleCatalog returns the categories, options and fixed texts.
func (h *Handler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	catalog := h.responder.Catalog()
	writeJSON(w, http.StatusOK, map[string]any{
		"greeting":      chat.Greeting,
		"disclaimer":    chat.Disclaimer,
		"categories":    catalog.Categories,
		"options":       catalog.Options,
		"quick_actions": chat.QuickActions,
	})
}

// HandleStart creates a session holding only the greeting.
func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	sess, err := h.openSession(r.Context(), "")
	if err != nil {
		h.logger.Error("webchat: failed to start session", "error", err)
		jsonError(w, "failed to start chat", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, h.response(sess, nil, 0))
}

// HandleGet returns a session's transcript and view.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.load(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.response(sess, nil, 0))
}

func (h *Handler) action(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var msg InboundMessage
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil && !errors.Is(err, io.EOF) {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		msg.Type = kind

		sess, ok := h.load(w, r)
		if !ok {
			return
		}
		_, d, err := h.apply(sess, msg)
		if err != nil {
			jsonError(w, errorText(err), statusFor(err))
			return
		}

		var (
			reply *chat.Message
			delay int64
		)
		if d != nil {
			if m, ok := h.deliver(sess, *d); ok {
				reply = &m
				delay = h.delay(d.Reply.Kind).Milliseconds()
			}
		}
		if err := h.store.Save(r.Context(), sess.State()); err != nil {
			h.logger.Error("webchat: failed to save session", "error", err, "session_id", sess.ID())
			jsonError(w, "failed to save chat", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, h.response(sess, reply, delay))
	}
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) (*chat.Session, bool) {
	id := chi.URLParam(r, "id")
	state, err := h.store.Load(r.Context(), id)
	if err != nil {
		if errors.Is(err, chat.ErrSessionNotFound) {
			jsonError(w, "chat session not found", http.StatusNotFound)
			return nil, false
		}
		h.logger.Error("webchat: failed to load session", "error", err, "session_id", id)
		jsonError(w, "failed to load chat", http.StatusInternalServerError)
		return nil, false
	}
	return chat.RestoreSession(state, h.responder), true
}

func (h *Handler) response(sess *chat.Session, reply *chat.Message, delay int64) SessionResponse {
	return SessionResponse{
		SessionID:     sess.ID(),
		Messages:      sess.Messages(),
		View:          newViewState(sess),
		Reply:         reply,
		TypingDelayMS: delay,
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, chat.ErrInvalidView):
		return http.StatusConflict
	case errors.Is(err, chat.ErrUnknownCategory), errors.Is(err, chat.ErrUnknownOption),
		errors.Is(err, chat.ErrEmptyMessage), errors.Is(err, errUnknownType):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}
