package assessment

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Anshgoswami194/mind-embrace-connect/internal/notify"
	"github.com/Anshgoswami194/mind-embrace-connect/pkg/logging"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// BookingNotice is shown when a respondent asks to book from the results view.
var BookingNotice = notify.Toast{
	Title:       "Booking Consultation",
	Description: "Redirecting you to our booking system...",
}

// Recorder counts completed assessments.
type Recorder interface {
	ObserveAssessment(tier string)
}

// Handler exposes the questionnaire and stepper sessions over HTTP.
type Handler struct {
	questions []Question
	store     SessionStore
	metrics   Recorder
	logger    *logging.Logger
	now       func() time.Time
}

// NewHandler creates an assessment handler. A nil store falls back to memory.
func NewHandler(questions []Question, store SessionStore, metrics Recorder, logger *logging.Logger) *Handler {
	if store == nil {
		store = NewMemoryStore(0)
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		questions: questions,
		store:     store,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// Routes mounts the assessment endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/questions", h.HandleQuestions)
	r.Post("/score", h.HandleScore)
	r.Post("/sessions", h.HandleStart)
	r.Get("/sessions/{id}", h.HandleGet)
	r.Post("/sessions/{id}/answer", h.HandleAnswer)
	r.Post("/sessions/{id}/next", h.navigate(func(s *Stepper) error { return s.Next() }))
	r.Post("/sessions/{id}/previous", h.navigate(func(s *Stepper) error { return s.Previous() }))
	r.Post("/sessions/{id}/retake", h.navigate(func(s *Stepper) error { return s.Retake() }))
}

// SessionView is the client-facing rendering of a stepper.
type SessionView struct {
	SessionID      string        `json:"session_id"`
	Status         string        `json:"status"`
	QuestionIndex  int           `json:"question_index"`
	TotalQuestions int           `json:"total_questions"`
	Progress       float64       `json:"progress"`
	Question       *Question     `json:"question,omitempty"`
	SelectedValue  string        `json:"selected_value,omitempty"`
	CanGoBack      bool          `json:"can_go_back"`
	CanAdvance     bool          `json:"can_advance"`
	NextLabel      string        `json:"next_label,omitempty"`
	Result         *Result       `json:"result,omitempty"`
	Disclaimer     string        `json:"disclaimer"`
	BookingNotice  *notify.Toast `json:"booking_notice,omitempty"`
}

// NewSessionView renders the stepper for session id.
func NewSessionView(id string, s *Stepper) SessionView {
	view := SessionView{
		SessionID:      id,
		QuestionIndex:  s.Index(),
		TotalQuestions: s.Total(),
		Disclaimer:     Disclaimer,
	}
	if res, ok := s.Result(); ok {
		view.Status = "completed"
		view.Progress = 100
		view.Result = &res
		notice := BookingNotice
		view.BookingNotice = &notice
		return view
	}

	q, _ := s.Question()
	view.Status = "in_progress"
	view.Progress = s.Progress()
	view.Question = &q
	view.SelectedValue = s.Selected()
	view.CanGoBack = s.CanGoBack()
	view.CanAdvance = s.CanAdvance()
	view.NextLabel = "Next"
	if s.IsLast() {
		view.NextLabel = "Get Results"
	}
	return view
}

// HandleQuestions handles GET /questions.
func (h *Handler) HandleQuestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"questions":  h.questions,
		"max_score":  MaxScore(h.questions),
		"disclaimer": Disclaimer,
	})
}

// HandleScore handles POST /score with a complete answer set.
func (h *Handler) HandleScore(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Answers Answers `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	res := Score(req.Answers, h.questions)
	if h.metrics != nil {
		h.metrics.ObserveAssessment(res.Tier.String())
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleStart handles POST /sessions.
func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	stepper := NewStepper(h.questions)
	now := h.now().UTC()
	session := &Session{
		ID:        uuid.New().String(),
		State:     stepper.State(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.store.Save(r.Context(), session); err != nil {
		h.logger.Error("assessment: failed to save session", "error", err)
		jsonError(w, "failed to start assessment", http.StatusInternalServerError)
		return
	}
	h.logger.Info("assessment: session started", "session_id", session.ID)
	writeJSON(w, http.StatusCreated, NewSessionView(session.ID, stepper))
}

// HandleGet handles GET /sessions/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	session, stepper, ok := h.load(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, NewSessionView(session.ID, stepper))
}

// HandleAnswer handles POST /sessions/{id}/answer.
func (h *Handler) HandleAnswer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	session, stepper, ok := h.load(w, r)
	if !ok {
		return
	}
	if err := stepper.Answer(req.Value); err != nil {
		h.writeStepError(w, err)
		return
	}
	h.persist(w, r, session, stepper)
}

func (h *Handler) navigate(step func(*Stepper) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, stepper, ok := h.load(w, r)
		if !ok {
			return
		}
		wasCompleted := stepper.Completed()
		if err := step(stepper); err != nil {
			h.writeStepError(w, err)
			return
		}
		if !wasCompleted && stepper.Completed() && h.metrics != nil {
			res, _ := stepper.Result()
			h.metrics.ObserveAssessment(res.Tier.String())
		}
		h.persist(w, r, session, stepper)
	}
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) (*Session, *Stepper, bool) {
	id := chi.URLParam(r, "id")
	session, err := h.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			jsonError(w, "assessment session not found", http.StatusNotFound)
			return nil, nil, false
		}
		h.logger.Error("assessment: failed to load session", "error", err, "session_id", id)
		jsonError(w, "failed to load assessment", http.StatusInternalServerError)
		return nil, nil, false
	}
	stepper, err := RestoreStepper(h.questions, session.State)
	if err != nil {
		h.logger.Warn("assessment: discarding unusable session", "error", err, "session_id", id)
		jsonError(w, "assessment session not found", http.StatusNotFound)
		return nil, nil, false
	}
	return session, stepper, true
}

func (h *Handler) persist(w http.ResponseWriter, r *http.Request, session *Session, stepper *Stepper) {
	session.State = stepper.State()
	session.UpdatedAt = h.now().UTC()
	if err := h.store.Save(r.Context(), session); err != nil {
		h.logger.Error("assessment: failed to save session", "error", err, "session_id", session.ID)
		jsonError(w, "failed to save assessment", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, NewSessionView(session.ID, stepper))
}

func (h *Handler) writeStepError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnknownOption):
		jsonError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrUnanswered), errors.Is(err, ErrFirstQuestion),
		errors.Is(err, ErrCompleted), errors.Is(err, ErrNotCompleted):
		jsonError(w, err.Error(), http.StatusConflict)
	default:
		jsonError(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}
