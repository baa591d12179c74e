package booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Anshgoswami194/mind-embrace-connect/pkg/logging"
)

// Notifier is told about accepted requests.
type Notifier interface {
	Notify(ctx context.Context, req ConsultationRequest) error
}

// Recorder counts booking submissions by outcome.
type Recorder interface {
	ObserveBooking(status string)
}

// Handler handles HTTP requests for the booking form.
type Handler struct {
	notifier Notifier
	metrics  Recorder
	logger   *logging.Logger
	now      func() time.Time
}

// NewHandler creates a booking handler. notifier and metrics may be nil.
func NewHandler(notifier Notifier, metrics Recorder, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
	}
}

// ErrorResponse is returned for rejected requests.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// HandleOptions handles GET /bookings/options.
func (h *Handler) HandleOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"time_slots":    TimeSlots,
		"therapy_types": TherapyTypes,
	})
}

// HandleCreate handles POST /bookings. The request is acknowledged, never stored.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req ConsultationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("booking: failed to decode request", "error", err)
		h.observe("invalid")
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	req.Normalize()

	if err := req.Validate(h.now()); err != nil {
		h.observe("invalid")
		var verr ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid booking request", Fields: verr.Fields()})
			return
		}
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	// Personal details stay out of logs.
	h.logger.Info("booking: consultation requested", "therapy_type", req.TherapyType, "has_date", req.PreferredDate != "")

	if h.notifier != nil {
		if err := h.notifier.Notify(r.Context(), req); err != nil {
			h.logger.Error("booking: staff notification failed", "error", err)
		}
	}
	h.observe("accepted")
	writeJSON(w, http.StatusOK, Confirmation)
}

func (h *Handler) observe(status string) {
	if h.metrics != nil {
		h.metrics.ObserveBooking(status)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
