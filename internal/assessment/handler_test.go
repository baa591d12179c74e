package assessment

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMetrics struct {
	tiers []string
}

func (m *recordingMetrics) ObserveAssessment(tier string) {
	m.tiers = append(m.tiers, tier)
}

func newTestRouter(t *testing.T) (http.Handler, *recordingMetrics) {
	t.Helper()
	rec := &recordingMetrics{}
	h := NewHandler(DefaultQuestions(), NewMemoryStore(0), rec, nil)
	r := chi.NewRouter()
	r.Route("/api/assessment", h.Routes)
	return r, rec
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) SessionView {
	t.Helper()
	var view SessionView
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	return view
}

func TestHandleQuestions(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(t, r, http.MethodGet, "/api/assessment/questions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Questions  []Question `json:"questions"`
		MaxScore   int        `json:"max_score"`
		Disclaimer string     `json:"disclaimer"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Len(t, body.Questions, 5)
	assert.Equal(t, 15, body.MaxScore)
	assert.Equal(t, Disclaimer, body.Disclaimer)
}

func TestHandleScore(t *testing.T) {
	r, rec := newTestRouter(t)
	answers := Answers{"mood": "several-days", "interest": "several-days", "anxiety": "several-days", "worry": "several-days", "sleep": "good"}

	w := do(t, r, http.MethodPost, "/api/assessment/score", map[string]any{"answers": answers})
	require.Equal(t, http.StatusOK, w.Code)

	var res Result
	require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
	assert.Equal(t, 5, res.Score)
	assert.Equal(t, TierMild, res.Tier)
	assert.Equal(t, []string{"Mild"}, rec.tiers)
}

func TestHandleScore_BadBody(t *testing.T) {
	r, _ := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/api/assessment/score", bytes.NewBufferString("{"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionFlow(t *testing.T) {
	r, rec := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/assessment/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	view := decodeView(t, w)
	require.NotEmpty(t, view.SessionID)
	assert.Equal(t, "in_progress", view.Status)
	assert.Equal(t, "mood", view.Question.ID)
	assert.Equal(t, "Next", view.NextLabel)
	assert.False(t, view.CanAdvance)

	base := "/api/assessment/sessions/" + view.SessionID

	w = do(t, r, http.MethodPost, base+"/next", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	w = do(t, r, http.MethodPost, base+"/previous", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	w = do(t, r, http.MethodPost, base+"/answer", map[string]string{"value": "bogus"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	for i := 0; i < 5; i++ {
		w = do(t, r, http.MethodGet, base, nil)
		view = decodeView(t, w)
		value := view.Question.Options[len(view.Question.Options)-1].Value
		if i == 4 {
			assert.Equal(t, "Get Results", view.NextLabel)
		}

		w = do(t, r, http.MethodPost, base+"/answer", map[string]string{"value": value})
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decodeView(t, w).CanAdvance)

		w = do(t, r, http.MethodPost, base+"/next", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	view = decodeView(t, w)
	assert.Equal(t, "completed", view.Status)
	require.NotNil(t, view.Result)
	assert.Equal(t, 15, view.Result.Score)
	assert.Equal(t, TierSevere, view.Result.Tier)
	require.NotNil(t, view.BookingNotice)
	assert.Equal(t, "Booking Consultation", view.BookingNotice.Title)
	assert.Equal(t, []string{"Severe"}, rec.tiers)

	w = do(t, r, http.MethodPost, base+"/next", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodPost, base+"/retake", nil)
	require.Equal(t, http.StatusOK, w.Code)
	view = decodeView(t, w)
	assert.Equal(t, "in_progress", view.Status)
	assert.Equal(t, 0, view.QuestionIndex)
	assert.Empty(t, view.SelectedValue)
}

func TestSessionNotFound(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(t, r, http.MethodGet, "/api/assessment/sessions/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = do(t, r, http.MethodPost, "/api/assessment/sessions/nope/next", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
