package content

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	lib, err := NewLibrary("", nil)
	require.NoError(t, err)
	h := NewHandler(lib, nil)
	r := chi.NewRouter()
	r.Get("/api/pages", h.HandleNavigation)
	r.Get("/api/pages/{page}", h.HandlePageJSON)
	r.Get("/", h.HandlePageHTML)
	r.Get("/{page}", h.HandlePageHTML)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHandlePageJSON(t *testing.T) {
	r := newRouter(t)

	w := get(r, "/api/pages/services")
	require.Equal(t, http.StatusOK, w.Code)
	var resp PageResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, PageServices, resp.Page.ID)
	assert.Equal(t, "Our Services", resp.Page.Hero.Heading)

	w = get(r, "/api/pages/nowhere")
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "nowhere", resp.Requested)
	assert.Equal(t, PageHome, resp.Page.ID)
}

func TestHandleNavigation(t *testing.T) {
	w := get(newRouter(t), "/api/pages")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"clinic":"Mantara"`)
}

func TestHandlePageHTML(t *testing.T) {
	r := newRouter(t)

	w := get(r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	body := w.Body.String()
	assert.Contains(t, body, "Your Mental Health Matters")
	assert.Contains(t, body, `href="/services"`)

	w = get(r, "/about")
	assert.Contains(t, w.Body.String(), "Meet Our Team")

	w = get(r, "/services")
	assert.Contains(t, w.Body.String(), "tel:")

	w = get(r, "/unknown")
	assert.Contains(t, w.Body.String(), "Why Choose MindCare?")
}
