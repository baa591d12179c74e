package content

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"strings"

	"github.com/Anshgoswami194/mind-embrace-connect/pkg/logging"
	"github.com/go-chi/chi/v5"
)

//go:embed templates/page.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("page.html").Funcs(template.FuncMap{
	"actionHref": actionHref,
	"stars":      func(n int) string { return strings.Repeat("★", n) },
}).ParseFS(templateFS, "templates/page.html"))

// BookingPath is where "booking" actions point.
const BookingPath = "/#book"

// actionHref only ever yields fixed paths, so the tel: scheme is marked safe.
func actionHref(target string) template.URL {
	switch target {
	case "booking":
		return BookingPath
	case "tel":
		return "tel:+1555MANTARA"
	}
	return template.URL("/" + Resolve(target))
}

// Handler serves pages as JSON and HTML.
type Handler struct {
	library *Library
	logger  *logging.Logger
}

// NewHandler creates a content handler.
func NewHandler(library *Library, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{library: library, logger: logger}
}

// PageResponse is the JSON form of a page.
type PageResponse struct {
	Clinic     string    `json:"clinic"`
	Requested  string    `json:"requested"`
	Page       Page      `json:"page"`
	Navigation []NavItem `json:"navigation"`
}

// HandleNavigation handles GET /api/pages.
func (h *Handler) HandleNavigation(w http.ResponseWriter, r *http.Request) {
	site := h.library.Site()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"clinic":     site.Clinic,
		"tagline":    site.Tagline,
		"navigation": site.Navigation,
	})
}

// HandlePageJSON handles GET /api/pages/{page}.
func (h *Handler) HandlePageJSON(w http.ResponseWriter, r *http.Request) {
	requested := chi.URLParam(r, "page")
	site := h.library.Site()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(PageResponse{
		Clinic:     site.Clinic,
		Requested:  requested,
		Page:       site.Page(requested),
		Navigation: site.Navigation,
	})
}

// HandlePageHTML handles GET / and GET /{page}.
func (h *Handler) HandlePageHTML(w http.ResponseWriter, r *http.Request) {
	site := h.library.Site()
	data := struct {
		Site *Site
		Page Page
	}{Site: site, Page: site.Page(chi.URLParam(r, "page"))}

	var buf strings.Builder
	if err := pageTemplate.Execute(&buf, data); err != nil {
		h.logger.Error("content: render page failed", "error", err, "page", data.Page.ID)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(buf.String()))
}
