package router

import (
	"encoding/json"
	"net/http"

	"github.com/Anshgoswami194/mind-embrace-connect/internal/assessment"
	"github.com/Anshgoswami194/mind-embrace-connect/internal/booking"
	"github.com/Anshgoswami194/mind-embrace-connect/internal/content"
	httpmiddleware "github.com/Anshgoswami194/mind-embrace-connect/internal/http/middleware"
	"github.com/Anshgoswami194/mind-embrace-connect/internal/webchat"
	"github.com/Anshgoswami194/mind-embrace-connect/pkg/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	Assessment         *assessment.Handler
	Chat               *webchat.Handler
	Booking            *booking.Handler
	Content            *content.Handler
	MetricsHandler     http.Handler
	RateLimiter        *httpmiddleware.RateLimiter
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	// The WebSocket upgrade stays outside Compress.
	if cfg.Chat != nil {
		r.Get("/chat/ws", cfg.Chat.HandleWebSocket)
	}

	r.Group(func(site chi.Router) {
		site.Use(middleware.Compress(5))

		site.Route("/api", func(api chi.Router) {
			if cfg.RateLimiter != nil {
				api.Use(limitWrites(cfg.RateLimiter))
			}
			if cfg.Assessment != nil {
				api.Route("/assessment", cfg.Assessment.Routes)
			}
			if cfg.Chat != nil {
				api.Route("/chat", cfg.Chat.Routes)
			}
			if cfg.Booking != nil {
				api.Get("/bookings/options", cfg.Booking.HandleOptions)
				api.Post("/bookings", cfg.Booking.HandleCreate)
			}
			if cfg.Content != nil {
				api.Get("/pages", cfg.Content.HandleNavigation)
				api.Get("/pages/{page}", cfg.Content.HandlePageJSON)
			}
		})

		if cfg.Content != nil {
			site.Get("/", cfg.Content.HandlePageHTML)
			site.Get("/{page}", cfg.Content.HandlePageHTML)
		}
	})

	return r
}

// limitWrites rate limits POST requests; reads pass through.
func limitWrites(limiter *httpmiddleware.RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		limited := httpmiddleware.RateLimit(limiter)(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost {
				limited.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
