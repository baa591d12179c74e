package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Anshgoswami194/mind-embrace-connect/internal/api/router"
	"github.com/Anshgoswami194/mind-embrace-connect/internal/app/bootstrap"
	"github.com/Anshgoswami194/mind-embrace-connect/internal/assessment"
	"github.com/Anshgoswami194/mind-embrace-connect/internal/booking"
	"github.com/Anshgoswami194/mind-embrace-connect/internal/chat"
	appconfig "github.com/Anshgoswami194/mind-embrace-connect/internal/config"
	"github.com/Anshgoswami194/mind-embrace-connect/internal/content"
	httpmiddleware "github.com/Anshgoswami194/mind-embrace-connect/internal/http/middleware"
	"github.com/Anshgoswami194/mind-embrace-connect/internal/observability/metrics"
	"github.com/Anshgoswami194/mind-embrace-connect/internal/webchat"
	"github.com/Anshgoswami194/mind-embrace-connect/pkg/logging"
)

func main() {
	// A missing .env is fine outside local development.
	_ = godotenv.Load()

	// Load configuration
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting mindcare site API",
		"env", cfg.Env,
		"port", cfg.Port,
		"clinic", cfg.ClinicName,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metricsHandler, siteMetrics := setupMetrics()

	app, err := buildApp(ctx, cfg, logger, siteMetrics, metricsHandler)
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	// Create HTTP server. No write timeout: chat WebSockets are long lived.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           app.Handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	logger.Info("shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}

// app is the wired HTTP surface plus the resources it owns.
type app struct {
	Handler http.Handler
	closers []func()
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func setupMetrics() (http.Handler, *metrics.SiteMetrics) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	siteMetrics := metrics.NewSiteMetrics(reg)
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), siteMetrics
}

// buildApp wires stores, handlers and the router. The content watcher runs
// until ctx is done.
func buildApp(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger, siteMetrics *metrics.SiteMetrics, metricsHandler http.Handler) (*app, error) {
	a := &app{}

	redisClient := bootstrap.BuildRedisClient(ctx, cfg, logger, true)
	if redisClient != nil {
		logger.Info("redis sessions enabled", "addr", cfg.RedisAddr)
		a.closers = append(a.closers, func() { _ = redisClient.Close() })
	}

	library, err := content.NewLibrary(cfg.ContentDir, logger.Named("content"))
	if err != nil {
		return nil, fmt.Errorf("load site content: %w", err)
	}
	if err := library.Watch(ctx, nil); err != nil {
		logger.Warn("content watcher disabled", "error", err)
	}

	sender := bootstrap.BuildEmailSender(cfg, logger.Named("email"))
	notifier := bootstrap.BuildBookingNotifier(cfg, sender, logger.Named("booking"))

	limiter := httpmiddleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	a.closers = append(a.closers, limiter.Stop)

	a.Handler = router.New(&router.Config{
		Logger: logger,
		Assessment: assessment.NewHandler(
			assessment.DefaultQuestions(),
			bootstrap.BuildAssessmentStore(redisClient, cfg),
			siteMetrics,
			logger.Named("assessment"),
		),
		Chat: webchat.NewHandler(
			chat.NewResponder(chat.DefaultCatalog()),
			bootstrap.BuildChatStore(redisClient, cfg),
			siteMetrics,
			webchat.Config{OptionDelay: cfg.ChatOptionDelay, TextDelay: cfg.ChatTextDelay},
			logger.Named("webchat"),
		),
		Booking:            booking.NewHandler(notifier, siteMetrics, logger.Named("booking")),
		Content:            content.NewHandler(library, logger.Named("content")),
		MetricsHandler:     metricsHandler,
		RateLimiter:        limiter,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})
	return a, nil
}
