package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "github.com/Anshgoswami194/mind-embrace-connect/internal/config"
	"github.com/Anshgoswami194/mind-embrace-connect/pkg/logging"
)

func testConfig() *appconfig.Config {
	return &appconfig.Config{
		ClinicName:      "Mantara",
		SessionTTL:      time.Hour,
		ChatOptionDelay: time.Millisecond,
		ChatTextDelay:   time.Millisecond,
		RateLimitRPS:    100,
		RateLimitBurst:  100,
	}
}

func TestSetupMetricsExposesSiteMetrics(t *testing.T) {
	handler, siteMetrics := setupMetrics()
	require.NotNil(t, handler)
	require.NotNil(t, siteMetrics)

	siteMetrics.ObserveAssessment("Mild")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "mindcare_assessment_completed_total")
}

func TestBuildAppServesSite(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metricsHandler, siteMetrics := setupMetrics()
	a, err := buildApp(ctx, testConfig(), logging.New("error"), siteMetrics, metricsHandler)
	require.NoError(t, err)
	defer a.Close()

	for _, path := range []string{"/health", "/metrics", "/", "/api/pages/services", "/api/assessment/questions", "/api/chat/catalog"} {
		rr := httptest.NewRecorder()
		a.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rr.Code, path)
	}

	rr := httptest.NewRecorder()
	body := `{"name":"Ana","email":"ana@example.com","phone":"555-123-4567"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	a.Handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestBuildAppUsesRedisSessions(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig()
	cfg.RedisAddr = mr.Addr()

	metricsHandler, siteMetrics := setupMetrics()
	a, err := buildApp(context.Background(), cfg, logging.New("error"), siteMetrics, metricsHandler)
	require.NoError(t, err)
	defer a.Close()

	rr := httptest.NewRecorder()
	a.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/chat/sessions", nil))
	require.Equal(t, http.StatusCreated, rr.Code)

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.True(t, strings.HasPrefix(keys[0], "chat_session:"))
}

func TestBuildAppRejectsBadContentDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "site.yaml"), []byte("clinic: [broken"), 0o644))

	cfg := testConfig()
	cfg.ContentDir = dir
	metricsHandler, siteMetrics := setupMetrics()
	_, err := buildApp(context.Background(), cfg, logging.New("error"), siteMetrics, metricsHandler)
	assert.Error(t, err)
}
