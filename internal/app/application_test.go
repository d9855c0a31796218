package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"imsweather.app/internal/config"
)

func newTestConfig(t *testing.T, imsURL string) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{Port: 0},
		Database: config.DatabaseConfig{
			Driver:     config.DatabaseDriverSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "imsweather.db"),
		},
		IMS: config.IMSConfig{
			BaseURL:               imsURL,
			RequestTimeoutSeconds: 2,
			MaxRetries:            0,
			BreakerFailures:       5,
			BreakerOpenSeconds:    60,
		},
		Coordinator: config.CoordinatorConfig{
			RefreshTimeoutSeconds:  5,
			DefaultIntervalMinutes: 60,
			TimeZone:               "UTC",
		},
		Cities:  config.CitiesConfig{CacheTTLMinutes: 60},
		Cache:   config.CacheConfig{Type: config.CacheTypeMemory},
		Logging: config.LoggingConfig{Level: "info"},
	}
}

func TestApplication_OfflineIMS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ims := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ims.Close()

	application, err := NewApplication(newTestConfig(t, ims.URL))
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, application.Shutdown(context.Background()))
	}()

	require.NoError(t, application.Restore(context.Background()))
	router := application.GetRouter()

	t.Run("NoEntries", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/entries", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("SetupRejectedWhileOffline", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/entries", strings.NewReader(`{"city_id":"1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		views, err := application.GetEntryUseCase().List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("HealthReportsIMS", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var body struct {
			Status     string                    `json:"status"`
			Components map[string]map[string]any `json:"components"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "unhealthy", body.Status)
		assert.Equal(t, "unhealthy", body.Components["ims"]["status"])
		assert.Equal(t, "healthy", body.Components["database"]["status"])
	})

	t.Run("Metrics", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "go_goroutines")
	})

	assert.Empty(t, application.GetRegistry().Coordinators())
}

func TestNewApplication_InvalidTimeZone(t *testing.T) {
	cfg := newTestConfig(t, "http://127.0.0.1:1")
	cfg.Coordinator.TimeZone = "Mars/Olympus"

	_, err := NewApplication(cfg)
	assert.Error(t, err)
}
