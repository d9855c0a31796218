package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"imsweather.app/internal/core/weather"
	"imsweather.app/internal/mocks"
	"imsweather.app/internal/ports"
	"imsweather.app/pkg/errors"
)

type fixedBreaker string

func (b fixedBreaker) BreakerState() string { return string(b) }

type staticLister []*weather.Coordinator

func (l staticLister) Coordinators() []*weather.Coordinator { return l }

func TestDatabaseHealthChecker(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		require.NoError(t, err)

		status := NewDatabaseHealthChecker(db).Check(context.Background())
		assert.Equal(t, "healthy", status.Status)
		assert.Equal(t, "sqlite", status.Details["dialect"])
	})

	t.Run("NilDatabase", func(t *testing.T) {
		status := NewDatabaseHealthChecker(nil).Check(context.Background())
		assert.Equal(t, "unhealthy", status.Status)
	})
}

func TestIMSHealthChecker(t *testing.T) {
	t.Run("Online", func(t *testing.T) {
		probe := mocks.NewStatusProbe(t)
		probe.EXPECT().IsOnline(mock.Anything, "en", "1").Return(nil).Once()

		status := NewIMSHealthChecker(probe, fixedBreaker("closed"), "en", "1").Check(context.Background())
		assert.Equal(t, "healthy", status.Status)
		assert.Equal(t, "closed", status.Details["circuit_breaker"])
		assert.Contains(t, status.Details, "latency_ms")
	})

	t.Run("Offline", func(t *testing.T) {
		probe := mocks.NewStatusProbe(t)
		probe.EXPECT().IsOnline(mock.Anything, "en", "1").
			Return(errors.NewExternalAPIError("IMS API returned status 503", nil)).Once()

		status := NewIMSHealthChecker(probe, nil, "en", "1").Check(context.Background())
		assert.Equal(t, "unhealthy", status.Status)
		assert.Contains(t, status.Error, "503")
	})
}

func TestCacheHealthChecker(t *testing.T) {
	t.Run("MemoryCacheWithoutPing", func(t *testing.T) {
		status := NewCacheHealthChecker("memory", mocks.NewCacheProvider(t)).Check(context.Background())
		assert.Equal(t, "healthy", status.Status)
		assert.Equal(t, "memory", status.Details["type"])
	})

	t.Run("NilCache", func(t *testing.T) {
		status := NewCacheHealthChecker("redis", nil).Check(context.Background())
		assert.Equal(t, "unhealthy", status.Status)
	})
}

func TestCoordinatorsHealthChecker(t *testing.T) {
	logger := quietLogger(t)
	metrics := mocks.NewMetricsCollector(t)
	metrics.EXPECT().RecordRefresh(mock.Anything, mock.Anything, mock.Anything).Maybe()
	metrics.EXPECT().RecordSourceCall(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()

	source := mocks.NewWeatherSource(t)
	source.EXPECT().GetCurrentAnalysis(mock.Anything).
		Return(nil, errors.NewExternalAPIError("IMS request failed", nil))

	coordinator, err := weather.NewCoordinator(weather.CoordinatorConfig{
		Key:      weather.LocationKey{Language: "en", LocationID: "1"},
		Interval: time.Hour,
		Timeout:  time.Second,
		Location: time.UTC,
	}, weather.CoordinatorDependencies{
		Source:    source,
		Scheduler: mocks.NewScheduler(t),
		Logger:    logger,
		Metrics:   metrics,
	})
	require.NoError(t, err)

	checker := NewCoordinatorsHealthChecker(staticLister{coordinator})

	status := checker.Check(context.Background())
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, 1, status.Details["count"])

	require.Error(t, coordinator.Refresh(context.Background()))

	status = checker.Check(context.Background())
	assert.Equal(t, "degraded", status.Status)
	assert.Equal(t, []string{"en-1"}, status.Details["failing"])
}

type staticChecker ports.HealthStatus

func (s staticChecker) Check(context.Context) ports.HealthStatus { return ports.HealthStatus(s) }

func TestSystemHealthChecker_CheckAll(t *testing.T) {
	configProvider := mocks.NewConfigProvider(t)
	configProvider.EXPECT().GetIMSConfig().Return(ports.IMSConfig{BaseURL: "https://ims.gov.il"})
	configProvider.EXPECT().GetCoordinatorConfig().Return(ports.CoordinatorConfig{
		DefaultInterval: time.Hour,
		TimeZone:        "Asia/Jerusalem",
	})

	checker := NewSystemHealthChecker(SystemHealthCheckerConfig{
		Checkers: []ports.HealthChecker{
			staticChecker{Component: "database", Status: "healthy"},
			staticChecker{Component: "coordinators", Status: "degraded"},
			nil,
		},
		ConfigProvider: configProvider,
	})

	results := checker.CheckAll(context.Background())
	require.Len(t, results, 3)
	assert.Equal(t, "https://ims.gov.il", results["config"].Details["imsBaseURL"])
	assert.Equal(t, "1h0m0s", results["config"].Details["defaultInterval"])
	assert.Equal(t, "degraded", results["coordinators"].Status)
}
