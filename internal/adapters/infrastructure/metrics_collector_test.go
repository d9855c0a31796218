package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMetricsCollector_Cache(t *testing.T) {
	m := NewPrometheusMetricsCollector(prometheus.NewRegistry())
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		m.RecordCacheHit(ctx, "cities")
	}
	for i := 0; i < 3; i++ {
		m.RecordCacheMiss(ctx, "cities")
	}

	assert.Equal(t, 7.0, testutil.ToFloat64(m.cacheHits.WithLabelValues("cities")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.cacheMisses.WithLabelValues("cities")))
	assert.InDelta(t, 0.7, testutil.ToFloat64(m.cacheHitRatio.WithLabelValues("cities")), 1e-9)

	stats := m.CacheStats()["cities"]
	assert.Equal(t, int64(7), stats.Hits)
	assert.Equal(t, int64(3), stats.Misses)
	assert.Equal(t, int64(10), stats.Total)
}

func TestPrometheusMetricsCollector_Coordinator(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetricsCollector(reg)
	at := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	m.RecordRefresh("en-1", "success", 150*time.Millisecond)
	m.RecordRefresh("en-1", "timeout", 30*time.Second)
	m.SetLastSuccess("en-1", at)
	m.SetListeners("en-1", 4)
	m.RecordSourceCall(context.Background(), "forecast", false, time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.refreshes.WithLabelValues("en-1", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.refreshes.WithLabelValues("en-1", "timeout")))
	assert.Equal(t, float64(at.Unix()), testutil.ToFloat64(m.lastSuccess.WithLabelValues("en-1")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.listeners.WithLabelValues("en-1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sourceRequests.WithLabelValues("forecast", "failure")))

	count, err := testutil.GatherAndCount(reg, "imsweather_coordinator_refresh_duration_seconds")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPrometheusMetricsCollector_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheusMetricsCollector(prometheus.NewRegistry())
		NewPrometheusMetricsCollector(prometheus.NewRegistry())
	})
}
