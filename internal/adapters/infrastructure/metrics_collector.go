package infrastructure

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "imsweather"

// CacheStats holds the running hit and miss counts of one cache
type CacheStats struct {
	Hits     int64   `json:"hits"`
	Misses   int64   `json:"misses"`
	Total    int64   `json:"total"`
	HitRatio float64 `json:"hit_ratio"`
}

// PrometheusMetricsCollector implements the MetricsCollector port with
// Prometheus collectors registered on the given registerer.
type PrometheusMetricsCollector struct {
	cacheHits       *prometheus.CounterVec
	cacheMisses     *prometheus.CounterVec
	cacheHitRatio   *prometheus.GaugeVec
	sourceRequests  *prometheus.CounterVec
	sourceLatency   *prometheus.HistogramVec
	refreshes       *prometheus.CounterVec
	refreshDuration *prometheus.HistogramVec
	lastSuccess     *prometheus.GaugeVec
	listeners       *prometheus.GaugeVec

	mu    sync.RWMutex
	stats map[string]*CacheStats
}

// NewPrometheusMetricsCollector registers the collectors on reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewPrometheusMetricsCollector(reg prometheus.Registerer) *PrometheusMetricsCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetricsCollector{
		cacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "cache_hits_total",
			Help:      "The total number of cache hits",
		}, []string{"cache"}),
		cacheMisses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "cache_misses_total",
			Help:      "The total number of cache misses",
		}, []string{"cache"}),
		cacheHitRatio: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "cache_hit_ratio",
			Help:      "Cache hit ratio (hits/total requests)",
		}, []string{"cache"}),
		sourceRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "source_requests_total",
			Help:      "The total number of IMS API calls by call and result",
		}, []string{"call", "result"}),
		sourceLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "source_request_duration_seconds",
			Help:      "IMS API call duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"call"}),
		refreshes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "coordinator_refreshes_total",
			Help:      "The total number of coordinator refresh cycles by outcome",
		}, []string{"key", "outcome"}),
		refreshDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "coordinator_refresh_duration_seconds",
			Help:      "Coordinator refresh cycle duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"key"}),
		lastSuccess: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "coordinator_last_success_timestamp_seconds",
			Help:      "Unix time of the last successful refresh",
		}, []string{"key"}),
		listeners: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "coordinator_listeners",
			Help:      "Number of entities subscribed to a coordinator",
		}, []string{"key"}),
		stats: make(map[string]*CacheStats),
	}
}

func (m *PrometheusMetricsCollector) RecordCacheHit(_ context.Context, cache string) {
	m.cacheHits.WithLabelValues(cache).Inc()
	m.recordCache(cache, true)
}

func (m *PrometheusMetricsCollector) RecordCacheMiss(_ context.Context, cache string) {
	m.cacheMisses.WithLabelValues(cache).Inc()
	m.recordCache(cache, false)
}

func (m *PrometheusMetricsCollector) recordCache(cache string, hit bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.stats[cache]
	if !ok {
		s = &CacheStats{}
		m.stats[cache] = s
	}
	if hit {
		s.Hits++
	} else {
		s.Misses++
	}
	s.Total++
	s.HitRatio = float64(s.Hits) / float64(s.Total)
	m.cacheHitRatio.WithLabelValues(cache).Set(s.HitRatio)
}

func (m *PrometheusMetricsCollector) RecordSourceCall(_ context.Context, call string, success bool, duration time.Duration) {
	result := "success"
	if !success {
		result = "failure"
	}
	m.sourceRequests.WithLabelValues(call, result).Inc()
	m.sourceLatency.WithLabelValues(call).Observe(duration.Seconds())
}

func (m *PrometheusMetricsCollector) RecordRefresh(key string, outcome string, duration time.Duration) {
	m.refreshes.WithLabelValues(key, outcome).Inc()
	m.refreshDuration.WithLabelValues(key).Observe(duration.Seconds())
}

func (m *PrometheusMetricsCollector) SetLastSuccess(key string, at time.Time) {
	m.lastSuccess.WithLabelValues(key).Set(float64(at.Unix()))
}

func (m *PrometheusMetricsCollector) SetListeners(key string, count int) {
	m.listeners.WithLabelValues(key).Set(float64(count))
}

// CacheStats returns a copy of the running counts per cache
func (m *PrometheusMetricsCollector) CacheStats() map[string]CacheStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]CacheStats, len(m.stats))
	for name, s := range m.stats {
		out[name] = *s
	}
	return out
}
