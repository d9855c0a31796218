package infrastructure

import (
	"context"
	"time"

	"imsweather.app/internal/core/weather"
	"imsweather.app/internal/ports"
)

// BreakerStateProvider exposes the circuit breaker state of a remote client
type BreakerStateProvider interface {
	BreakerState() string
}

// IMSHealthChecker probes the IMS API with a reference location
type IMSHealthChecker struct {
	probe    ports.StatusProbe
	breaker  BreakerStateProvider
	language string
	cityID   string
}

// NewIMSHealthChecker creates a new IMS API health checker; breaker may be nil
func NewIMSHealthChecker(probe ports.StatusProbe, breaker BreakerStateProvider, language, cityID string) *IMSHealthChecker {
	return &IMSHealthChecker{
		probe:    probe,
		breaker:  breaker,
		language: language,
		cityID:   cityID,
	}
}

// Check verifies IMS API connectivity
func (c *IMSHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "ims",
		Status:    "healthy",
		Details: map[string]interface{}{
			"reference_city": c.cityID,
		},
	}
	if c.breaker != nil {
		status.Details["circuit_breaker"] = c.breaker.BreakerState()
	}

	if c.probe == nil {
		status.Status = "unhealthy"
		status.Error = "status probe is not available"
		return status
	}

	started := time.Now()
	err := c.probe.IsOnline(ctx, c.language, c.cityID)
	status.Details["latency_ms"] = time.Since(started).Milliseconds()
	if err != nil {
		status.Status = "unhealthy"
		status.Error = err.Error()
	}
	return status
}

// Pinger is implemented by cache backends that can report connectivity
type Pinger interface {
	Ping(ctx context.Context) error
}

// CacheHealthChecker reports cache backend health
type CacheHealthChecker struct {
	cacheType string
	cache     ports.CacheProvider
}

// NewCacheHealthChecker creates a new cache health checker
func NewCacheHealthChecker(cacheType string, cache ports.CacheProvider) *CacheHealthChecker {
	return &CacheHealthChecker{cacheType: cacheType, cache: cache}
}

// Check pings the cache when the backend supports it
func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Status:    "healthy",
		Details: map[string]interface{}{
			"type": c.cacheType,
		},
	}

	if c.cache == nil {
		status.Status = "unhealthy"
		status.Error = "cache is not available"
		return status
	}

	if pinger, ok := c.cache.(Pinger); ok {
		if err := pinger.Ping(ctx); err != nil {
			status.Status = "unhealthy"
			status.Error = err.Error()
		}
	}
	return status
}

// CoordinatorLister lists the live update coordinators
type CoordinatorLister interface {
	Coordinators() []*weather.Coordinator
}

// CoordinatorsHealthChecker reports coordinators whose last refresh failed
type CoordinatorsHealthChecker struct {
	registry CoordinatorLister
}

// NewCoordinatorsHealthChecker creates a new coordinators health checker
func NewCoordinatorsHealthChecker(registry CoordinatorLister) *CoordinatorsHealthChecker {
	return &CoordinatorsHealthChecker{registry: registry}
}

// Check is degraded when any coordinator's last refresh failed
func (c *CoordinatorsHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "coordinators",
		Status:    "healthy",
		Details:   make(map[string]interface{}),
	}

	var failing []string
	coordinators := c.registry.Coordinators()
	for _, coordinator := range coordinators {
		s := coordinator.Status()
		if !s.LastUpdateSuccess && s.LastError != "" {
			failing = append(failing, s.Key)
		}
	}

	status.Details["count"] = len(coordinators)
	if len(failing) > 0 {
		status.Status = "degraded"
		status.Details["failing"] = failing
	}
	return status
}
