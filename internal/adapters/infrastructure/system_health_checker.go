package infrastructure

import (
	"context"

	"imsweather.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers       []ports.HealthChecker
	configProvider ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	Checkers       []ports.HealthChecker
	ConfigProvider ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		checkers:       config.Checkers,
		configProvider: config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components, keyed by component name
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers)+1)

	for _, checker := range s.checkers {
		if checker == nil {
			continue
		}
		status := checker.Check(ctx)
		results[status.Component] = status
	}

	if s.configProvider != nil {
		ims := s.configProvider.GetIMSConfig()
		coordinator := s.configProvider.GetCoordinatorConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    "healthy",
			Details: map[string]interface{}{
				"imsBaseURL":      ims.BaseURL,
				"defaultInterval": coordinator.DefaultInterval.String(),
				"timeZone":        coordinator.TimeZone,
			},
		}
	}

	return results
}
