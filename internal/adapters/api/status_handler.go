package api

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"imsweather.app/internal/ports"
)

// Overall health states
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// CoordinatorResponse represents a shared coordinator's refresh state
type CoordinatorResponse struct {
	Key               string    `json:"key"`
	IntervalMinutes   float64   `json:"interval_minutes"`
	LastUpdated       time.Time `json:"last_updated"`
	LastUpdateSuccess bool      `json:"last_update_success"`
	LastError         string    `json:"last_error,omitempty"`
	Listeners         int       `json:"listeners"`
	HasData           bool      `json:"has_data"`
}

// HealthResponse represents the aggregated health of the service
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// listCoordinators handles GET /api/coordinators requests
func (s *HTTPServerAdapter) listCoordinators(c *gin.Context) {
	coordinators := s.coordinators.Coordinators()

	response := make([]CoordinatorResponse, 0, len(coordinators))
	for _, coord := range coordinators {
		st := coord.Status()
		response = append(response, CoordinatorResponse{
			Key:               st.Key,
			IntervalMinutes:   st.Interval.Minutes(),
			LastUpdated:       st.LastUpdated,
			LastUpdateSuccess: st.LastUpdateSuccess,
			LastError:         st.LastError,
			Listeners:         st.Listeners,
			HasData:           st.HasData,
		})
	}
	sort.Slice(response, func(i, j int) bool { return response[i].Key < response[j].Key })

	c.JSON(http.StatusOK, response)
}

// health handles GET /api/health requests
func (s *HTTPServerAdapter) health(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())
	overall := overallStatus(results)

	statusCode := http.StatusOK
	if overall == StatusUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, HealthResponse{Status: overall, Components: results})
}

func overallStatus(results map[string]ports.HealthStatus) string {
	overall := StatusHealthy
	for _, r := range results {
		switch r.Status {
		case StatusUnhealthy:
			return StatusUnhealthy
		case StatusDegraded:
			overall = StatusDegraded
		}
	}
	return overall
}
