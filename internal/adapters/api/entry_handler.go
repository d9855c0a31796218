package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"imsweather.app/internal/core/entry"
	"imsweather.app/internal/core/weather"
	"imsweather.app/pkg/errors"
)

// EntryRequest represents the HTTP request body for creating or reloading an entry
type EntryRequest struct {
	Name                string   `json:"name" binding:"max=100"`
	CityID              string   `json:"city_id" binding:"required,numeric"`
	Language            string   `json:"language" binding:"omitempty,imslanguage"`
	Mode                string   `json:"mode" binding:"omitempty,oneof=hourly daily"`
	UpdateInterval      int      `json:"update_interval" binding:"omitempty,min=1,max=1440"`
	ImagesPath          string   `json:"images_path"`
	Platforms           []string `json:"platforms" binding:"omitempty,dive,platform"`
	MonitoredConditions []string `json:"monitored_conditions" binding:"omitempty,dive,condition"`
}

// EntryResponse represents an entry together with its runtime state
type EntryResponse struct {
	ID                  string                     `json:"id"`
	UniqueID            string                     `json:"unique_id"`
	Name                string                     `json:"name"`
	CityID              string                     `json:"city_id"`
	CityName            string                     `json:"city_name,omitempty"`
	Language            string                     `json:"language"`
	Mode                string                     `json:"mode"`
	UpdateInterval      int                        `json:"update_interval"`
	ImagesPath          string                     `json:"images_path"`
	Platforms           []string                   `json:"platforms"`
	MonitoredConditions []string                   `json:"monitored_conditions"`
	Status              string                     `json:"status,omitempty"`
	Error               string                     `json:"error,omitempty"`
	Coordinator         *weather.CoordinatorStatus `json:"coordinator,omitempty"`
	CreatedAt           time.Time                  `json:"created_at"`
	UpdatedAt           time.Time                  `json:"updated_at"`
}

// SetupRetryResponse is returned when an entry was stored but its first refresh failed
type SetupRetryResponse struct {
	Error string        `json:"error"`
	Entry EntryResponse `json:"entry"`
}

func (r EntryRequest) toParams() entry.SetupParams {
	return entry.SetupParams{
		Name:                r.Name,
		CityID:              r.CityID,
		Language:            r.Language,
		Mode:                r.Mode,
		UpdateInterval:      r.UpdateInterval,
		ImagesPath:          r.ImagesPath,
		Platforms:           r.Platforms,
		MonitoredConditions: r.MonitoredConditions,
	}
}

func toEntryResponse(e *entry.Entry) EntryResponse {
	return EntryResponse{
		ID:                  e.ID,
		UniqueID:            e.UniqueID,
		Name:                e.Name,
		CityID:              e.City.ID,
		CityName:            e.City.Name,
		Language:            e.Language,
		Mode:                e.Mode,
		UpdateInterval:      e.UpdateInterval,
		ImagesPath:          e.ImagesPath,
		Platforms:           e.Platforms,
		MonitoredConditions: e.MonitoredConditions,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}

func toViewResponse(v entry.View) EntryResponse {
	resp := toEntryResponse(v.Entry)
	resp.Status = v.Status
	if v.Error != nil {
		resp.Error = v.Error.Error()
	}
	resp.Coordinator = v.Coordinator
	return resp
}

// listEntries handles GET /api/entries requests
func (s *HTTPServerAdapter) listEntries(c *gin.Context) {
	views, err := s.entryUseCase.List(c.Request.Context())
	if err != nil {
		slog.Error("Failed to list entries", "error", err)
		s.handleError(c, err)
		return
	}

	response := make([]EntryResponse, 0, len(views))
	for _, v := range views {
		response = append(response, toViewResponse(v))
	}
	c.JSON(http.StatusOK, response)
}

// getEntry handles GET /api/entries/:id requests
func (s *HTTPServerAdapter) getEntry(c *gin.Context) {
	view, err := s.entryUseCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toViewResponse(view))
}

// createEntry handles POST /api/entries requests
func (s *HTTPServerAdapter) createEntry(c *gin.Context) {
	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Debug("Invalid entry request", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	slog.Debug("Creating entry", "city", req.CityID, "language", req.Language)

	created, err := s.entryUseCase.Setup(c.Request.Context(), req.toParams())
	if err != nil {
		s.respondSetupError(c, created, err)
		return
	}

	c.JSON(http.StatusCreated, toEntryResponse(created))
}

// reloadEntry handles PUT /api/entries/:id requests
func (s *HTTPServerAdapter) reloadEntry(c *gin.Context) {
	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Debug("Invalid entry request", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	id := c.Param("id")
	updated, err := s.entryUseCase.Reload(c.Request.Context(), id, req.toParams())
	if err != nil {
		s.respondSetupError(c, updated, err)
		return
	}

	c.JSON(http.StatusOK, toEntryResponse(updated))
}

// respondSetupError keeps the stored entry in the response when only its
// first refresh failed
func (s *HTTPServerAdapter) respondSetupError(c *gin.Context, e *entry.Entry, err error) {
	if e == nil || !errors.IsInitializationError(err) {
		slog.Error("Entry setup failed", "error", err)
		s.handleError(c, err)
		return
	}

	slog.Warn("Entry stored but not ready", "id", e.ID, "error", err)
	statusCode, message := errorStatus(err)
	c.JSON(statusCode, SetupRetryResponse{Error: message, Entry: toEntryResponse(e)})
}

// deleteEntry handles DELETE /api/entries/:id requests
func (s *HTTPServerAdapter) deleteEntry(c *gin.Context) {
	if err := s.entryUseCase.Remove(c.Request.Context(), c.Param("id")); err != nil {
		s.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// getStates handles GET /api/entries/:id/states requests
func (s *HTTPServerAdapter) getStates(c *gin.Context) {
	states, err := s.entryUseCase.States(c.Param("id"))
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, states)
}

// getForecast handles GET /api/entries/:id/forecast requests
func (s *HTTPServerAdapter) getForecast(c *gin.Context) {
	forecast, err := s.entryUseCase.Forecast(c.Param("id"), c.Query("mode"))
	if err != nil {
		s.handleError(c, err)
		return
	}
	if forecast == nil {
		c.JSON(http.StatusOK, []any{})
		return
	}
	c.JSON(http.StatusOK, forecast)
}

// refreshEntry handles POST /api/entries/:id/refresh requests
func (s *HTTPServerAdapter) refreshEntry(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := s.entryUseCase.Refresh(ctx, id); err != nil {
		slog.Warn("Entry refresh failed", "id", id, "error", err)
		s.handleError(c, err)
		return
	}

	view, err := s.entryUseCase.Get(ctx, id)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toViewResponse(view))
}
