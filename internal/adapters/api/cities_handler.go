package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"imsweather.app/internal/core/cities"
	"imsweather.app/pkg/errors"
)

// CitiesQuery represents the query parameters of the cities endpoint
type CitiesQuery struct {
	Language string `form:"language" binding:"omitempty,imslanguage"`
}

// ClosestCityQuery represents the query parameters of the closest city endpoint
type ClosestCityQuery struct {
	Language  string  `form:"language" binding:"omitempty,imslanguage"`
	Latitude  float64 `form:"lat" binding:"required,latitude"`
	Longitude float64 `form:"lon" binding:"required,longitude"`
}

// ClosestCityResponse represents the city nearest to a point
type ClosestCityResponse struct {
	City       cities.City `json:"city"`
	DistanceKm float64     `json:"distance_km"`
}

// listCities handles GET /api/cities requests
func (s *HTTPServerAdapter) listCities(c *gin.Context) {
	var query CitiesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	list, err := s.cities.Cities(c.Request.Context(), query.Language)
	if err != nil {
		slog.Error("Failed to get cities", "language", query.Language, "error", err)
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// closestCity handles GET /api/cities/closest requests
func (s *HTTPServerAdapter) closestCity(c *gin.Context) {
	var query ClosestCityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, errors.NewValidationError("lat and lon are required coordinates"))
		return
	}

	city, distance, err := s.cities.Closest(c.Request.Context(), query.Language, query.Latitude, query.Longitude)
	if err != nil {
		slog.Error("Failed to find closest city", "lat", query.Latitude, "lon", query.Longitude, "error", err)
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ClosestCityResponse{City: city, DistanceKm: distance})
}
