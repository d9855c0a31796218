// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"imsweather.app/internal/core/cities"
	"imsweather.app/internal/core/entry"
	"imsweather.app/internal/core/sensor"
	"imsweather.app/internal/core/weather"
	"imsweather.app/internal/ports"
	"imsweather.app/pkg/errors"
)

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router        *gin.Engine
	entryUseCase  EntryUseCase
	cities        CitiesCatalog
	coordinators  CoordinatorLister
	healthChecker ports.SystemHealthChecker
	gatherer      prometheus.Gatherer
}

// Use case interfaces that the HTTP adapter depends on
type EntryUseCase interface {
	Setup(ctx context.Context, params entry.SetupParams) (*entry.Entry, error)
	Reload(ctx context.Context, id string, params entry.SetupParams) (*entry.Entry, error)
	Remove(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (entry.View, error)
	List(ctx context.Context) ([]entry.View, error)
	States(id string) ([]sensor.State, error)
	Forecast(id, mode string) ([]sensor.ForecastItem, error)
	Refresh(ctx context.Context, id string) error
}

type CitiesCatalog interface {
	Cities(ctx context.Context, language string) ([]cities.City, error)
	Closest(ctx context.Context, language string, lat, lon float64) (cities.City, float64, error)
}

type CoordinatorLister interface {
	Coordinators() []*weather.Coordinator
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	EntryUseCase  EntryUseCase
	Cities        CitiesCatalog
	Coordinators  CoordinatorLister
	HealthChecker ports.SystemHealthChecker
	// Gatherer backs /metrics; the default registry is used when nil
	Gatherer prometheus.Gatherer
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	server := &HTTPServerAdapter{
		router:        gin.Default(),
		entryUseCase:  opts.EntryUseCase,
		cities:        opts.Cities,
		coordinators:  opts.Coordinators,
		healthChecker: opts.HealthChecker,
		gatherer:      gatherer,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.EntryUseCase == nil {
		return errors.NewValidationError("entry use case is required")
	}
	if opts.Cities == nil {
		return errors.NewValidationError("cities catalog is required")
	}
	if opts.Coordinators == nil {
		return errors.NewValidationError("coordinator lister is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		entries := api.Group("/entries")
		entries.GET("", s.listEntries)
		entries.POST("", s.createEntry)
		entries.GET("/:id", s.getEntry)
		entries.PUT("/:id", s.reloadEntry)
		entries.DELETE("/:id", s.deleteEntry)
		entries.GET("/:id/states", s.getStates)
		entries.GET("/:id/forecast", s.getForecast)
		entries.POST("/:id/refresh", s.refreshEntry)

		api.GET("/cities", s.listCities)
		api.GET("/cities/closest", s.closestCity)
		api.GET("/coordinators", s.listCoordinators)
		api.GET("/health", s.health)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
