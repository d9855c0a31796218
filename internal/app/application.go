package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"imsweather.app/internal/adapters/api"
	"imsweather.app/internal/adapters/infrastructure"
	"imsweather.app/internal/config"
	"imsweather.app/internal/core/cities"
	"imsweather.app/internal/core/entry"
	"imsweather.app/internal/core/weather"
	"imsweather.app/internal/ports"
)

type Application struct {
	config *config.Config

	// Use Cases
	registry     *weather.Registry
	catalog      *cities.Catalog
	entryUseCase *entry.UseCase

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps  *DependencyContainer
	ports *ports.ApplicationPorts
}

func NewApplication(cfg *config.Config) (*Application, error) {
	deps, err := NewDependencyContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		_ = deps.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application with provided dependencies
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	registry, err := weather.NewRegistry(weather.RegistryConfig{
		Timeout:  a.config.Coordinator.RefreshTimeout(),
		Location: a.deps.Location(),
	}, weather.RegistryDependencies{
		SourceFactory: a.ports.SourceFactory,
		Scheduler:     a.ports.Scheduler,
		Logger:        a.ports.Logger,
		Metrics:       a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create coordinator registry: %w", err)
	}
	a.registry = registry

	catalog, err := cities.NewCatalog(cities.CatalogConfig{
		TTL: a.config.Cities.CacheTTL(),
	}, cities.CatalogDependencies{
		Source:  a.ports.Cities,
		Cache:   a.ports.Cache,
		Logger:  a.ports.Logger,
		Metrics: a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create cities catalog: %w", err)
	}
	a.catalog = catalog

	entryUseCase, err := entry.NewUseCase(entry.UseCaseDependencies{
		Repository: a.ports.EntryRepository,
		Registry:   registry,
		Probe:      a.ports.StatusProbe,
		Cities:     catalog,
		Logger:     a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create entry use case: %w", err)
	}
	a.entryUseCase = entryUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	if err := api.RegisterValidators(); err != nil {
		slog.Warn("Failed to register entry validators", "error", err)
	}

	// Create health checkers
	checkers := []ports.HealthChecker{
		infrastructure.NewIMSHealthChecker(a.ports.StatusProbe, a.deps.IMSClient(), entry.DefaultLanguage, cities.DefaultCityID),
		infrastructure.NewCacheHealthChecker(a.config.Cache.Type.String(), a.ports.Cache),
		infrastructure.NewCoordinatorsHealthChecker(a.registry),
	}
	if db, ok := a.ports.Database.(*gorm.DB); ok {
		checkers = append([]ports.HealthChecker{infrastructure.NewDatabaseHealthChecker(db)}, checkers...)
	}

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		Checkers:       checkers,
		ConfigProvider: a.ports.ConfigProvider,
	})

	// Create HTTP server adapter with proper dependency injection
	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		EntryUseCase:  a.entryUseCase,
		Cities:        a.catalog,
		Coordinators:  a.registry,
		HealthChecker: systemHealthChecker,
		Gatherer:      a.deps.MetricsRegistry(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	// Store router for testing access
	a.router = httpAdapter.GetRouter()

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      httpAdapter.GetRouter(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

// Restore loads persisted entries and applies the YAML import when configured
func (a *Application) Restore(ctx context.Context) error {
	restored, err := a.entryUseCase.RestoreAll(ctx)
	if err != nil {
		return fmt.Errorf("restore entries: %w", err)
	}
	slog.Info("Entries restored", "count", restored)

	if path := a.config.Import.File; path != "" {
		if err := runImport(ctx, a.entryUseCase, path); err != nil {
			slog.Warn("YAML import incomplete", "error", err)
		}
	}
	return nil
}

func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	if err := a.Restore(ctx); err != nil {
		return err
	}

	// Start HTTP server
	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	var shutdownErr error
	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		shutdownErr = fmt.Errorf("shutdown HTTP server: %w", err)
	}

	a.entryUseCase.Shutdown()
	a.registry.Shutdown()

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return shutdownErr
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetEntryUseCase returns the entry use case for testing
func (a *Application) GetEntryUseCase() *entry.UseCase {
	return a.entryUseCase
}

// GetRegistry returns the coordinator registry for testing
func (a *Application) GetRegistry() *weather.Registry {
	return a.registry
}
