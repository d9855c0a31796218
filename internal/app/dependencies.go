package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
	"imsweather.app/internal/adapters/database"
	"imsweather.app/internal/adapters/external"
	"imsweather.app/internal/adapters/infrastructure"
	"imsweather.app/internal/config"
	"imsweather.app/internal/ports"
	"imsweather.app/pkg/errors"
)

// probeTimeout bounds the IMS online check done before an entry is stored
const probeTimeout = 10 * time.Second

type DependencyContainer struct {
	config *config.Config
	db     *gorm.DB

	location  *time.Location
	registry  *prometheus.Registry
	metrics   *infrastructure.PrometheusMetricsCollector
	imsClient *external.IMSClient
	scheduler *infrastructure.GocronScheduler
	cache     ports.CacheProvider
	closers   []func() error

	ports *ports.ApplicationPorts
}

func NewDependencyContainer(cfg *config.Config) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config: cfg,
	}

	if err := container.initializeDatabase(); err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	if err := container.initializePorts(); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeDatabase() error {
	slog.Info("Initializing database connection...", "driver", c.config.Database.Driver.String())

	db, err := database.Open(c.config.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	c.db = db
	slog.Info("Database connection established successfully")
	return nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	loc, err := time.LoadLocation(c.config.Coordinator.TimeZone)
	if err != nil {
		return errors.NewConfigurationError("unknown time zone "+c.config.Coordinator.TimeZone, err)
	}
	c.location = loc

	logger, err := c.initializeLogger()
	if err != nil {
		return err
	}

	c.registry = prometheus.NewRegistry()
	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	c.metrics = infrastructure.NewPrometheusMetricsCollector(c.registry)

	ims := c.config.IMS
	c.imsClient = external.NewIMSClient(external.IMSClientParams{
		BaseURL:         ims.BaseURL,
		Timeout:         ims.RequestTimeout(),
		MaxRetries:      ims.MaxRetries,
		BreakerFailures: ims.BreakerFailures,
		BreakerOpen:     time.Duration(ims.BreakerOpenSeconds) * time.Second,
		Location:        loc,
		Logger:          logger,
	})

	var sourceFactory ports.WeatherSourceFactory = external.NewIMSSourceFactory(c.imsClient)

	// If logging is enabled, wrap the source factory with logging decorator
	if ims.EnableLogging {
		sourceLogger := logger
		if ims.LogFilePath != "" {
			fileLogger, err := infrastructure.NewFileLoggerAdapter(ims.LogFilePath, "debug")
			if err != nil {
				slog.Warn("Failed to create IMS file logger, falling back to slog", "error", err)
			} else {
				c.closers = append(c.closers, fileLogger.Close)
				sourceLogger = infrastructure.NewTeeLogger(logger, fileLogger)
				slog.Info("IMS file logging enabled", "path", ims.LogFilePath)
			}
		}
		sourceFactory = external.NewWeatherSourceFactoryLoggingDecorator(sourceFactory, sourceLogger, c.metrics)
		slog.Info("IMS source logging enabled")
	}

	cacheFactory := external.NewCacheProviderFactory()
	cache, err := cacheFactory.CreateCacheProvider(&c.config.Cache)
	if err != nil {
		slog.Error("Failed to create cache provider", "error", err)
		return fmt.Errorf("create cache provider: %w", err)
	}
	c.cache = cache
	if redisCache, ok := cache.(*external.RedisCacheProviderAdapter); ok {
		c.closers = append(c.closers, redisCache.Close)
	}

	slog.Info("Cache provider initialized",
		"type", c.config.Cache.Type.String(),
		"redis_addr", c.config.Cache.Redis.Addr)

	c.scheduler = infrastructure.NewGocronScheduler(logger)

	c.ports = &ports.ApplicationPorts{
		// Weather
		SourceFactory: sourceFactory,
		Cities:        external.NewIMSCitiesSource(c.imsClient),
		StatusProbe:   external.NewIMSStatusProbe(c.imsClient, probeTimeout),
		Scheduler:     c.scheduler,

		// Entries
		EntryRepository: database.NewEntryRepositoryAdapter(c.db),

		// Cache
		Cache: cache,

		// Infrastructure
		ConfigProvider: infrastructure.NewConfigProviderAdapter(c.config),
		Metrics:        c.metrics,
		Logger:         logger,
		Database:       c.db,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

// initializeLogger builds the ports logger, teeing to a file when configured
func (c *DependencyContainer) initializeLogger() (ports.Logger, error) {
	var logger ports.Logger = infrastructure.NewSlogLoggerAdapter(slog.Default())

	if path := c.config.Logging.FilePath; path != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(path, c.config.Logging.Level)
		if err != nil {
			return nil, fmt.Errorf("create file logger: %w", err)
		}
		c.closers = append(c.closers, fileLogger.Close)
		logger = infrastructure.NewTeeLogger(logger, fileLogger)
		slog.Info("File logging enabled", "path", path)
	}
	return logger, nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

// Location returns the time zone forecasts are interpreted in
func (c *DependencyContainer) Location() *time.Location {
	return c.location
}

// MetricsRegistry returns the registry served on /metrics
func (c *DependencyContainer) MetricsRegistry() *prometheus.Registry {
	return c.registry
}

// IMSClient returns the shared IMS client
func (c *DependencyContainer) IMSClient() *external.IMSClient {
	return c.imsClient
}

// Cleanup function for graceful shutdown
func (c *DependencyContainer) Cleanup() error {
	if c.scheduler != nil {
		c.scheduler.Stop()
	}
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			slog.Warn("Error releasing resource", "error", err)
		}
	}
	c.closers = nil
	if c.db != nil {
		db := c.db
		c.db = nil
		return database.Close(db)
	}
	return nil
}
