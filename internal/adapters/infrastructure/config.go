package infrastructure

import (
	"imsweather.app/internal/config"
	"imsweather.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetIMSConfig returns remote source configuration
func (c *ConfigProviderAdapter) GetIMSConfig() ports.IMSConfig {
	return ports.IMSConfig{
		BaseURL:        c.config.IMS.BaseURL,
		RequestTimeout: c.config.IMS.RequestTimeout(),
		MaxRetries:     c.config.IMS.MaxRetries,
	}
}

// GetCoordinatorConfig returns update coordinator configuration
func (c *ConfigProviderAdapter) GetCoordinatorConfig() ports.CoordinatorConfig {
	return ports.CoordinatorConfig{
		RefreshTimeout:  c.config.Coordinator.RefreshTimeout(),
		DefaultInterval: c.config.Coordinator.DefaultInterval(),
		TimeZone:        c.config.Coordinator.TimeZone,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

// GetCitiesConfig returns cities catalog configuration
func (c *ConfigProviderAdapter) GetCitiesConfig() ports.CitiesConfig {
	return ports.CitiesConfig{
		CacheTTL: c.config.Cities.CacheTTL(),
	}
}

// GetCacheConfig returns cache configuration
func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	return ports.CacheConfig{
		Type: c.config.Cache.Type.String(),
		Redis: ports.RedisConfig{
			Addr:         c.config.Cache.Redis.Addr,
			Password:     c.config.Cache.Redis.Password,
			DB:           c.config.Cache.Redis.DB,
			DialTimeout:  c.config.Cache.Redis.DialTimeout,
			ReadTimeout:  c.config.Cache.Redis.ReadTimeout,
			WriteTimeout: c.config.Cache.Redis.WriteTimeout,
		},
	}
}
