package ports

import (
	"context"
	"time"
)

// IMSConfig represents remote source configuration
type IMSConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	MaxRetries     int
}

// CoordinatorConfig represents update coordinator configuration
type CoordinatorConfig struct {
	RefreshTimeout  time.Duration
	DefaultInterval time.Duration
	TimeZone        string
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// CitiesConfig represents cities catalog configuration
type CitiesConfig struct {
	CacheTTL time.Duration
}

// CacheConfig represents cache configuration
type CacheConfig struct {
	Type  string
	Redis RedisConfig
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  int
	ReadTimeout  int
	WriteTimeout int
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetIMSConfig() IMSConfig
	GetCoordinatorConfig() CoordinatorConfig
	GetServerConfig() ServerConfig
	GetCitiesConfig() CitiesConfig
	GetCacheConfig() CacheConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordCacheHit(ctx context.Context, cache string)
	RecordCacheMiss(ctx context.Context, cache string)
	RecordSourceCall(ctx context.Context, call string, success bool, duration time.Duration)
	RecordRefresh(key string, outcome string, duration time.Duration)
	SetLastSuccess(key string, at time.Time)
	SetListeners(key string, count int)
}
