package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"imsweather.app/internal/core/weather"
	"imsweather.app/pkg/errors"
)

const (
	maxRedisDB           = 15
	maxPortNumber        = 65535
	maxIntervalMinutes   = 10080
	maxRefreshTimeoutSec = 600
	maxCitiesTTLMinutes  = 10080
)

// Config represents the application configuration structure
type Config struct {
	Server      ServerConfig      `split_words:"true"`
	Database    DatabaseConfig    `split_words:"true"`
	IMS         IMSConfig         `split_words:"true"`
	Coordinator CoordinatorConfig `split_words:"true"`
	Cities      CitiesConfig      `split_words:"true"`
	Cache       CacheConfig       `split_words:"true"`
	Logging     LoggingConfig     `split_words:"true"`
	Import      ImportConfig      `split_words:"true"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

// DatabaseDriver selects the gorm dialector
type DatabaseDriver int

const (
	DatabaseDriverUnknown DatabaseDriver = iota
	DatabaseDriverPostgres
	DatabaseDriverSQLite
)

// String returns the string representation of the driver
func (d DatabaseDriver) String() string {
	switch d {
	case DatabaseDriverPostgres:
		return "postgres"
	case DatabaseDriverSQLite:
		return "sqlite"
	default:
		return "unknown"
	}
}

// IsValid checks if the driver value is valid
func (d DatabaseDriver) IsValid() bool {
	return d == DatabaseDriverPostgres || d == DatabaseDriverSQLite
}

// DatabaseDriverFromString converts string to DatabaseDriver enum
func DatabaseDriverFromString(s string) DatabaseDriver {
	switch strings.ToLower(s) {
	case "postgres", "postgresql":
		return DatabaseDriverPostgres
	case "sqlite", "sqlite3":
		return DatabaseDriverSQLite
	default:
		return DatabaseDriverUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (d *DatabaseDriver) UnmarshalText(text []byte) error {
	*d = DatabaseDriverFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (d DatabaseDriver) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type DatabaseConfig struct {
	Driver     DatabaseDriver `envconfig:"DB_DRIVER" default:"sqlite"`
	Host       string         `envconfig:"DB_HOST" default:"localhost"`
	Port       int            `envconfig:"DB_PORT" default:"5432"`
	User       string         `envconfig:"DB_USER" default:"postgres"`
	Password   string         `envconfig:"DB_PASSWORD" default:"postgres"`
	Name       string         `envconfig:"DB_NAME" default:"imsweather"`
	SSLMode    string         `envconfig:"DB_SSL_MODE" default:"disable"`
	SQLitePath string         `envconfig:"DB_SQLITE_PATH" default:"imsweather.db"`
}

func (c DatabaseConfig) GetDSN() string {
	if c.Driver == DatabaseDriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type IMSConfig struct {
	BaseURL               string `envconfig:"IMS_BASE_URL" default:"https://ims.gov.il"`
	RequestTimeoutSeconds int    `envconfig:"IMS_REQUEST_TIMEOUT_SECONDS" default:"10"`
	MaxRetries            int    `envconfig:"IMS_MAX_RETRIES" default:"2"`
	BreakerFailures       int    `envconfig:"IMS_BREAKER_FAILURES" default:"5"`
	BreakerOpenSeconds    int    `envconfig:"IMS_BREAKER_OPEN_SECONDS" default:"60"`
	EnableLogging         bool   `envconfig:"IMS_ENABLE_LOGGING" default:"true"`
	LogFilePath           string `envconfig:"IMS_LOG_FILE_PATH" default:"logs/ims_source.log"`
}

func (c IMSConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

type CoordinatorConfig struct {
	RefreshTimeoutSeconds  int    `envconfig:"COORDINATOR_REFRESH_TIMEOUT_SECONDS" default:"30"`
	DefaultIntervalMinutes int    `envconfig:"COORDINATOR_DEFAULT_INTERVAL_MINUTES" default:"60"`
	TimeZone               string `envconfig:"COORDINATOR_TIME_ZONE"`
}

func (c CoordinatorConfig) RefreshTimeout() time.Duration {
	return time.Duration(c.RefreshTimeoutSeconds) * time.Second
}

func (c CoordinatorConfig) DefaultInterval() time.Duration {
	return time.Duration(c.DefaultIntervalMinutes) * time.Minute
}

type CitiesConfig struct {
	CacheTTLMinutes int `envconfig:"CITIES_CACHE_TTL_MINUTES" default:"1440"`
}

func (c CitiesConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch s {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type  CacheType   `envconfig:"CACHE_TYPE" default:"memory"`
	Redis RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	KeyPrefix    string `envconfig:"REDIS_KEY_PREFIX" default:"imsweather:"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type LoggingConfig struct {
	Level    string `envconfig:"LOG_LEVEL" default:"info"`
	FilePath string `envconfig:"LOG_FILE_PATH" default:""`
}

type ImportConfig struct {
	File string `envconfig:"IMPORT_FILE" default:""`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}
	if config.Coordinator.TimeZone == "" {
		config.Coordinator.TimeZone = weather.ReferenceTimeZone
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.IMS.Validate(); err != nil {
		return err
	}
	if err := c.Coordinator.Validate(); err != nil {
		return err
	}
	if err := c.Cities.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	switch d.Driver {
	case DatabaseDriverSQLite:
		if d.SQLitePath == "" {
			return errors.NewConfigurationError("DB_SQLITE_PATH cannot be empty", nil)
		}
		return nil
	case DatabaseDriverPostgres:
	default:
		return errors.NewConfigurationError("DB_DRIVER must be one of: postgres, sqlite", nil)
	}

	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (i *IMSConfig) Validate() error {
	if i.BaseURL == "" {
		return errors.NewConfigurationError("IMS_BASE_URL cannot be empty", nil)
	}
	if !strings.HasPrefix(i.BaseURL, "http://") && !strings.HasPrefix(i.BaseURL, "https://") {
		return errors.NewConfigurationError("IMS_BASE_URL must start with http:// or https://", nil)
	}
	if i.RequestTimeoutSeconds < 1 {
		return errors.NewConfigurationError("IMS_REQUEST_TIMEOUT_SECONDS must be at least 1", nil)
	}
	if i.MaxRetries < 0 {
		return errors.NewConfigurationError("IMS_MAX_RETRIES cannot be negative", nil)
	}
	if i.BreakerFailures < 1 {
		return errors.NewConfigurationError("IMS_BREAKER_FAILURES must be at least 1", nil)
	}
	if i.BreakerOpenSeconds < 1 {
		return errors.NewConfigurationError("IMS_BREAKER_OPEN_SECONDS must be at least 1", nil)
	}
	return nil
}

func (c *CoordinatorConfig) Validate() error {
	if c.RefreshTimeoutSeconds < 1 || c.RefreshTimeoutSeconds > maxRefreshTimeoutSec {
		return errors.NewConfigurationError("COORDINATOR_REFRESH_TIMEOUT_SECONDS must be between 1 and 600", nil)
	}
	if c.DefaultIntervalMinutes < 1 || c.DefaultIntervalMinutes > maxIntervalMinutes {
		return errors.NewConfigurationError("COORDINATOR_DEFAULT_INTERVAL_MINUTES must be between 1 and 10080", nil)
	}
	if _, err := time.LoadLocation(c.TimeZone); err != nil {
		return errors.NewConfigurationError(fmt.Sprintf("COORDINATOR_TIME_ZONE %q is not a known zone", c.TimeZone), err)
	}
	return nil
}

func (c *CitiesConfig) Validate() error {
	if c.CacheTTLMinutes < 1 || c.CacheTTLMinutes > maxCitiesTTLMinutes {
		return errors.NewConfigurationError("CITIES_CACHE_TTL_MINUTES must be between 1 and 10080", nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis", nil)
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (l *LoggingConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
}
