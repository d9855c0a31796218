package entry

import (
	"fmt"
	"strings"
	"time"

	"imsweather.app/internal/core/sensor"
	"imsweather.app/internal/core/weather"
	"imsweather.app/pkg/validation"
)

// Defaults applied to entry fields left empty
const (
	DefaultName           = "IMS Weather"
	DefaultLanguage       = "en"
	DefaultMode           = sensor.ForecastModeDaily
	DefaultUpdateInterval = 60
	DefaultImagesPath     = "/tmp"
)

// Languages lists the languages an entry can be configured with
var Languages = []string{"en", "he"}

// City identifies the IMS location an entry follows
type City struct {
	ID   string
	Name string
}

// Entry is one configured weather location
type Entry struct {
	ID                  string
	UniqueID            string
	Name                string
	City                City
	Language            string
	Mode                string
	UpdateInterval      int
	ImagesPath          string
	Platforms           []string
	MonitoredConditions []string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// ApplyDefaults fills empty fields with their defaults
func (e *Entry) ApplyDefaults() {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		e.Name = DefaultName
	}
	if e.Language == "" {
		e.Language = DefaultLanguage
	}
	if e.Mode == "" {
		e.Mode = DefaultMode
	}
	if e.UpdateInterval == 0 {
		e.UpdateInterval = DefaultUpdateInterval
	}
	if e.ImagesPath == "" {
		e.ImagesPath = DefaultImagesPath
	}
	if len(e.Platforms) == 0 {
		e.Platforms = []string{sensor.PlatformWeather}
	}
	if len(e.MonitoredConditions) == 0 {
		e.MonitoredConditions = sensor.AllConditionKeys()
	}
}

// Validate checks the entry configuration
func (e *Entry) Validate() error {
	if !validation.IsNotEmpty(e.City.ID) {
		return fmt.Errorf("city is required")
	}
	if !validation.IsValidLocationID(e.City.ID) {
		return fmt.Errorf("invalid city id %q", e.City.ID)
	}
	if !validation.IsOneOf(e.Language, Languages...) {
		return fmt.Errorf("unsupported language %q", e.Language)
	}
	if e.Mode != sensor.ForecastModeHourly && e.Mode != sensor.ForecastModeDaily {
		return fmt.Errorf("invalid forecast mode %q", e.Mode)
	}
	if e.UpdateInterval < 1 {
		return fmt.Errorf("update interval must be at least 1 minute")
	}
	if len(e.Platforms) == 0 {
		return fmt.Errorf("at least one platform is required")
	}
	for _, p := range e.Platforms {
		if !sensor.IsValidPlatform(p) {
			return fmt.Errorf("unknown platform %q", p)
		}
	}
	for _, c := range e.MonitoredConditions {
		if !sensor.IsKnownCondition(c) {
			return fmt.Errorf("unknown monitored condition %q", c)
		}
	}
	return nil
}

// LocationKey returns the key of the coordinator the entry shares
func (e *Entry) LocationKey() weather.LocationKey {
	return weather.LocationKey{Language: e.Language, LocationID: e.City.ID}
}

// Interval returns the refresh interval as a duration
func (e *Entry) Interval() time.Duration {
	return time.Duration(e.UpdateInterval) * time.Minute
}

// ComputeUniqueID derives the identity that prevents configuring the same
// entry twice
func (e *Entry) ComputeUniqueID() string {
	return fmt.Sprintf("ims-%s-%s-%s-%s-%s",
		e.City.ID, e.Language, e.Mode, strings.Join(e.Platforms, "+"), e.Name)
}

// HasPlatform reports whether the entry enables platform p
func (e *Entry) HasPlatform(p string) bool {
	for _, candidate := range e.Platforms {
		if candidate == p {
			return true
		}
	}
	return false
}
