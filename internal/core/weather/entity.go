package weather

import (
	"fmt"
	"strings"
	"time"
)

// LocationKey identifies a shared update coordinator
type LocationKey struct {
	Language   string
	LocationID string
}

// String returns the "{language}-{location_id}" form of the key
func (k LocationKey) String() string {
	return k.Language + "-" + k.LocationID
}

// IsValid validates the location key
func (k LocationKey) IsValid() error {
	if strings.TrimSpace(k.Language) == "" {
		return fmt.Errorf("language cannot be empty")
	}
	if strings.TrimSpace(k.LocationID) == "" {
		return fmt.Errorf("location id cannot be empty")
	}
	return nil
}

// Snapshot is the published result of one successful refresh cycle.
// It is never mutated after publication.
type Snapshot struct {
	CurrentWeather *CurrentWeather
	Forecast       Forecast
	Images         *RadarImages
	FetchedAt      time.Time
}

// CurrentWeather represents the latest observed conditions at a location
type CurrentWeather struct {
	Location        string
	Temperature     *float64
	FeelsLike       *float64
	Humidity        *float64
	WindSpeed       *float64
	WindDirectionID *int
	Rain            *float64
	UVIndex         *float64
	UVLevel         string
	MaxUVIndex      *float64
	DewPoint        *float64
	HeatStress      *float64
	HeatStressLevel string
	WindChill       *float64
	WeatherCode     string
	Description     string
	ForecastTime    time.Time
}

// IsRaining reports whether a positive rain amount was observed
func (c *CurrentWeather) IsRaining() bool {
	return c.Rain != nil && *c.Rain > 0
}

// Forecast is an ordered list of forecast days
type Forecast struct {
	Days []DailyForecast
}

// DailyForecast represents one forecast day. Date is midnight in the reference zone.
type DailyForecast struct {
	Date               time.Time
	Day                string
	MinimumTemperature *float64
	MaximumTemperature *float64
	MaximumUVIndex     *float64
	WeatherCode        string
	Weather            string
	Description        string
	Hours              []HourlyForecast
}

// Precipitation returns the sum of the hourly rain amounts of the day
func (d DailyForecast) Precipitation() float64 {
	var total float64
	for _, h := range d.Hours {
		if h.Rain != nil {
			total += *h.Rain
		}
	}
	return total
}

// HourlyForecast represents one hourly entry. Hour is a "HH:MM" label.
type HourlyForecast struct {
	Hour               string
	ForecastTime       time.Time
	Temperature        *float64
	PreciseTemperature *float64
	RelativeHumidity   *float64
	Rain               *float64
	RainChance         *float64
	WindSpeed          *float64
	WindDirectionID    *int
	UVIndex            *float64
	WeatherCode        string
	Weather            string
}

// RadarFrame is a single radar or satellite image reference
type RadarFrame struct {
	URL          string
	ForecastTime time.Time
}

// RadarImages is passed through from the source without interpretation
type RadarImages struct {
	Frames map[string][]RadarFrame
}
