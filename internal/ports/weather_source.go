package ports

import (
	"context"
	"time"
)

// CurrentAnalysisData represents the latest observed conditions at a location.
// Nil numeric fields were absent from the upstream payload.
type CurrentAnalysisData struct {
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

// HourlyForecastData represents one hourly entry of a forecast day
type HourlyForecastData struct {
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

// DailyForecastData represents one forecast day
type DailyForecastData struct {
	Date               time.Time
	Day                string
	MinimumTemperature *float64
	MaximumTemperature *float64
	MaximumUVIndex     *float64
	WeatherCode        string
	Weather            string
	Description        string
	Hours              []HourlyForecastData
}

// ForecastData represents a multi-day forecast as returned by the source
type ForecastData struct {
	Days []DailyForecastData
}

// RadarFrame represents a single radar or satellite image
type RadarFrame struct {
	URL          string
	ForecastTime time.Time
}

// RadarImagesData groups image frames by image type
type RadarImagesData struct {
	Frames map[string][]RadarFrame
}

// WeatherSource defines the contract for the remote weather data source of one location.
// Calls may block; implementations must honour ctx cancellation.
type WeatherSource interface {
	GetCurrentAnalysis(ctx context.Context) (*CurrentAnalysisData, error)
	GetForecast(ctx context.Context) (*ForecastData, error)
	GetRadarImages(ctx context.Context) (*RadarImagesData, error)
}

// WeatherSourceFactory creates a WeatherSource bound to a location and language
type WeatherSourceFactory interface {
	NewSource(locationID, language string) WeatherSource
}

// CityData represents a selectable IMS location
type CityData struct {
	ID        string  `json:"lid"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// CitiesSource defines the contract for fetching the IMS locations list
type CitiesSource interface {
	GetCities(ctx context.Context, language string) ([]CityData, error)
}

// StatusProbe checks whether the remote API is reachable
type StatusProbe interface {
	IsOnline(ctx context.Context, language, cityID string) error
}
