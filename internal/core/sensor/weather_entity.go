package sensor

import (
	"math"
	"strings"
	"time"

	"imsweather.app/internal/core/weather"
)

// Forecast modes of the weather entity
const (
	ForecastModeHourly = "hourly"
	ForecastModeDaily  = "daily"
)

// ForecastItem is one entry of the weather entity's daily or hourly forecast
type ForecastItem struct {
	Condition                string    `json:"condition,omitempty"`
	Datetime                 time.Time `json:"datetime"`
	Temperature              *float64  `json:"temperature,omitempty"`
	TemplLow                 *float64  `json:"templow,omitempty"`
	Humidity                 *float64  `json:"humidity,omitempty"`
	Precipitation            *float64  `json:"precipitation,omitempty"`
	PrecipitationProbability *float64  `json:"precipitation_probability,omitempty"`
	WindBearing              *float64  `json:"wind_bearing,omitempty"`
	WindSpeed                *float64  `json:"wind_speed,omitempty"`
	UVIndex                  *float64  `json:"uv_index,omitempty"`
}

// WeatherEntity renders the current conditions and serves daily and hourly forecasts.
type WeatherEntity struct {
	*entity
	src  DataSource
	mode string
}

// NewWeatherEntity creates the weather entity of an entry
func NewWeatherEntity(source DataSource, name, uniqueID, mode string) *WeatherEntity {
	if mode != ForecastModeHourly {
		mode = ForecastModeDaily
	}
	meta := State{
		EntityID: "weather." + slug(name),
		UniqueID: uniqueID,
		Platform: "weather",
		Name:     name,
	}
	w := &WeatherEntity{src: source, mode: mode}
	w.entity = newEntity(source, meta, w.render)
	return w
}

func (w *WeatherEntity) Mode() string {
	return w.mode
}

// Forecast returns the forecast for mode, or the entity's own mode when mode is empty.
// It returns nil while no data is available.
func (w *WeatherEntity) Forecast(mode string) []ForecastItem {
	if mode == "" {
		mode = w.mode
	}
	snapshot := w.src.Data()
	if snapshot == nil {
		return nil
	}
	if mode == ForecastModeHourly {
		return HourlyForecast(snapshot.Forecast)
	}
	return DailyForecast(snapshot.Forecast)
}

func (w *WeatherEntity) render(s *weather.Snapshot) (any, map[string]any, bool) {
	current := s.CurrentWeather
	loc := w.src.Location()

	condition := Condition(NightAdjustedCodeAt(current.ForecastTime, loc, current.WeatherCode))
	if condition == "" && len(s.Forecast.Days) > 0 {
		condition = Condition(s.Forecast.Days[0].WeatherCode)
	}

	description := current.Description
	if (description == "" || description == "Nothing") && len(s.Forecast.Days) > 0 {
		description = s.Forecast.Days[0].Weather
	}

	attributes := map[string]any{
		"temperature":          round2(current.Temperature),
		"apparent_temperature": round2(current.FeelsLike),
		"humidity":             round2(current.Humidity),
		"wind_speed":           round2(current.WindSpeed),
		"dew_point":            round2(current.DewPoint),
		"wind_bearing":         WindBearing(current.WindDirectionID),
		"uv_index":             truncated(current.UVIndex),
		"description":          description,
		"temperature_unit":     "°C",
		"wind_speed_unit":      "km/h",
		"precipitation_unit":   "mm",
		"forecast_mode":        w.mode,
	}
	return condition, attributes, true
}

// DailyForecast builds one item per forecast day. Precipitation is the sum of
// the day's hourly rain.
func DailyForecast(f weather.Forecast) []ForecastItem {
	items := make([]ForecastItem, 0, len(f.Days))
	for _, d := range f.Days {
		precipitation := d.Precipitation()
		items = append(items, ForecastItem{
			Condition:     Condition(d.WeatherCode),
			Datetime:      d.Date,
			Temperature:   d.MaximumTemperature,
			TemplLow:      d.MinimumTemperature,
			Precipitation: &precipitation,
		})
	}
	return items
}

// HourlyForecast builds one item per forecast hour. An hour without a weather
// code inherits the last known code, falling back to its day's code.
func HourlyForecast(f weather.Forecast) []ForecastItem {
	var items []ForecastItem
	lastCode := ""
	for _, d := range f.Days {
		for _, h := range d.Hours {
			if h.WeatherCode != "" && h.WeatherCode != "0" {
				lastCode = h.WeatherCode
			} else if lastCode == "" {
				lastCode = d.WeatherCode
			}
			items = append(items, ForecastItem{
				Condition:                Condition(NightAdjustedCodeForLabel(h.Hour, lastCode)),
				Datetime:                 h.ForecastTime,
				Humidity:                 h.RelativeHumidity,
				Temperature:              h.PreciseTemperature,
				Precipitation:            h.Rain,
				PrecipitationProbability: h.RainChance,
				WindBearing:              WindBearing(h.WindDirectionID),
				WindSpeed:                h.WindSpeed,
				UVIndex:                  h.UVIndex,
			})
		}
	}
	return items
}

func round2(v *float64) any {
	if v == nil {
		return nil
	}
	return math.Round(*v*100) / 100
}

func truncated(v *float64) any {
	if v == nil {
		return nil
	}
	return int(*v)
}

func slug(name string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		case !lastUnderscore && b.Len() > 0:
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	s := strings.TrimSuffix(b.String(), "_")
	if s == "" {
		return "ims_weather"
	}
	return s
}
