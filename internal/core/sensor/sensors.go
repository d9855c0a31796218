package sensor

import (
	"fmt"
	"strconv"
	"time"

	"imsweather.app/internal/core/weather"
)

func uniqueID(key string, source DataSource) string {
	k := source.Key()
	return fmt.Sprintf("%s_%s_%s", key, k.LocationID, k.Language)
}

// NewSensor creates the sensor entity of a kind
func NewSensor(source DataSource, kind Kind) (Entity, error) {
	d, ok := Describe(kind)
	if !ok {
		return nil, fmt.Errorf("unknown sensor kind %d", kind)
	}
	meta := State{
		EntityID:    "sensor." + d.Key,
		UniqueID:    uniqueID(d.Key, source),
		Platform:    "sensor",
		Name:        d.Name,
		Unit:        d.Unit,
		Icon:        d.Icon,
		DeviceClass: d.DeviceClass,
		StateClass:  d.StateClass,
	}
	loc := source.Location()
	return newEntity(source, meta, func(s *weather.Snapshot) (any, map[string]any, bool) {
		return d.Value(s.CurrentWeather, loc), nil, true
	}), nil
}

// NewBinarySensor creates the binary sensor entity of a kind
func NewBinarySensor(source DataSource, kind BinaryKind) (Entity, error) {
	d, ok := DescribeBinary(kind)
	if !ok {
		return nil, fmt.Errorf("unknown binary sensor kind %d", kind)
	}
	meta := State{
		EntityID: "binary_sensor." + d.Key,
		UniqueID: uniqueID(d.Key, source),
		Platform: "binary_sensor",
		Name:     d.Name,
		Icon:     d.Icon,
	}
	return newEntity(source, meta, func(s *weather.Snapshot) (any, map[string]any, bool) {
		return d.Value(s.CurrentWeather), nil, true
	}), nil
}

// ForecastDayName returns "today" for offset 0 and "dayN" otherwise
func ForecastDayName(offset int) string {
	if offset <= 0 {
		return "today"
	}
	return "day" + strconv.Itoa(offset)
}

// NewForecastDaySensor creates a sensor that follows the forecast day offset
// days after today. It is unavailable while no such day is in the snapshot.
func NewForecastDaySensor(source DataSource, offset int) Entity {
	name := ForecastDayName(offset)
	key := KeyPrefix + "forecast_" + name
	meta := State{
		EntityID: "sensor." + key,
		UniqueID: uniqueID(key, source),
		Platform: "sensor",
		Name:     name,
	}
	return newEntity(source, meta, func(s *weather.Snapshot) (any, map[string]any, bool) {
		loc := source.Location()
		today := source.Now()
		for _, d := range s.Forecast.Days {
			if DaysBetween(today, d.Date, loc) == offset {
				return d.Day, forecastDayAttributes(d, loc), true
			}
		}
		return nil, nil, false
	})
}

// DaysBetween returns the number of calendar days from from to to in loc
func DaysBetween(from, to time.Time, loc *time.Location) int {
	if loc != nil {
		from, to = from.In(loc), to.In(loc)
	}
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

func forecastDayAttributes(d weather.DailyForecast, loc *time.Location) map[string]any {
	date := d.Date
	if loc != nil {
		date = date.In(loc)
	}
	attributes := map[string]any{
		"minimum_temperature": map[string]any{"value": floatValue(d.MinimumTemperature), "unit": "°C"},
		"maximum_temperature": map[string]any{"value": floatValue(d.MaximumTemperature), "unit": "°C"},
		"uvi":                 map[string]any{"value": floatValue(d.MaximumUVIndex), "unit": "uv"},
		"weather":             map[string]any{"value": d.Weather, "icon": WeatherIcon(d.WeatherCode)},
		"description":         map[string]any{"value": d.Description},
		"date":                map[string]any{"value": date.Format("2006/01/02")},
	}
	for _, h := range d.Hours {
		attributes[h.Hour] = map[string]any{
			"weather":     map[string]any{"value": h.Weather, "icon": WeatherIcon(h.WeatherCode)},
			"temperature": map[string]any{"value": floatValue(h.Temperature), "unit": "°C"},
		}
	}
	return attributes
}
