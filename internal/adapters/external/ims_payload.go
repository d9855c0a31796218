package external

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"
)

const imsTimeLayout = "2006-01-02 15:04:05"

// flexFloat decodes a number that IMS may send as a JSON number, a numeric
// string, an empty string or null. Unparseable values decode as absent.
type flexFloat struct {
	v *float64
}

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	f.v = nil
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	if s == "" || s == "null" || s == "-" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	f.v = &v
	return nil
}

func (f flexFloat) ptr() *float64 {
	return f.v
}

func (f flexFloat) value() float64 {
	if f.v == nil {
		return 0
	}
	return *f.v
}

func (f flexFloat) intPtr() *int {
	if f.v == nil {
		return nil
	}
	v := int(*f.v)
	return &v
}

// flexString decodes a string that IMS may send as a bare number
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = flexString(str)
		return nil
	}
	*s = flexString(string(b))
	return nil
}

func (s flexString) String() string {
	return string(s)
}

type imsForecastResponse struct {
	Data struct {
		Analysis     imsAnalysis               `json:"analysis"`
		ForecastData map[string]imsForecastDay `json:"forecast_data"`
		WeatherCodes map[string]imsWeatherCode `json:"weather_codes"`
	} `json:"data"`
}

type imsAnalysis struct {
	LocationID      flexString `json:"lid"`
	Name            string     `json:"name"`
	ForecastTime    string     `json:"forecast_time"`
	Temperature     flexFloat  `json:"temperature"`
	FeelsLike       flexFloat  `json:"feels_like"`
	Humidity        flexFloat  `json:"relative_humidity"`
	DewPoint        flexFloat  `json:"dew_point_temp"`
	WindDirectionID flexFloat  `json:"wind_direction_id"`
	WindSpeed       flexFloat  `json:"wind_speed"`
	Rain            flexFloat  `json:"rain"`
	UVIndex         flexFloat  `json:"u_v_index"`
	UVLevel         string     `json:"u_v_level"`
	MaxUVIndex      flexFloat  `json:"u_v_i_max"`
	HeatStress      flexFloat  `json:"heat_stress"`
	HeatStressLevel flexString `json:"heat_stress_level"`
	WindChill       flexFloat  `json:"wind_chill"`
	WeatherCode     flexString `json:"weather_code"`
}

type imsForecastDay struct {
	Daily struct {
		ForecastDate       string     `json:"forecast_date"`
		WeatherCode        flexString `json:"weather_code"`
		MinimumTemperature flexFloat  `json:"minimum_temperature"`
		MaximumTemperature flexFloat  `json:"maximum_temperature"`
		MaximumUVIndex     flexFloat  `json:"maximum_uvi"`
	} `json:"daily"`
	Country struct {
		Description string `json:"description"`
	} `json:"country"`
	Hourly map[string]imsForecastHour `json:"hourly"`
}

type imsForecastHour struct {
	ForecastTime       string     `json:"forecast_time"`
	Hour               string     `json:"hour"`
	Temperature        flexFloat  `json:"temperature"`
	PreciseTemperature flexFloat  `json:"precise_temperature"`
	RelativeHumidity   flexFloat  `json:"relative_humidity"`
	Rain               flexFloat  `json:"rain"`
	RainChance         flexFloat  `json:"rain_chance"`
	WindSpeed          flexFloat  `json:"wind_speed"`
	WindDirectionID    flexFloat  `json:"wind_direction_id"`
	UVIndex            flexFloat  `json:"u_v_index"`
	WeatherCode        flexString `json:"weather_code"`
}

type imsWeatherCode struct {
	Description string `json:"desc"`
}

type imsLocationsResponse struct {
	Data map[string]imsLocation `json:"data"`
}

type imsLocation struct {
	LocationID flexString `json:"lid"`
	Name       string     `json:"name"`
	Latitude   flexFloat  `json:"lat"`
	Longitude  flexFloat  `json:"lon"`
}

type imsRadarResponse struct {
	Data struct {
		Types map[string][]imsRadarFrame `json:"types"`
	} `json:"data"`
}

type imsRadarFrame struct {
	FileName     string `json:"file_name"`
	Path         string `json:"path"`
	ForecastTime string `json:"forecast_time"`
}

// parseIMSTime parses an IMS local timestamp. Date-only values are accepted.
func parseIMSTime(value string, loc *time.Location) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{imsTimeLayout, time.DateOnly, time.RFC3339} {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t
		}
	}
	return time.Time{}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
