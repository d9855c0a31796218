package sensor

import (
	"sort"
	"time"

	"imsweather.app/internal/core/weather"
)

// KeyPrefix is prepended to every sensor key
const KeyPrefix = "ims_"

// Kind identifies a sensor type. Each kind maps to exactly one Description.
type Kind int

const (
	KindCurrentUVIndex Kind = iota
	KindCurrentUVLevel
	KindMaxUVIndex
	KindCity
	KindTemperature
	KindFeelsLike
	KindHumidity
	KindRain
	KindWindSpeed
	KindForecastTime
)

// BinaryKind identifies a binary sensor type
type BinaryKind int

const (
	BinaryKindIsRaining BinaryKind = iota
)

// UV levels reported by the current UV level sensor
const (
	UVLevelExtreme  = "extreme"
	UVLevelVeryHigh = "very_high"
	UVLevelHigh     = "high"
	UVLevelModerate = "moderate"
	UVLevelLow      = "low"
)

// Rain sensor states
const (
	RainStateRaining    = "raining"
	RainStateNotRaining = "not_raining"
)

// Description holds the static metadata and the value accessor of a sensor kind.
type Description struct {
	Kind        Kind
	Key         string
	Name        string
	Icon        string
	Unit        string
	DeviceClass string
	StateClass  string
	Value       func(current *weather.CurrentWeather, loc *time.Location) any
}

// BinaryDescription holds the static metadata and the predicate of a binary sensor kind.
type BinaryDescription struct {
	Kind  BinaryKind
	Key   string
	Name  string
	Icon  string
	Value func(current *weather.CurrentWeather) bool
}

var descriptions = map[Kind]Description{
	KindCurrentUVIndex: {
		Key:        KeyPrefix + "current_uv_index",
		Name:       "IMS Current UV Index",
		Icon:       "mdi:weather-sunny",
		Unit:       "UV index",
		StateClass: "measurement",
		Value:      func(c *weather.CurrentWeather, _ *time.Location) any { return floatValue(c.UVIndex) },
	},
	KindCurrentUVLevel: {
		Key:   KeyPrefix + "current_uv_level",
		Name:  "IMS Current UV Level",
		Icon:  "mdi:weather-sunny",
		Value: func(c *weather.CurrentWeather, _ *time.Location) any { return uvLevel(c.UVLevel) },
	},
	KindMaxUVIndex: {
		Key:        KeyPrefix + "max_uv_index",
		Name:       "IMS Max UV Index",
		Icon:       "mdi:weather-sunny",
		Unit:       "UV index",
		StateClass: "measurement",
		Value:      func(c *weather.CurrentWeather, _ *time.Location) any { return floatValue(c.MaxUVIndex) },
	},
	KindCity: {
		Key:   KeyPrefix + "city",
		Name:  "IMS City",
		Icon:  "mdi:city",
		Value: func(c *weather.CurrentWeather, _ *time.Location) any { return c.Location },
	},
	KindTemperature: {
		Key:         KeyPrefix + "temperature",
		Name:        "IMS Temperature",
		Icon:        "mdi:thermometer",
		Unit:        "°C",
		DeviceClass: "temperature",
		StateClass:  "measurement",
		Value:       func(c *weather.CurrentWeather, _ *time.Location) any { return floatValue(c.Temperature) },
	},
	KindFeelsLike: {
		Key:         KeyPrefix + "feels_like",
		Name:        "IMS RealFeel",
		Icon:        "mdi:water-percent",
		Unit:        "°C",
		DeviceClass: "temperature",
		StateClass:  "measurement",
		Value:       func(c *weather.CurrentWeather, _ *time.Location) any { return floatValue(c.FeelsLike) },
	},
	KindHumidity: {
		Key:         KeyPrefix + "humidity",
		Name:        "IMS Humidity",
		Icon:        "mdi:weather-sunny",
		Unit:        "%",
		DeviceClass: "humidity",
		StateClass:  "measurement",
		Value:       func(c *weather.CurrentWeather, _ *time.Location) any { return floatValue(c.Humidity) },
	},
	KindRain: {
		Key:  KeyPrefix + "rain",
		Name: "IMS Rain",
		Icon: "mdi:weather-rainy",
		Value: func(c *weather.CurrentWeather, _ *time.Location) any {
			if c.IsRaining() {
				return RainStateRaining
			}
			return RainStateNotRaining
		},
	},
	KindWindSpeed: {
		Key:         KeyPrefix + "wind_speed",
		Name:        "IMS Wind Speed",
		Icon:        "mdi:weather-windy",
		Unit:        "km/h",
		DeviceClass: "speed",
		StateClass:  "measurement",
		Value:       func(c *weather.CurrentWeather, _ *time.Location) any { return floatValue(c.WindSpeed) },
	},
	KindForecastTime: {
		Key:         KeyPrefix + "forecast_time",
		Name:        "IMS Forecast Time",
		Icon:        "mdi:weather-windy",
		DeviceClass: "timestamp",
		Value: func(c *weather.CurrentWeather, loc *time.Location) any {
			if c.ForecastTime.IsZero() {
				return nil
			}
			if loc == nil {
				return c.ForecastTime
			}
			return c.ForecastTime.In(loc)
		},
	},
}

var binaryDescriptions = map[BinaryKind]BinaryDescription{
	BinaryKindIsRaining: {
		Key:   KeyPrefix + "is_raining",
		Name:  "IMS Is Raining",
		Icon:  "mdi:weather-rainy",
		Value: func(c *weather.CurrentWeather) bool { return c.IsRaining() },
	},
}

var (
	kindsByKey       = map[string]Kind{}
	binaryKindsByKey = map[string]BinaryKind{}
)

func init() {
	for kind, d := range descriptions {
		d.Kind = kind
		descriptions[kind] = d
		kindsByKey[d.Key] = kind
	}
	for kind, d := range binaryDescriptions {
		d.Kind = kind
		binaryDescriptions[kind] = d
		binaryKindsByKey[d.Key] = kind
	}
}

// Describe returns the description of a sensor kind
func Describe(kind Kind) (Description, bool) {
	d, ok := descriptions[kind]
	return d, ok
}

// DescribeBinary returns the description of a binary sensor kind
func DescribeBinary(kind BinaryKind) (BinaryDescription, bool) {
	d, ok := binaryDescriptions[kind]
	return d, ok
}

// Kinds returns every sensor kind in declaration order
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(descriptions))
	for kind := range descriptions {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// BinaryKinds returns every binary sensor kind in declaration order
func BinaryKinds() []BinaryKind {
	kinds := make([]BinaryKind, 0, len(binaryDescriptions))
	for kind := range binaryDescriptions {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// KindFromKey resolves a sensor key such as "ims_temperature"
func KindFromKey(key string) (Kind, bool) {
	kind, ok := kindsByKey[key]
	return kind, ok
}

// BinaryKindFromKey resolves a binary sensor key such as "ims_is_raining"
func BinaryKindFromKey(key string) (BinaryKind, bool) {
	kind, ok := binaryKindsByKey[key]
	return kind, ok
}

// IsKnownCondition reports whether key names a sensor or binary sensor
func IsKnownCondition(key string) bool {
	if _, ok := kindsByKey[key]; ok {
		return true
	}
	_, ok := binaryKindsByKey[key]
	return ok
}

// AllConditionKeys returns every sensor and binary sensor key
func AllConditionKeys() []string {
	keys := make([]string, 0, len(descriptions)+len(binaryDescriptions))
	for _, kind := range Kinds() {
		keys = append(keys, descriptions[kind].Key)
	}
	for _, kind := range BinaryKinds() {
		keys = append(keys, binaryDescriptions[kind].Key)
	}
	return keys
}

func uvLevel(code string) string {
	switch code {
	case "E":
		return UVLevelExtreme
	case "V":
		return UVLevelVeryHigh
	case "H":
		return UVLevelHigh
	case "M":
		return UVLevelModerate
	default:
		return UVLevelLow
	}
}

func floatValue(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
