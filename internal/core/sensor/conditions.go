package sensor

import (
	"strconv"
	"strings"
	"time"
)

// Weather entity conditions
const (
	ConditionClearNight     = "clear-night"
	ConditionCloudy         = "cloudy"
	ConditionExceptional    = "exceptional"
	ConditionFog            = "fog"
	ConditionHail           = "hail"
	ConditionLightningRainy = "lightning-rainy"
	ConditionPartlyCloudy   = "partlycloudy"
	ConditionPouring        = "pouring"
	ConditionRainy          = "rainy"
	ConditionSnowy          = "snowy"
	ConditionSnowyRainy     = "snowy-rainy"
	ConditionSunny          = "sunny"
	ConditionWindy          = "windy"
)

const nightSuffix = "-night"

// IMS weather codes, see https://ims.gov.il/en/weather_codes
var weatherCodeConditions = map[string]string{
	"1010":       ConditionExceptional,
	"1020":       ConditionLightningRainy,
	"1060":       ConditionSnowy,
	"1070":       ConditionSnowy,
	"1080":       ConditionSnowyRainy,
	"1140":       ConditionPouring,
	"1160":       ConditionFog,
	"1220":       ConditionPartlyCloudy,
	"1220-night": ConditionPartlyCloudy,
	"1230":       ConditionCloudy,
	"1250":       ConditionSunny,
	"1250-night": ConditionClearNight,
	"1260":       ConditionWindy,
	"1270":       ConditionSunny,
	"1300":       ConditionHail,
	"1310":       ConditionSunny,
	"1320":       ConditionHail,
	"1510":       ConditionLightningRainy,
	"1520":       ConditionSnowy,
	"1530":       ConditionRainy,
	"1540":       ConditionRainy,
	"1560":       ConditionRainy,
	"1570":       ConditionExceptional,
	"1580":       ConditionExceptional,
	"1590":       ConditionExceptional,
}

var weatherCodeIcons = map[string]string{
	"1010":       "mdi:weather-dust",
	"1020":       "mdi:weather-lightning-rainy",
	"1060":       "mdi:weather-snowy",
	"1070":       "mdi:weather-snowy",
	"1080":       "mdi:weather-snowy-rainy",
	"1140":       "mdi:weather-pouring",
	"1160":       "mdi:weather-fog",
	"1220":       "mdi:weather-partly-cloudy",
	"1220-night": "mdi:weather-partly-cloudy-night",
	"1230":       "mdi:weather-cloudy",
	"1250":       "mdi:weather-sunny",
	"1250-night": "mdi:clear-night",
	"1260":       "mdi:weather-windy",
	"1270":       "mdi:weather-fog",
	"1300":       "mdi:snowflake-melt",
	"1310":       "mdi:weather-sunny-alert",
	"1320":       "mdi:snowflake-alert",
	"1510":       "mdi:weather-lightning",
	"1520":       "mdi:weather-snowy-heavy",
	"1530":       "mdi:weather-partly-rainy",
	"1540":       "mdi:weather-rainy",
	"1560":       "mdi:weather-rainy",
	"1570":       "mdi:weather-dust",
	"1580":       "mdi:weather-sunny-alert",
	"1590":       "mdi:snowflake-alert",
}

// Bearings in degrees by IMS wind direction id, see https://ims.gov.il/en/wind_directions
var windBearings = map[int]float64{
	1:  360,
	2:  23,
	3:  45,
	4:  68,
	5:  90,
	6:  113,
	7:  135,
	8:  150,
	9:  180,
	10: 203,
	11: 225,
	12: 248,
	13: 270,
	14: 293,
	15: 315,
	16: 338,
	17: 0,
}

// Condition maps an IMS weather code to a weather condition. Unknown and empty
// codes yield "".
func Condition(code string) string {
	return weatherCodeConditions[code]
}

// WeatherIcon maps an IMS weather code to an icon, defaulting to sunny
func WeatherIcon(code string) string {
	if icon, ok := weatherCodeIcons[code]; ok {
		return icon
	}
	return "mdi:weather-sunny"
}

// WindBearing maps an IMS wind direction id to a bearing. Nil and unknown ids yield nil.
func WindBearing(id *int) *float64 {
	if id == nil {
		return nil
	}
	bearing, ok := windBearings[*id]
	if !ok {
		return nil
	}
	return &bearing
}

// NightAdjustedCode turns a clear-sky code into its night variant between 21:00 and 05:59.
func NightAdjustedCode(hour int, code string) string {
	if code == "1250" && (hour < 6 || hour > 20) {
		return code + nightSuffix
	}
	return code
}

// NightAdjustedCodeForLabel applies NightAdjustedCode to an "HH:MM" hour label.
// Labels that do not parse leave the code unchanged.
func NightAdjustedCodeForLabel(label string, code string) string {
	hh, _, _ := strings.Cut(label, ":")
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return code
	}
	return NightAdjustedCode(hour, code)
}

// NightAdjustedCodeAt applies NightAdjustedCode using the wall clock hour of t in loc.
func NightAdjustedCodeAt(t time.Time, loc *time.Location, code string) string {
	if t.IsZero() {
		return code
	}
	if loc != nil {
		t = t.In(loc)
	}
	return NightAdjustedCode(t.Hour(), code)
}
