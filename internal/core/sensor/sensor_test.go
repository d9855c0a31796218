package sensor

import (
	"sync"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"imsweather.app/internal/core/weather"
)

type fakeSource struct {
	mu        sync.Mutex
	key       weather.LocationKey
	data      *weather.Snapshot
	success   bool
	loc       *time.Location
	now       time.Time
	listeners map[int]func()
	nextID    int
}

func newFakeSource(t *testing.T) *fakeSource {
	loc, err := time.LoadLocation(weather.ReferenceTimeZone)
	require.NoError(t, err)
	return &fakeSource{
		key:       weather.LocationKey{Language: "en", LocationID: "1"},
		loc:       loc,
		now:       time.Date(2024, time.June, 10, 15, 0, 0, 0, loc),
		listeners: map[int]func(){},
	}
}

func (f *fakeSource) Key() weather.LocationKey { return f.key }
func (f *fakeSource) Location() *time.Location { return f.loc }
func (f *fakeSource) Now() time.Time           { return f.now }

func (f *fakeSource) Data() *weather.Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data
}

func (f *fakeSource) LastUpdateSuccess() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.success
}

func (f *fakeSource) AddListener(fn func()) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	f.listeners[id] = fn
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.listeners, id)
	}
}

func (f *fakeSource) publish(snapshot *weather.Snapshot, success bool) {
	f.mu.Lock()
	if snapshot != nil {
		f.data = snapshot
	}
	f.success = success
	listeners := make([]func(), 0, len(f.listeners))
	for _, fn := range f.listeners {
		listeners = append(listeners, fn)
	}
	f.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}

func ptr[T any](v T) *T {
	return &v
}

func (f *fakeSource) sampleSnapshot() *weather.Snapshot {
	dayAt := func(offset int) time.Time {
		return time.Date(2024, time.June, 10+offset, 0, 0, 0, 0, f.loc)
	}
	return &weather.Snapshot{
		CurrentWeather: &weather.CurrentWeather{
			Location:        "Jerusalem",
			Temperature:     ptr(21.456),
			FeelsLike:       ptr(20.0),
			Humidity:        ptr(45.0),
			WindSpeed:       ptr(12.0),
			WindDirectionID: ptr(5),
			Rain:            ptr(0.4),
			UVIndex:         ptr(6.7),
			UVLevel:         "V",
			MaxUVIndex:      ptr(9.0),
			WeatherCode:     "1250",
			Description:     "Clear",
			ForecastTime:    time.Date(2024, time.June, 10, 22, 0, 0, 0, f.loc),
		},
		Forecast: weather.Forecast{Days: []weather.DailyForecast{
			{
				Date: dayAt(0), Day: "Monday", WeatherCode: "1220", Weather: "Partly cloudy",
				MinimumTemperature: ptr(18.0), MaximumTemperature: ptr(29.0),
				Hours: []weather.HourlyForecast{
					{Hour: "17:00", WeatherCode: "1250", Rain: ptr(0.5), PreciseTemperature: ptr(27.5), WindDirectionID: ptr(9)},
					{Hour: "21:00", WeatherCode: "0", Rain: ptr(1.0)},
				},
			},
			{
				Date: dayAt(1), Day: "Tuesday", WeatherCode: "1530", Weather: "Rain",
				Hours: []weather.HourlyForecast{
					{Hour: "08:00", WeatherCode: "1530", Rain: ptr(2.0)},
				},
			},
		}},
		Images: &weather.RadarImages{},
	}
}

func TestKinds_TableIsComplete(t *testing.T) {
	kinds := Kinds()
	require.Len(t, kinds, 10)
	for i, kind := range kinds {
		assert.Equal(t, Kind(i), kind)
		d, ok := Describe(kind)
		require.True(t, ok)
		assert.Equal(t, kind, d.Kind)
		assert.Contains(t, d.Key, KeyPrefix)
		assert.NotNil(t, d.Value)

		resolved, ok := KindFromKey(d.Key)
		assert.True(t, ok)
		assert.Equal(t, kind, resolved)
	}

	_, ok := KindFromKey("ims_pm10")
	assert.False(t, ok)
	assert.True(t, IsKnownCondition("ims_is_raining"))
	assert.Len(t, AllConditionKeys(), 11)
}

func TestKinds_UVLevel(t *testing.T) {
	d, _ := Describe(KindCurrentUVLevel)
	tests := map[string]string{
		"E": UVLevelExtreme,
		"V": UVLevelVeryHigh,
		"H": UVLevelHigh,
		"M": UVLevelModerate,
		"L": UVLevelLow,
		"":  UVLevelLow,
	}
	for code, expected := range tests {
		assert.Equal(t, expected, d.Value(&weather.CurrentWeather{UVLevel: code}, nil), "code %q", code)
	}
}

func TestKinds_RainAndIsRaining(t *testing.T) {
	rain, _ := Describe(KindRain)
	isRaining, _ := DescribeBinary(BinaryKindIsRaining)

	tests := []struct {
		name     string
		rain     *float64
		expected bool
	}{
		{name: "Missing", rain: nil, expected: false},
		{name: "Zero", rain: ptr(0.0), expected: false},
		{name: "Positive", rain: ptr(0.2), expected: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current := &weather.CurrentWeather{Rain: tt.rain}
			assert.Equal(t, tt.expected, isRaining.Value(current))
			if tt.expected {
				assert.Equal(t, RainStateRaining, rain.Value(current, nil))
			} else {
				assert.Equal(t, RainStateNotRaining, rain.Value(current, nil))
			}
		})
	}
}

func TestKinds_ForecastTimeInReferenceZone(t *testing.T) {
	d, _ := Describe(KindForecastTime)
	loc, err := time.LoadLocation(weather.ReferenceTimeZone)
	require.NoError(t, err)

	value := d.Value(&weather.CurrentWeather{ForecastTime: time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)}, loc)

	ts, ok := value.(time.Time)
	require.True(t, ok)
	assert.Equal(t, 15, ts.Hour())
	assert.Nil(t, d.Value(&weather.CurrentWeather{}, loc))
}

func TestConditions(t *testing.T) {
	assert.Equal(t, ConditionSunny, Condition("1250"))
	assert.Equal(t, ConditionClearNight, Condition("1250-night"))
	assert.Equal(t, ConditionRainy, Condition("1530"))
	assert.Equal(t, ConditionExceptional, Condition("1590"))
	assert.Equal(t, "", Condition("0"))
	assert.Equal(t, "", Condition(""))

	assert.Equal(t, "1250-night", NightAdjustedCode(21, "1250"))
	assert.Equal(t, "1250-night", NightAdjustedCode(5, "1250"))
	assert.Equal(t, "1250", NightAdjustedCode(6, "1250"))
	assert.Equal(t, "1250", NightAdjustedCode(20, "1250"))
	assert.Equal(t, "1220", NightAdjustedCode(23, "1220"))
	assert.Equal(t, "1250-night", NightAdjustedCodeForLabel("03:00", "1250"))
	assert.Equal(t, "1250", NightAdjustedCodeForLabel("bad", "1250"))

	assert.Equal(t, "mdi:weather-rainy", WeatherIcon("1540"))
	assert.Equal(t, "mdi:weather-sunny", WeatherIcon("9999"))
}

func TestWindBearing(t *testing.T) {
	assert.Equal(t, 360.0, *WindBearing(ptr(1)))
	assert.Equal(t, 90.0, *WindBearing(ptr(5)))
	assert.Equal(t, 0.0, *WindBearing(ptr(17)))
	assert.Nil(t, WindBearing(ptr(0)))
	assert.Nil(t, WindBearing(ptr(42)))
	assert.Nil(t, WindBearing(nil))
}

func TestSensor_FollowsCoordinator(t *testing.T) {
	source := newFakeSource(t)
	e, err := NewSensor(source, KindTemperature)
	require.NoError(t, err)

	state := e.State()
	assert.False(t, state.Available)
	assert.Nil(t, state.State)
	assert.Equal(t, "sensor.ims_temperature", state.EntityID)
	assert.Equal(t, "ims_temperature_1_en", state.UniqueID)

	e.Attach()
	e.Attach()
	source.publish(source.sampleSnapshot(), true)

	state = e.State()
	assert.True(t, state.Available)
	assert.Equal(t, 21.456, state.State)
	assert.Equal(t, "°C", state.Unit)
	assert.Equal(t, Attribution, state.Attribution)

	source.publish(nil, false)
	state = e.State()
	assert.False(t, state.Available)
	assert.Equal(t, 21.456, state.State)

	e.Detach()
	assert.Empty(t, source.listeners)
}

func TestForecastDaySensor(t *testing.T) {
	source := newFakeSource(t)
	source.publish(source.sampleSnapshot(), true)

	today := NewForecastDaySensor(source, 0)
	tomorrow := NewForecastDaySensor(source, 1)
	missing := NewForecastDaySensor(source, 5)

	state := today.State()
	assert.Equal(t, "sensor.ims_forecast_today", state.EntityID)
	assert.Equal(t, "Monday", state.State)
	assert.True(t, state.Available)
	assert.Contains(t, state.Attributes, "17:00")
	assert.Equal(t, map[string]any{"value": "2024/06/10"}, state.Attributes["date"])

	assert.Equal(t, "day1", tomorrow.State().Name)
	assert.Equal(t, "Tuesday", tomorrow.State().State)
	assert.False(t, missing.State().Available)
}

func TestWeatherEntity(t *testing.T) {
	source := newFakeSource(t)
	source.publish(source.sampleSnapshot(), true)

	w := NewWeatherEntity(source, "IMS Weather", "ims-1-en-daily-Weather-IMS Weather", ForecastModeDaily)
	state := w.State()

	assert.Equal(t, "weather.ims_weather", state.EntityID)
	assert.Equal(t, ConditionClearNight, state.State)
	assert.Equal(t, 21.46, state.Attributes["temperature"])
	assert.Equal(t, 90.0, *(state.Attributes["wind_bearing"].(*float64)))
	assert.Equal(t, 6, state.Attributes["uv_index"])
	assert.Equal(t, "Clear", state.Attributes["description"])

	daily := w.Forecast("")
	require.Len(t, daily, 2)
	assert.Equal(t, ConditionPartlyCloudy, daily[0].Condition)
	assert.Equal(t, 1.5, *daily[0].Precipitation)
	assert.Equal(t, 29.0, *daily[0].Temperature)
	assert.Equal(t, 18.0, *daily[0].TemplLow)

	hourly := w.Forecast(ForecastModeHourly)
	require.Len(t, hourly, 3)
	assert.Equal(t, ConditionSunny, hourly[0].Condition)
	assert.Equal(t, 180.0, *hourly[0].WindBearing)
	assert.Equal(t, 27.5, *hourly[0].Temperature)
	// "0" inherits the previous code, which turns into its night variant at 21:00.
	assert.Equal(t, ConditionClearNight, hourly[1].Condition)
	assert.Equal(t, ConditionRainy, hourly[2].Condition)
}

func TestWeatherEntity_FallsBackToForecastDay(t *testing.T) {
	source := newFakeSource(t)
	snapshot := source.sampleSnapshot()
	snapshot.CurrentWeather.WeatherCode = ""
	snapshot.CurrentWeather.Description = "Nothing"
	source.publish(snapshot, true)

	w := NewWeatherEntity(source, "Home", "uid", "")

	assert.Equal(t, ForecastModeDaily, w.Mode())
	assert.Equal(t, ConditionPartlyCloudy, w.State().State)
	assert.Equal(t, "Partly cloudy", w.State().Attributes["description"])
}

func TestBuild(t *testing.T) {
	source := newFakeSource(t)
	source.publish(source.sampleSnapshot(), true)

	all := Build(source, BuildOptions{Name: "IMS Weather", Platforms: []string{PlatformSensor, PlatformWeather}})
	assert.Len(t, all.Sensors, 10)
	assert.Len(t, all.BinarySensors, 1)
	assert.Len(t, all.ForecastDays, 2)
	require.NotNil(t, all.Weather)
	assert.Len(t, all.All(), 14)

	filtered := Build(source, BuildOptions{
		Platforms:  []string{PlatformSensor},
		Conditions: []string{"ims_temperature", "ims_is_raining"},
	})
	require.Len(t, filtered.Sensors, 1)
	assert.Equal(t, "sensor.ims_temperature", filtered.Sensors[0].State().EntityID)
	assert.Len(t, filtered.BinarySensors, 1)
	assert.Nil(t, filtered.Weather)

	weatherOnly := Build(source, BuildOptions{Name: "x", Platforms: []string{PlatformWeather}})
	assert.Empty(t, weatherOnly.Sensors)
	assert.NotNil(t, weatherOnly.Weather)

	weatherOnly.Attach()
	assert.Len(t, source.listeners, 1)
	weatherOnly.Detach()
	assert.Empty(t, source.listeners)
}
