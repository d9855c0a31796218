package entry

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"imsweather.app/internal/core/cities"
	"imsweather.app/internal/core/sensor"
	"imsweather.app/internal/core/weather"
	mocks "imsweather.app/internal/mocks"
	"imsweather.app/internal/ports"
	"imsweather.app/pkg/errors"
)

func ptr[T any](v T) *T {
	return &v
}

type staticCities map[string]string

func (s staticCities) Find(_ context.Context, _ string, id string) (cities.City, error) {
	name, ok := s[id]
	if !ok {
		return cities.City{}, errors.NewNotFoundError("city " + id + " not found")
	}
	return cities.City{ID: id, Name: name}, nil
}

type useCaseFixture struct {
	repo      *mocks.EntryRepository
	probe     *mocks.StatusProbe
	factory   *mocks.WeatherSourceFactory
	scheduler *mocks.Scheduler
	registry  *weather.Registry
	loc       *time.Location
	now       time.Time
	useCase   *UseCase
}

func newUseCaseFixture(t *testing.T) *useCaseFixture {
	loc, err := time.LoadLocation(weather.ReferenceTimeZone)
	require.NoError(t, err)

	logger := mocks.NewLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	metrics := mocks.NewMetricsCollector(t)
	metrics.EXPECT().RecordRefresh(mock.Anything, mock.Anything, mock.Anything).Maybe()
	metrics.EXPECT().SetLastSuccess(mock.Anything, mock.Anything).Maybe()
	metrics.EXPECT().SetListeners(mock.Anything, mock.Anything).Maybe()

	f := &useCaseFixture{
		repo:      mocks.NewEntryRepository(t),
		probe:     mocks.NewStatusProbe(t),
		factory:   mocks.NewWeatherSourceFactory(t),
		scheduler: mocks.NewScheduler(t),
		loc:       loc,
		now:       time.Date(2024, time.June, 10, 15, 0, 0, 0, loc),
	}

	f.registry, err = weather.NewRegistry(weather.RegistryConfig{
		Location: loc,
		Now:      func() time.Time { return f.now },
	}, weather.RegistryDependencies{
		SourceFactory: f.factory,
		Scheduler:     f.scheduler,
		Logger:        logger,
		Metrics:       metrics,
	})
	require.NoError(t, err)

	f.useCase, err = NewUseCase(UseCaseDependencies{
		Repository: f.repo,
		Registry:   f.registry,
		Probe:      f.probe,
		Cities:     staticCities{"1": "Jerusalem", "2": "Tel Aviv - Yafo"},
		Logger:     logger,
		Now:        func() time.Time { return f.now },
	})
	require.NoError(t, err)
	t.Cleanup(f.useCase.Shutdown)
	return f
}

func (f *useCaseFixture) healthySource(t *testing.T) *mocks.WeatherSource {
	source := mocks.NewWeatherSource(t)
	source.EXPECT().GetCurrentAnalysis(mock.Anything).Return(&ports.CurrentAnalysisData{
		Temperature:  ptr(24.0),
		Humidity:     ptr(50.0),
		Rain:         ptr(0.0),
		UVIndex:      ptr(7.0),
		UVLevel:      "H",
		WeatherCode:  "1250",
		Description:  "Clear",
		ForecastTime: f.now.Add(-30 * time.Minute),
	}, nil).Maybe()
	source.EXPECT().GetForecast(mock.Anything).Return(&ports.ForecastData{Days: []ports.DailyForecastData{
		{
			Date:               time.Date(2024, time.June, 10, 0, 0, 0, 0, f.loc),
			MaximumTemperature: ptr(30.0),
			MinimumTemperature: ptr(19.0),
			WeatherCode:        "1250",
			Hours: []ports.HourlyForecastData{
				{Hour: "17:00", ForecastTime: time.Date(2024, time.June, 10, 17, 0, 0, 0, f.loc), Temperature: ptr(27.0), Rain: ptr(0.0)},
				{Hour: "20:00", Temperature: ptr(23.0), Rain: ptr(0.2)},
			},
		},
		{
			Date:               time.Date(2024, time.June, 11, 0, 0, 0, 0, f.loc),
			MaximumTemperature: ptr(31.0),
			MinimumTemperature: ptr(20.0),
			WeatherCode:        "1220",
			Hours: []ports.HourlyForecastData{
				{Hour: "08:00", Temperature: ptr(22.0), Rain: ptr(0.0)},
			},
		},
	}}, nil).Maybe()
	source.EXPECT().GetRadarImages(mock.Anything).Return(&ports.RadarImagesData{}, nil).Maybe()
	return source
}

func (f *useCaseFixture) failingSource(t *testing.T) *mocks.WeatherSource {
	source := mocks.NewWeatherSource(t)
	source.EXPECT().GetCurrentAnalysis(mock.Anything).Return(nil, fmt.Errorf("connection refused")).Maybe()
	return source
}

func (f *useCaseFixture) expectNewEntry(params SetupParams) {
	f.repo.EXPECT().FindByUniqueID(mock.Anything, mock.Anything).
		Return(nil, errors.NewNotFoundError("entry not found")).Once()
	f.probe.EXPECT().IsOnline(mock.Anything, params.Language, params.CityID).Return(nil).Once()
	f.repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
}

func (f *useCaseFixture) expectSchedule(key string) *int32 {
	var cancelled int32
	f.scheduler.EXPECT().Every("refresh:"+key, time.Hour, mock.Anything).
		Return(func() { atomic.AddInt32(&cancelled, 1) }, nil).Once()
	return &cancelled
}

func TestNewUseCase_Validation(t *testing.T) {
	_, err := NewUseCase(UseCaseDependencies{})
	assert.True(t, errors.IsValidationError(err))
}

func TestSetup_Success(t *testing.T) {
	f := newUseCaseFixture(t)
	params := SetupParams{CityID: "1", Language: "en", Platforms: []string{sensor.PlatformSensor, sensor.PlatformWeather}}
	f.expectNewEntry(params)
	f.factory.EXPECT().NewSource("1", "en").Return(f.healthySource(t)).Once()
	f.expectSchedule("en-1")

	e, err := f.useCase.Setup(context.Background(), params)

	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "Jerusalem", e.City.Name)
	assert.Equal(t, DefaultName, e.Name)
	assert.Equal(t, sensor.ForecastModeDaily, e.Mode)
	assert.Equal(t, "ims-1-en-daily-Sensor+Weather-IMS Weather", e.UniqueID)

	f.repo.EXPECT().FindByID(mock.Anything, e.ID).Return(convertToPorts(e), nil).Once()
	view, err := f.useCase.Get(context.Background(), e.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusLoaded, view.Status)
	require.NotNil(t, view.Coordinator)
	assert.True(t, view.Coordinator.LastUpdateSuccess)

	states, err := f.useCase.States(e.ID)
	require.NoError(t, err)
	byID := map[string]sensor.State{}
	for _, s := range states {
		byID[s.EntityID] = s
	}
	assert.Equal(t, 24.0, byID["sensor.ims_temperature"].State)
	assert.Equal(t, "sunny", byID["weather.ims_weather"].State)
	assert.Contains(t, byID, "binary_sensor.ims_is_raining")
	assert.True(t, byID["sensor.ims_temperature"].Available)
}

func TestSetup_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		params SetupParams
	}{
		{"missing city", SetupParams{Language: "en"}},
		{"unsupported language", SetupParams{CityID: "1", Language: "fr"}},
		{"negative interval", SetupParams{CityID: "1", UpdateInterval: -5}},
		{"unknown mode", SetupParams{CityID: "1", Mode: "weekly"}},
		{"unknown platform", SetupParams{CityID: "1", Platforms: []string{"Camera"}}},
		{"unknown condition", SetupParams{CityID: "1", MonitoredConditions: []string{"ims_pressure"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newUseCaseFixture(t)
			_, err := f.useCase.Setup(context.Background(), tt.params)
			assert.True(t, errors.IsValidationError(err), err)
		})
	}
}

func TestSetup_AlreadyConfigured(t *testing.T) {
	f := newUseCaseFixture(t)
	f.repo.EXPECT().FindByUniqueID(mock.Anything, "ims-1-he-hourly-Weather-Home").
		Return(&ports.EntryData{ID: "existing"}, nil).Once()

	_, err := f.useCase.Setup(context.Background(), SetupParams{Name: "Home", CityID: "1", Language: "he", Mode: "hourly"})

	assert.True(t, errors.IsAlreadyExistsError(err))
}

func TestSetup_APIOffline(t *testing.T) {
	f := newUseCaseFixture(t)
	f.repo.EXPECT().FindByUniqueID(mock.Anything, mock.Anything).
		Return(nil, errors.NewNotFoundError("entry not found")).Once()
	f.probe.EXPECT().IsOnline(mock.Anything, "en", "1").Return(fmt.Errorf("status 503")).Once()

	_, err := f.useCase.Setup(context.Background(), SetupParams{CityID: "1"})

	assert.True(t, errors.IsExternalAPIError(err))
}

func TestSetup_FirstRefreshFailure(t *testing.T) {
	f := newUseCaseFixture(t)
	params := SetupParams{CityID: "1", Language: "en"}
	f.expectNewEntry(params)
	f.factory.EXPECT().NewSource("1", "en").Return(f.failingSource(t)).Once()

	e, err := f.useCase.Setup(context.Background(), params)

	require.Error(t, err)
	require.NotNil(t, e)
	assert.True(t, errors.IsInitializationError(err))
	assert.True(t, errors.IsFetchError(err))

	_, ok := f.registry.Get(weather.LocationKey{Language: "en", LocationID: "1"})
	assert.False(t, ok, "coordinator must be released")

	_, err = f.useCase.States(e.ID)
	assert.True(t, errors.IsInitializationError(err))

	f.repo.EXPECT().FindByID(mock.Anything, e.ID).Return(convertToPorts(e), nil).Once()
	view, err := f.useCase.Get(context.Background(), e.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusSetupRetry, view.Status)
	assert.Error(t, view.Error)
}

func TestRefresh_RetriesEntryNotReady(t *testing.T) {
	f := newUseCaseFixture(t)
	params := SetupParams{CityID: "1", Language: "en"}
	f.expectNewEntry(params)
	f.factory.EXPECT().NewSource("1", "en").Return(f.failingSource(t)).Once()
	e, err := f.useCase.Setup(context.Background(), params)
	require.Error(t, err)

	f.repo.EXPECT().FindByID(mock.Anything, e.ID).Return(convertToPorts(e), nil).Once()
	f.factory.EXPECT().NewSource("1", "en").Return(f.healthySource(t)).Once()
	f.expectSchedule("en-1")

	require.NoError(t, f.useCase.Refresh(context.Background(), e.ID))

	states, err := f.useCase.States(e.ID)
	require.NoError(t, err)
	assert.Len(t, states, 1)
}

func TestRefresh_LoadedEntry(t *testing.T) {
	f := newUseCaseFixture(t)
	params := SetupParams{CityID: "2", Language: "he"}
	f.expectNewEntry(params)
	f.factory.EXPECT().NewSource("2", "he").Return(f.healthySource(t)).Once()
	f.expectSchedule("he-2")
	e, err := f.useCase.Setup(context.Background(), params)
	require.NoError(t, err)

	f.now = f.now.Add(time.Hour)
	require.NoError(t, f.useCase.Refresh(context.Background(), e.ID))

	c, ok := f.registry.Get(e.LocationKey())
	require.True(t, ok)
	assert.Equal(t, f.now, c.LastUpdated())
}

func TestEntries_ShareCoordinatorUntilLastRemoved(t *testing.T) {
	f := newUseCaseFixture(t)
	ctx := context.Background()
	first := SetupParams{Name: "Home", CityID: "1", Language: "en"}
	second := SetupParams{Name: "Office", CityID: "1", Language: "en", Platforms: []string{sensor.PlatformSensor}}
	f.expectNewEntry(first)
	f.expectNewEntry(second)
	f.factory.EXPECT().NewSource("1", "en").Return(f.healthySource(t)).Once()
	cancelled := f.expectSchedule("en-1")

	home, err := f.useCase.Setup(ctx, first)
	require.NoError(t, err)
	office, err := f.useCase.Setup(ctx, second)
	require.NoError(t, err)
	assert.Len(t, f.registry.Coordinators(), 1)

	f.repo.EXPECT().FindByID(mock.Anything, home.ID).Return(convertToPorts(home), nil).Once()
	f.repo.EXPECT().Delete(mock.Anything, home.ID).Return(nil).Once()
	require.NoError(t, f.useCase.Remove(ctx, home.ID))
	assert.Len(t, f.registry.Coordinators(), 1)
	assert.Equal(t, int32(0), atomic.LoadInt32(cancelled))

	f.repo.EXPECT().FindByID(mock.Anything, office.ID).Return(convertToPorts(office), nil).Once()
	f.repo.EXPECT().Delete(mock.Anything, office.ID).Return(nil).Once()
	require.NoError(t, f.useCase.Remove(ctx, office.ID))
	assert.Empty(t, f.registry.Coordinators())
	assert.Equal(t, int32(1), atomic.LoadInt32(cancelled))
}

func TestRemove_NotFound(t *testing.T) {
	f := newUseCaseFixture(t)
	f.repo.EXPECT().FindByID(mock.Anything, "missing").Return(nil, errors.NewNotFoundError("entry not found")).Once()

	err := f.useCase.Remove(context.Background(), "missing")

	assert.True(t, errors.IsNotFoundError(err))
}

func TestForecast(t *testing.T) {
	f := newUseCaseFixture(t)
	params := SetupParams{CityID: "1", Language: "en", Mode: "hourly", Platforms: []string{sensor.PlatformSensor}}
	f.expectNewEntry(params)
	f.factory.EXPECT().NewSource("1", "en").Return(f.healthySource(t)).Once()
	f.expectSchedule("en-1")
	e, err := f.useCase.Setup(context.Background(), params)
	require.NoError(t, err)

	hourly, err := f.useCase.Forecast(e.ID, "")
	require.NoError(t, err)
	require.Len(t, hourly, 3)
	assert.Equal(t, time.Date(2024, time.June, 10, 17, 0, 0, 0, f.loc), hourly[0].Datetime)

	daily, err := f.useCase.Forecast(e.ID, sensor.ForecastModeDaily)
	require.NoError(t, err)
	require.Len(t, daily, 2)
	assert.Equal(t, "partlycloudy", daily[1].Condition)
	assert.InDelta(t, 0.2, *daily[0].Precipitation, 1e-9)

	_, err = f.useCase.Forecast(e.ID, "weekly")
	assert.True(t, errors.IsValidationError(err))

	_, err = f.useCase.Forecast("missing", "")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestReload_ChangesOptions(t *testing.T) {
	f := newUseCaseFixture(t)
	ctx := context.Background()
	params := SetupParams{CityID: "1", Language: "en"}
	f.expectNewEntry(params)
	f.factory.EXPECT().NewSource("1", "en").Return(f.healthySource(t)).Once()
	f.expectSchedule("en-1")
	e, err := f.useCase.Setup(ctx, params)
	require.NoError(t, err)

	f.repo.EXPECT().FindByID(mock.Anything, e.ID).Return(convertToPorts(e), nil).Once()
	f.repo.EXPECT().FindByUniqueID(mock.Anything, "ims-2-en-hourly-Weather-IMS Weather").
		Return(nil, errors.NewNotFoundError("entry not found")).Once()
	f.repo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(d *ports.EntryData) bool {
		return d.ID == e.ID && d.CityID == "2" && d.CityName == "Tel Aviv - Yafo" && d.Mode == "hourly"
	})).Return(nil).Once()
	f.factory.EXPECT().NewSource("2", "en").Return(f.healthySource(t)).Once()
	f.expectSchedule("en-2")

	updated, err := f.useCase.Reload(ctx, e.ID, SetupParams{CityID: "2", Language: "en", Mode: "hourly"})

	require.NoError(t, err)
	assert.Equal(t, e.CreatedAt, updated.CreatedAt)
	_, ok := f.registry.Get(weather.LocationKey{Language: "en", LocationID: "1"})
	assert.False(t, ok)
	_, ok = f.registry.Get(weather.LocationKey{Language: "en", LocationID: "2"})
	assert.True(t, ok)
}

func TestReload_ConflictingUniqueID(t *testing.T) {
	f := newUseCaseFixture(t)
	f.repo.EXPECT().FindByID(mock.Anything, "a").Return(&ports.EntryData{ID: "a", CityID: "1", Language: "en"}, nil).Once()
	f.repo.EXPECT().FindByUniqueID(mock.Anything, mock.Anything).Return(&ports.EntryData{ID: "b"}, nil).Once()

	_, err := f.useCase.Reload(context.Background(), "a", SetupParams{CityID: "2"})

	assert.True(t, errors.IsAlreadyExistsError(err))
}

func TestRestoreAll(t *testing.T) {
	f := newUseCaseFixture(t)
	stored := []*ports.EntryData{
		{ID: "a", UniqueID: "ims-1-en-daily-Weather-A", Name: "A", CityID: "1", Language: "en", Mode: "daily",
			UpdateInterval: 60, Platforms: []string{sensor.PlatformWeather}, CreatedAt: f.now},
		{ID: "b", UniqueID: "ims-2-he-daily-Weather-B", Name: "B", CityID: "2", Language: "he", Mode: "daily",
			UpdateInterval: 60, Platforms: []string{sensor.PlatformWeather}, CreatedAt: f.now.Add(time.Minute)},
	}
	f.repo.EXPECT().List(mock.Anything).Return(stored, nil)
	f.factory.EXPECT().NewSource("1", "en").Return(f.healthySource(t)).Once()
	f.factory.EXPECT().NewSource("2", "he").Return(f.failingSource(t)).Once()
	f.expectSchedule("en-1")

	loaded, err := f.useCase.RestoreAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, loaded)

	views, err := f.useCase.List(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "a", views[0].Entry.ID)
	assert.Equal(t, StatusLoaded, views[0].Status)
	assert.Equal(t, StatusSetupRetry, views[1].Status)
}

func TestList_NotLoaded(t *testing.T) {
	f := newUseCaseFixture(t)
	f.repo.EXPECT().List(mock.Anything).Return([]*ports.EntryData{{ID: "x", CityID: "1", Language: "en"}}, nil).Once()

	views, err := f.useCase.List(context.Background())

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, StatusNotLoaded, views[0].Status)
}
