package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"imsweather.app/internal/core/cities"
	"imsweather.app/internal/core/entry"
	"imsweather.app/internal/core/sensor"
	"imsweather.app/internal/core/weather"
	"imsweather.app/internal/mocks"
	"imsweather.app/internal/ports"
	"imsweather.app/pkg/errors"
)

type fakeEntryUseCase struct {
	entries     map[string]*entry.Entry
	setupErr    error
	refreshErr  error
	lastParams  entry.SetupParams
	refreshed   []string
	states      []sensor.State
	forecast    []sensor.ForecastItem
	forecastErr error
}

func newFakeEntryUseCase() *fakeEntryUseCase {
	return &fakeEntryUseCase{entries: map[string]*entry.Entry{}}
}

func (f *fakeEntryUseCase) Setup(_ context.Context, params entry.SetupParams) (*entry.Entry, error) {
	f.lastParams = params
	if f.setupErr != nil && !errors.IsInitializationError(f.setupErr) {
		return nil, f.setupErr
	}
	e := &entry.Entry{ID: "entry-1", Name: params.Name, City: entry.City{ID: params.CityID}, Language: params.Language}
	e.ApplyDefaults()
	f.entries[e.ID] = e
	return e, f.setupErr
}

func (f *fakeEntryUseCase) Reload(_ context.Context, id string, params entry.SetupParams) (*entry.Entry, error) {
	if _, ok := f.entries[id]; !ok {
		return nil, errors.NewNotFoundError("entry " + id + " not found")
	}
	f.lastParams = params
	e := &entry.Entry{ID: id, City: entry.City{ID: params.CityID}, Mode: params.Mode}
	e.ApplyDefaults()
	f.entries[id] = e
	return e, nil
}

func (f *fakeEntryUseCase) Remove(_ context.Context, id string) error {
	if _, ok := f.entries[id]; !ok {
		return errors.NewNotFoundError("entry " + id + " not found")
	}
	delete(f.entries, id)
	return nil
}

func (f *fakeEntryUseCase) Get(_ context.Context, id string) (entry.View, error) {
	e, ok := f.entries[id]
	if !ok {
		return entry.View{}, errors.NewNotFoundError("entry " + id + " not found")
	}
	return entry.View{Entry: e, Status: entry.StatusLoaded}, nil
}

func (f *fakeEntryUseCase) List(_ context.Context) ([]entry.View, error) {
	views := make([]entry.View, 0, len(f.entries))
	for _, e := range f.entries {
		views = append(views, entry.View{Entry: e, Status: entry.StatusLoaded})
	}
	return views, nil
}

func (f *fakeEntryUseCase) States(id string) ([]sensor.State, error) {
	if _, ok := f.entries[id]; !ok {
		return nil, errors.NewNotFoundError("entry " + id + " not found")
	}
	return f.states, nil
}

func (f *fakeEntryUseCase) Forecast(id, mode string) ([]sensor.ForecastItem, error) {
	if f.forecastErr != nil {
		return nil, f.forecastErr
	}
	if _, ok := f.entries[id]; !ok {
		return nil, errors.NewNotFoundError("entry " + id + " not found")
	}
	return f.forecast, nil
}

func (f *fakeEntryUseCase) Refresh(_ context.Context, id string) error {
	f.refreshed = append(f.refreshed, id)
	return f.refreshErr
}

type fakeCatalog struct {
	list []cities.City
	err  error
}

func (f *fakeCatalog) Cities(_ context.Context, _ string) ([]cities.City, error) {
	return f.list, f.err
}

func (f *fakeCatalog) Closest(_ context.Context, _ string, lat, lon float64) (cities.City, float64, error) {
	if f.err != nil {
		return cities.City{}, 0, f.err
	}
	city, distance, _ := cities.ClosestCity(f.list, lat, lon)
	return city, distance, nil
}

type staticLister []*weather.Coordinator

func (l staticLister) Coordinators() []*weather.Coordinator { return l }

type staticHealth map[string]ports.HealthStatus

func (h staticHealth) CheckAll(context.Context) map[string]ports.HealthStatus { return h }

type testServer struct {
	router  *gin.Engine
	entries *fakeEntryUseCase
	catalog *fakeCatalog
}

func setupTestServer(t *testing.T, lister CoordinatorLister, health ports.SystemHealthChecker) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, RegisterValidators())

	if lister == nil {
		lister = staticLister{}
	}
	if health == nil {
		health = staticHealth{"database": {Component: "database", Status: StatusHealthy}}
	}

	entries := newFakeEntryUseCase()
	catalog := &fakeCatalog{list: []cities.City{
		{ID: "1", Name: "Jerusalem", Latitude: 31.7781, Longitude: 35.2164},
		{ID: "2", Name: "Tel Aviv - Yafo", Latitude: 32.0833, Longitude: 34.8},
	}}

	server, err := NewHTTPServerAdapter(ServerOptions{
		EntryUseCase:  entries,
		Cities:        catalog,
		Coordinators:  lister,
		HealthChecker: health,
		Gatherer:      prometheus.NewRegistry(),
	})
	require.NoError(t, err)

	return &testServer{router: server.GetRouter(), entries: entries, catalog: catalog}
}

func (ts *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func TestServerOptions_Validate(t *testing.T) {
	_, err := NewHTTPServerAdapter(ServerOptions{})
	assert.True(t, errors.IsValidationError(err))
}

func TestEntryHandlers_Create(t *testing.T) {
	ts := setupTestServer(t, nil, nil)

	tests := []struct {
		name           string
		body           string
		setupErr       error
		expectedStatus int
	}{
		{"Valid", `{"city_id":"1","language":"he","platforms":["Sensor","Weather"]}`, nil, http.StatusCreated},
		{"MissingCity", `{"language":"en"}`, nil, http.StatusBadRequest},
		{"NonNumericCity", `{"city_id":"abc"}`, nil, http.StatusBadRequest},
		{"UnknownLanguage", `{"city_id":"1","language":"fr"}`, nil, http.StatusBadRequest},
		{"UnknownPlatform", `{"city_id":"1","platforms":["Camera"]}`, nil, http.StatusBadRequest},
		{"UnknownCondition", `{"city_id":"1","monitored_conditions":["ims_nothing"]}`, nil, http.StatusBadRequest},
		{"BadMode", `{"city_id":"1","mode":"weekly"}`, nil, http.StatusBadRequest},
		{"Duplicate", `{"city_id":"1"}`, errors.NewAlreadyExistsError("entry already configured: 1-en"), http.StatusConflict},
		{"Offline", `{"city_id":"1"}`, errors.NewExternalAPIError("IMS API is not reachable", nil), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.entries.setupErr = tt.setupErr
			w := ts.do(http.MethodPost, "/api/entries", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}

	t.Run("ParamsForwarded", func(t *testing.T) {
		ts.entries.setupErr = nil
		w := ts.do(http.MethodPost, "/api/entries", `{"name":"Home","city_id":"2","language":"en","mode":"hourly","update_interval":15}`)
		require.Equal(t, http.StatusCreated, w.Code)

		assert.Equal(t, "2", ts.entries.lastParams.CityID)
		assert.Equal(t, "hourly", ts.entries.lastParams.Mode)
		assert.Equal(t, 15, ts.entries.lastParams.UpdateInterval)

		var response EntryResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "entry-1", response.ID)
		assert.Equal(t, "Home", response.Name)
	})
}

func TestEntryHandlers_CreateSetupRetry(t *testing.T) {
	ts := setupTestServer(t, nil, nil)
	ts.entries.setupErr = errors.NewInitializationError("first refresh of 1-en failed", nil)

	w := ts.do(http.MethodPost, "/api/entries", `{"city_id":"1"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var response SetupRetryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "first refresh of 1-en failed", response.Error)
	assert.Equal(t, "entry-1", response.Entry.ID)
	assert.Contains(t, ts.entries.entries, "entry-1")
}

func TestEntryHandlers_Lifecycle(t *testing.T) {
	ts := setupTestServer(t, nil, nil)
	ts.entries.entries["e1"] = &entry.Entry{ID: "e1", City: entry.City{ID: "1", Name: "Jerusalem"}, Language: "en"}

	t.Run("List", func(t *testing.T) {
		w := ts.do(http.MethodGet, "/api/entries", "")
		require.Equal(t, http.StatusOK, w.Code)

		var response []EntryResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response, 1)
		assert.Equal(t, "Jerusalem", response[0].CityName)
		assert.Equal(t, entry.StatusLoaded, response[0].Status)
	})

	t.Run("Get", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/api/entries/e1", "").Code)
		assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, "/api/entries/missing", "").Code)
	})

	t.Run("Reload", func(t *testing.T) {
		w := ts.do(http.MethodPut, "/api/entries/e1", `{"city_id":"1","mode":"hourly"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "hourly", ts.entries.entries["e1"].Mode)

		assert.Equal(t, http.StatusNotFound, ts.do(http.MethodPut, "/api/entries/missing", `{"city_id":"1"}`).Code)
		assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodPut, "/api/entries/e1", `{}`).Code)
	})

	t.Run("States", func(t *testing.T) {
		ts.entries.states = []sensor.State{{EntityID: "sensor.ims_temperature", State: 21.5, Available: true}}
		w := ts.do(http.MethodGet, "/api/entries/e1/states", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "sensor.ims_temperature")
	})

	t.Run("Forecast", func(t *testing.T) {
		w := ts.do(http.MethodGet, "/api/entries/e1/forecast?mode=daily", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())

		temp := 28.0
		ts.entries.forecast = []sensor.ForecastItem{{Datetime: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), Temperature: &temp}}
		w = ts.do(http.MethodGet, "/api/entries/e1/forecast", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"temperature":28`)

		ts.entries.forecastErr = errors.NewValidationError("invalid forecast mode: weekly")
		assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodGet, "/api/entries/e1/forecast?mode=weekly", "").Code)
		ts.entries.forecastErr = nil
	})

	t.Run("Refresh", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, ts.do(http.MethodPost, "/api/entries/e1/refresh", "").Code)

		ts.entries.refreshErr = errors.NewRefreshError("refresh of entry e1 failed", nil)
		assert.Equal(t, http.StatusServiceUnavailable, ts.do(http.MethodPost, "/api/entries/e1/refresh", "").Code)
		assert.Equal(t, []string{"e1", "e1"}, ts.entries.refreshed)
	})

	t.Run("Delete", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, ts.do(http.MethodDelete, "/api/entries/e1", "").Code)
		assert.Equal(t, http.StatusNotFound, ts.do(http.MethodDelete, "/api/entries/e1", "").Code)
	})
}

func TestCitiesHandlers(t *testing.T) {
	ts := setupTestServer(t, nil, nil)

	t.Run("List", func(t *testing.T) {
		w := ts.do(http.MethodGet, "/api/cities?language=he", "")
		require.Equal(t, http.StatusOK, w.Code)

		var response []cities.City
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response, 2)
	})

	t.Run("InvalidLanguage", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodGet, "/api/cities?language=ru", "").Code)
	})

	t.Run("Closest", func(t *testing.T) {
		w := ts.do(http.MethodGet, "/api/cities/closest?lat=32.08&lon=34.78", "")
		require.Equal(t, http.StatusOK, w.Code)

		var response ClosestCityResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "2", response.City.ID)
		assert.Less(t, response.DistanceKm, 5.0)
	})

	t.Run("ClosestMissingCoordinates", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodGet, "/api/cities/closest?lat=32.08", "").Code)
		assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodGet, "/api/cities/closest?lat=132&lon=34", "").Code)
	})

	t.Run("SourceDown", func(t *testing.T) {
		ts.catalog.err = errors.NewExternalAPIError("failed to retrieve cities", nil)
		w := ts.do(http.MethodGet, "/api/cities", "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.True(t, strings.Contains(w.Body.String(), "External service unavailable"))
	})
}

func TestStatusHandlers(t *testing.T) {
	logger := mocks.NewLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()

	coordinator, err := weather.NewCoordinator(weather.CoordinatorConfig{
		Key:      weather.LocationKey{Language: "en", LocationID: "1"},
		Interval: 30 * time.Minute,
		Timeout:  time.Second,
		Location: time.UTC,
	}, weather.CoordinatorDependencies{
		Source:    mocks.NewWeatherSource(t),
		Scheduler: mocks.NewScheduler(t),
		Logger:    logger,
		Metrics:   mocks.NewMetricsCollector(t),
	})
	require.NoError(t, err)

	t.Run("Coordinators", func(t *testing.T) {
		ts := setupTestServer(t, staticLister{coordinator}, nil)
		w := ts.do(http.MethodGet, "/api/coordinators", "")
		require.Equal(t, http.StatusOK, w.Code)

		var response []CoordinatorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response, 1)
		assert.Equal(t, "en-1", response[0].Key)
		assert.Equal(t, 30.0, response[0].IntervalMinutes)
		assert.False(t, response[0].HasData)
	})

	t.Run("HealthDegraded", func(t *testing.T) {
		ts := setupTestServer(t, nil, staticHealth{
			"database":     {Component: "database", Status: StatusHealthy},
			"coordinators": {Component: "coordinators", Status: StatusDegraded},
		})
		w := ts.do(http.MethodGet, "/api/health", "")
		require.Equal(t, http.StatusOK, w.Code)

		var response HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, StatusDegraded, response.Status)
		assert.Len(t, response.Components, 2)
	})

	t.Run("HealthUnhealthy", func(t *testing.T) {
		ts := setupTestServer(t, nil, staticHealth{
			"ims": {Component: "ims", Status: StatusUnhealthy, Error: "IMS API returned status 503"},
		})
		assert.Equal(t, http.StatusServiceUnavailable, ts.do(http.MethodGet, "/api/health", "").Code)
	})

	t.Run("Metrics", func(t *testing.T) {
		ts := setupTestServer(t, nil, nil)
		assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/metrics", "").Code)
	})
}
