package entry

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"imsweather.app/internal/core/cities"
	"imsweather.app/internal/core/sensor"
	"imsweather.app/internal/core/weather"
	"imsweather.app/internal/ports"
	"imsweather.app/pkg/errors"
)

// Runtime states of a persisted entry
const (
	StatusLoaded     = "loaded"
	StatusSetupRetry = "setup_retry"
	StatusNotLoaded  = "not_loaded"
)

// CoordinatorRegistry hands out shared coordinators by location key
type CoordinatorRegistry interface {
	Acquire(ctx context.Context, key weather.LocationKey, interval time.Duration) (*weather.Coordinator, error)
	Release(key weather.LocationKey)
}

// CityResolver looks up city names
type CityResolver interface {
	Find(ctx context.Context, language, id string) (cities.City, error)
}

type UseCaseDependencies struct {
	Repository ports.EntryRepository
	Registry   CoordinatorRegistry
	Probe      ports.StatusProbe
	Cities     CityResolver
	Logger     ports.Logger
	Now        func() time.Time
}

// SetupParams describes an entry to create or the new options of an existing one
type SetupParams struct {
	Name                string
	CityID              string
	Language            string
	Mode                string
	UpdateInterval      int
	ImagesPath          string
	Platforms           []string
	MonitoredConditions []string
}

// View is an entry together with its runtime state
type View struct {
	Entry       *Entry
	Status      string
	Error       error
	Coordinator *weather.CoordinatorStatus
}

type loadedEntry struct {
	entry       *Entry
	coordinator *weather.Coordinator
	entities    *sensor.EntitySet
	err         error
}

func (le *loadedEntry) status() string {
	if le.coordinator != nil {
		return StatusLoaded
	}
	return StatusSetupRetry
}

// UseCase manages the lifecycle of configured entries: persistence, the shared
// coordinator each entry uses and the entities rendered from its data.
type UseCase struct {
	repo     ports.EntryRepository
	registry CoordinatorRegistry
	probe    ports.StatusProbe
	cities   CityResolver
	logger   ports.Logger
	now      func() time.Time

	mu     sync.RWMutex
	loaded map[string]*loadedEntry
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Repository == nil {
		return nil, errors.NewValidationError("entry repository is required")
	}
	if deps.Registry == nil {
		return nil, errors.NewValidationError("coordinator registry is required")
	}
	if deps.Probe == nil {
		return nil, errors.NewValidationError("status probe is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	return &UseCase{
		repo:     deps.Repository,
		registry: deps.Registry,
		probe:    deps.Probe,
		cities:   deps.Cities,
		logger:   deps.Logger,
		now:      now,
		loaded:   make(map[string]*loadedEntry),
	}, nil
}

// Setup validates and persists a new entry, then loads it. When the first
// refresh fails the entry stays persisted in setup retry state and the
// initialization error is returned along with it.
func (uc *UseCase) Setup(ctx context.Context, params SetupParams) (*Entry, error) {
	e := entryFromParams(params)
	e.ApplyDefaults()
	if err := e.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	e.UniqueID = e.ComputeUniqueID()

	existing, err := uc.repo.FindByUniqueID(ctx, e.UniqueID)
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, fmt.Errorf("check existing entry: %w", err)
	}
	if existing != nil {
		return nil, errors.NewAlreadyExistsError("entry already configured: " + e.UniqueID)
	}

	if err := uc.probe.IsOnline(ctx, e.Language, e.City.ID); err != nil {
		uc.logger.Warn("IMS API is not reachable",
			ports.F("city", e.City.ID),
			ports.F("language", e.Language),
			ports.F("error", err))
		return nil, errors.NewExternalAPIError("IMS API is not reachable", err)
	}

	e.City.Name = uc.cityName(ctx, e.Language, e.City.ID)
	e.ID = uuid.NewString()
	e.CreatedAt = uc.now()
	e.UpdatedAt = e.CreatedAt

	if err := uc.repo.Save(ctx, convertToPorts(e)); err != nil {
		return nil, fmt.Errorf("save entry: %w", err)
	}

	uc.logger.Info("Entry created",
		ports.F("id", e.ID),
		ports.F("uniqueID", e.UniqueID))

	le := uc.load(ctx, e)
	return e, le.err
}

// Reload applies new options to an entry by unloading and loading it again
func (uc *UseCase) Reload(ctx context.Context, id string, params SetupParams) (*Entry, error) {
	current, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}

	e := entryFromParams(params)
	e.ApplyDefaults()
	if err := e.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	e.ID = current.ID
	e.CreatedAt = current.CreatedAt
	e.UniqueID = e.ComputeUniqueID()

	other, err := uc.repo.FindByUniqueID(ctx, e.UniqueID)
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, fmt.Errorf("check existing entry: %w", err)
	}
	if other != nil && other.ID != id {
		return nil, errors.NewAlreadyExistsError("entry already configured: " + e.UniqueID)
	}

	if e.City.ID == current.City.ID && e.Language == current.Language {
		e.City.Name = current.City.Name
	} else {
		e.City.Name = uc.cityName(ctx, e.Language, e.City.ID)
	}
	e.UpdatedAt = uc.now()

	if err := uc.repo.Update(ctx, convertToPorts(e)); err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}

	uc.Unload(id)
	le := uc.load(ctx, e)

	uc.logger.Info("Entry reloaded",
		ports.F("id", id),
		ports.F("status", le.status()))
	return e, le.err
}

// Remove unloads an entry and deletes it
func (uc *UseCase) Remove(ctx context.Context, id string) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	uc.Unload(id)
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	uc.logger.Info("Entry removed", ports.F("id", id))
	return nil
}

// Unload detaches the entry's entities and releases its coordinator. The
// persisted entry is kept.
func (uc *UseCase) Unload(id string) bool {
	uc.mu.Lock()
	le, ok := uc.loaded[id]
	delete(uc.loaded, id)
	uc.mu.Unlock()
	if !ok {
		return false
	}

	uc.release(le)
	uc.logger.Info("Entry unloaded", ports.F("id", id))
	return true
}

// RestoreAll loads every persisted entry and returns how many loaded
// successfully. Entries that fail stay in setup retry state.
func (uc *UseCase) RestoreAll(ctx context.Context) (int, error) {
	stored, err := uc.repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list entries: %w", err)
	}

	loaded := 0
	for _, data := range stored {
		e := convertFromPorts(data)
		le := uc.load(ctx, e)
		if le.err != nil {
			uc.logger.Error("Failed to restore entry",
				ports.F("id", e.ID),
				ports.F("error", le.err))
			continue
		}
		loaded++
	}

	uc.logger.Info("Entries restored",
		ports.F("total", len(stored)),
		ports.F("loaded", loaded))
	return loaded, nil
}

// Get returns an entry with its runtime state
func (uc *UseCase) Get(ctx context.Context, id string) (View, error) {
	e, err := uc.find(ctx, id)
	if err != nil {
		return View{}, err
	}
	return uc.view(e), nil
}

// List returns every persisted entry, oldest first
func (uc *UseCase) List(ctx context.Context) ([]View, error) {
	stored, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	views := make([]View, 0, len(stored))
	for _, data := range stored {
		views = append(views, uc.view(convertFromPorts(data)))
	}
	sort.SliceStable(views, func(i, j int) bool {
		if views[i].Entry.CreatedAt.Equal(views[j].Entry.CreatedAt) {
			return views[i].Entry.ID < views[j].Entry.ID
		}
		return views[i].Entry.CreatedAt.Before(views[j].Entry.CreatedAt)
	})
	return views, nil
}

// States returns the rendered state of every entity of a loaded entry
func (uc *UseCase) States(id string) ([]sensor.State, error) {
	le, err := uc.ready(id)
	if err != nil {
		return nil, err
	}

	all := le.entities.All()
	states := make([]sensor.State, 0, len(all))
	for _, e := range all {
		states = append(states, e.State())
	}
	return states, nil
}

// Forecast returns the entry's forecast in mode, or in the entry's own mode
// when mode is empty
func (uc *UseCase) Forecast(id, mode string) ([]sensor.ForecastItem, error) {
	if mode != "" && mode != sensor.ForecastModeHourly && mode != sensor.ForecastModeDaily {
		return nil, errors.NewValidationError("invalid forecast mode: " + mode)
	}
	le, err := uc.ready(id)
	if err != nil {
		return nil, err
	}
	if mode == "" {
		mode = le.entry.Mode
	}

	if le.entities.Weather != nil {
		return le.entities.Weather.Forecast(mode), nil
	}
	snapshot := le.coordinator.Data()
	if snapshot == nil {
		return nil, nil
	}
	if mode == sensor.ForecastModeHourly {
		return sensor.HourlyForecast(snapshot.Forecast), nil
	}
	return sensor.DailyForecast(snapshot.Forecast), nil
}

// Refresh forces a refresh of the entry's coordinator. An entry in setup
// retry state is loaded again instead.
func (uc *UseCase) Refresh(ctx context.Context, id string) error {
	uc.mu.RLock()
	le, ok := uc.loaded[id]
	uc.mu.RUnlock()

	if !ok || le.coordinator == nil {
		e, err := uc.find(ctx, id)
		if err != nil {
			return err
		}
		uc.Unload(id)
		return uc.load(ctx, e).err
	}

	if err := le.coordinator.Refresh(ctx); err != nil {
		return errors.NewRefreshError("refresh of entry "+id+" failed", err)
	}
	return nil
}

// Shutdown unloads every entry
func (uc *UseCase) Shutdown() {
	uc.mu.Lock()
	loaded := uc.loaded
	uc.loaded = make(map[string]*loadedEntry)
	uc.mu.Unlock()

	for _, le := range loaded {
		uc.release(le)
	}
}

func (uc *UseCase) load(ctx context.Context, e *Entry) *loadedEntry {
	le := &loadedEntry{entry: e}
	key := e.LocationKey()

	coordinator, err := uc.registry.Acquire(ctx, key, e.Interval())
	if err != nil {
		le.err = err
		uc.store(le)
		return le
	}

	if err := coordinator.EnsureFirstRefresh(ctx); err != nil {
		uc.registry.Release(key)
		uc.logger.Warn("Entry not ready",
			ports.F("id", e.ID),
			ports.F("key", key.String()),
			ports.F("error", err))
		le.err = err
		uc.store(le)
		return le
	}

	le.coordinator = coordinator
	le.entities = sensor.Build(coordinator, sensor.BuildOptions{
		Name:       e.Name,
		UniqueID:   e.UniqueID,
		Mode:       e.Mode,
		Platforms:  e.Platforms,
		Conditions: e.MonitoredConditions,
	})
	le.entities.Attach()
	uc.store(le)

	uc.logger.Info("Entry loaded",
		ports.F("id", e.ID),
		ports.F("key", key.String()),
		ports.F("entities", len(le.entities.All())))
	return le
}

func (uc *UseCase) store(le *loadedEntry) {
	uc.mu.Lock()
	previous := uc.loaded[le.entry.ID]
	uc.loaded[le.entry.ID] = le
	uc.mu.Unlock()

	if previous != nil {
		uc.release(previous)
	}
}

func (uc *UseCase) release(le *loadedEntry) {
	if le.entities != nil {
		le.entities.Detach()
	}
	if le.coordinator != nil {
		uc.registry.Release(le.entry.LocationKey())
	}
}

func (uc *UseCase) ready(id string) (*loadedEntry, error) {
	uc.mu.RLock()
	le, ok := uc.loaded[id]
	uc.mu.RUnlock()
	if !ok {
		return nil, errors.NewNotFoundError("entry " + id + " is not loaded")
	}
	if le.coordinator == nil {
		return nil, errors.NewInitializationError("entry "+id+" is not ready", le.err)
	}
	return le, nil
}

func (uc *UseCase) find(ctx context.Context, id string) (*Entry, error) {
	data, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, errors.NewNotFoundError("entry " + id + " not found")
	}
	return convertFromPorts(data), nil
}

func (uc *UseCase) view(e *Entry) View {
	uc.mu.RLock()
	le, ok := uc.loaded[e.ID]
	uc.mu.RUnlock()

	if !ok {
		return View{Entry: e, Status: StatusNotLoaded}
	}
	v := View{Entry: e, Status: le.status(), Error: le.err}
	if le.coordinator != nil {
		status := le.coordinator.Status()
		v.Coordinator = &status
	}
	return v
}

func (uc *UseCase) cityName(ctx context.Context, language, id string) string {
	if uc.cities == nil {
		return id
	}
	city, err := uc.cities.Find(ctx, language, id)
	if err != nil {
		uc.logger.Warn("Could not resolve city name",
			ports.F("city", id),
			ports.F("error", err))
		return id
	}
	return city.Name
}

func entryFromParams(params SetupParams) *Entry {
	return &Entry{
		Name:                params.Name,
		City:                City{ID: params.CityID},
		Language:            params.Language,
		Mode:                params.Mode,
		UpdateInterval:      params.UpdateInterval,
		ImagesPath:          params.ImagesPath,
		Platforms:           append([]string(nil), params.Platforms...),
		MonitoredConditions: append([]string(nil), params.MonitoredConditions...),
	}
}

func convertToPorts(e *Entry) *ports.EntryData {
	return &ports.EntryData{
		ID:                  e.ID,
		UniqueID:            e.UniqueID,
		Name:                e.Name,
		CityID:              e.City.ID,
		CityName:            e.City.Name,
		Language:            e.Language,
		Mode:                e.Mode,
		UpdateInterval:      e.UpdateInterval,
		ImagesPath:          e.ImagesPath,
		Platforms:           e.Platforms,
		MonitoredConditions: e.MonitoredConditions,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}

func convertFromPorts(data *ports.EntryData) *Entry {
	return &Entry{
		ID:                  data.ID,
		UniqueID:            data.UniqueID,
		Name:                data.Name,
		City:                City{ID: data.CityID, Name: data.CityName},
		Language:            data.Language,
		Mode:                data.Mode,
		UpdateInterval:      data.UpdateInterval,
		ImagesPath:          data.ImagesPath,
		Platforms:           data.Platforms,
		MonitoredConditions: data.MonitoredConditions,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
