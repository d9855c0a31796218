package weather

import (
	"context"
	"sort"
	"sync"
	"time"

	"imsweather.app/internal/ports"
	"imsweather.app/pkg/errors"
)

// RegistryConfig holds settings shared by every coordinator the registry creates
type RegistryConfig struct {
	Timeout  time.Duration
	Location *time.Location
	Now      func() time.Time
}

// RegistryDependencies holds the collaborators handed to new coordinators
type RegistryDependencies struct {
	SourceFactory ports.WeatherSourceFactory
	Scheduler     ports.Scheduler
	Logger        ports.Logger
	Metrics       ports.MetricsCollector
}

type registryEntry struct {
	coordinator *Coordinator
	refs        int
}

// Registry shares one coordinator per location key between entries.
type Registry struct {
	cfg  RegistryConfig
	deps RegistryDependencies

	mu      sync.Mutex
	entries map[string]*registryEntry
}

func NewRegistry(cfg RegistryConfig, deps RegistryDependencies) (*Registry, error) {
	if deps.SourceFactory == nil {
		return nil, errors.NewValidationError("weather source factory is required")
	}
	if deps.Scheduler == nil {
		return nil, errors.NewValidationError("scheduler is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}
	return &Registry{
		cfg:     cfg,
		deps:    deps,
		entries: make(map[string]*registryEntry),
	}, nil
}

// Acquire returns the coordinator for key, creating it on first use, and takes a
// reference on it. The interval only applies when the coordinator is created.
func (r *Registry) Acquire(_ context.Context, key LocationKey, interval time.Duration) (*Coordinator, error) {
	if err := key.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid location key: " + err.Error())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if entry, ok := r.entries[key.String()]; ok {
		entry.refs++
		r.deps.Logger.Info("Reusing existing coordinator for location",
			ports.F("key", key.String()),
			ports.F("refs", entry.refs))
		return entry.coordinator, nil
	}

	coordinator, err := NewCoordinator(CoordinatorConfig{
		Key:      key,
		Interval: interval,
		Timeout:  r.cfg.Timeout,
		Location: r.cfg.Location,
		Now:      r.cfg.Now,
	}, CoordinatorDependencies{
		Source:    r.deps.SourceFactory.NewSource(key.LocationID, key.Language),
		Scheduler: r.deps.Scheduler,
		Logger:    r.deps.Logger,
		Metrics:   r.deps.Metrics,
	})
	if err != nil {
		return nil, err
	}

	r.entries[key.String()] = &registryEntry{coordinator: coordinator, refs: 1}
	r.deps.Logger.Info("Created coordinator",
		ports.F("key", key.String()),
		ports.F("interval", interval.String()))
	return coordinator, nil
}

// Release drops a reference taken by Acquire. The last release shuts the
// coordinator down and forgets it.
func (r *Registry) Release(key LocationKey) {
	r.mu.Lock()
	entry, ok := r.entries[key.String()]
	if !ok {
		r.mu.Unlock()
		return
	}
	entry.refs--
	if entry.refs > 0 {
		r.mu.Unlock()
		return
	}
	delete(r.entries, key.String())
	r.mu.Unlock()

	entry.coordinator.Shutdown()
	r.deps.Logger.Info("Released coordinator", ports.F("key", key.String()))
}

func (r *Registry) Get(key LocationKey) (*Coordinator, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[key.String()]
	if !ok {
		return nil, false
	}
	return entry.coordinator, true
}

// Coordinators returns the live coordinators ordered by key
func (r *Registry) Coordinators() []*Coordinator {
	r.mu.Lock()
	list := make([]*Coordinator, 0, len(r.entries))
	for _, entry := range r.entries {
		list = append(list, entry.coordinator)
	}
	r.mu.Unlock()

	sort.Slice(list, func(i, j int) bool {
		return list[i].Key().String() < list[j].Key().String()
	})
	return list
}

// Shutdown stops every coordinator regardless of outstanding references.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	entries := r.entries
	r.entries = make(map[string]*registryEntry)
	r.mu.Unlock()

	for _, entry := range entries {
		entry.coordinator.Shutdown()
	}
}
