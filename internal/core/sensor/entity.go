// Package sensor implements the presentation entities that render a
// coordinator's weather snapshot as sensor, binary sensor and weather states.
package sensor

import (
	"sync"
	"time"

	"imsweather.app/internal/core/weather"
)

// Attribution shown on every entity
const Attribution = "Data provided by Israel Meteorological Service"

// DataSource is the part of an update coordinator entities depend on
type DataSource interface {
	Key() weather.LocationKey
	Data() *weather.Snapshot
	LastUpdateSuccess() bool
	AddListener(fn func()) func()
	Location() *time.Location
	Now() time.Time
}

// State is the rendered state of an entity
type State struct {
	EntityID    string         `json:"entity_id"`
	UniqueID    string         `json:"unique_id"`
	Platform    string         `json:"platform"`
	Name        string         `json:"name"`
	State       any            `json:"state"`
	Unit        string         `json:"unit,omitempty"`
	Icon        string         `json:"icon,omitempty"`
	DeviceClass string         `json:"device_class,omitempty"`
	StateClass  string         `json:"state_class,omitempty"`
	Available   bool           `json:"available"`
	Attributes  map[string]any `json:"attributes,omitempty"`
	Attribution string         `json:"attribution"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Entity is a presentation entity bound to a coordinator
type Entity interface {
	UniqueID() string
	State() State
	Attach()
	Detach()
}

type renderFunc func(snapshot *weather.Snapshot) (value any, attributes map[string]any, ok bool)

// entity keeps the last rendered state and re-renders it on every coordinator cycle.
type entity struct {
	source DataSource
	meta   State
	render renderFunc

	mu          sync.RWMutex
	state       State
	unsubscribe func()
}

func newEntity(source DataSource, meta State, render renderFunc) *entity {
	meta.Attribution = Attribution
	e := &entity{source: source, meta: meta, render: render}
	e.refresh()
	return e
}

func (e *entity) UniqueID() string {
	return e.meta.UniqueID
}

func (e *entity) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Attach subscribes to coordinator updates. Calling it twice is a no-op.
func (e *entity) Attach() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.unsubscribe != nil {
		return
	}
	e.unsubscribe = e.source.AddListener(e.refresh)
}

func (e *entity) Detach() {
	e.mu.Lock()
	unsubscribe := e.unsubscribe
	e.unsubscribe = nil
	e.mu.Unlock()
	if unsubscribe != nil {
		unsubscribe()
	}
}

func (e *entity) refresh() {
	state := e.meta
	state.UpdatedAt = e.source.Now()

	snapshot := e.source.Data()
	if snapshot != nil && snapshot.CurrentWeather != nil {
		value, attributes, ok := e.render(snapshot)
		state.State = value
		state.Attributes = attributes
		state.Available = ok && e.source.LastUpdateSuccess()
	}

	e.mu.Lock()
	e.state = state
	e.mu.Unlock()
}
