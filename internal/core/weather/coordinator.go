package weather

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
	"imsweather.app/internal/ports"
	"imsweather.app/pkg/errors"
)

// DefaultRefreshTimeout bounds a single refresh attempt.
const DefaultRefreshTimeout = 30 * time.Second

// Refresh outcomes reported to metrics
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeTimeout = "timeout"
)

// CoordinatorConfig holds the per-location settings of a coordinator
type CoordinatorConfig struct {
	Key      LocationKey
	Interval time.Duration
	Timeout  time.Duration
	Location *time.Location
	Now      func() time.Time
}

// CoordinatorDependencies holds the collaborators of a coordinator
type CoordinatorDependencies struct {
	Source    ports.WeatherSource
	Scheduler ports.Scheduler
	Logger    ports.Logger
	Metrics   ports.MetricsCollector
}

// CoordinatorStatus is a point-in-time view of a coordinator's refresh state
type CoordinatorStatus struct {
	Key               string        `json:"key"`
	Interval          time.Duration `json:"interval"`
	LastUpdated       time.Time     `json:"last_updated"`
	LastUpdateSuccess bool          `json:"last_update_success"`
	LastError         string        `json:"last_error,omitempty"`
	Listeners         int           `json:"listeners"`
	HasData           bool          `json:"has_data"`
}

type listener struct {
	id uint64
	fn func()
}

type fetchResult struct {
	snapshot *Snapshot
	err      error
}

// Coordinator owns the weather data of one location. It refreshes the data on a
// fixed interval while it has listeners, runs at most one refresh at a time and
// notifies every listener once per completed cycle.
type Coordinator struct {
	key      LocationKey
	interval time.Duration
	timeout  time.Duration
	loc      *time.Location
	now      func() time.Time

	source    ports.WeatherSource
	scheduler ports.Scheduler
	logger    ports.Logger
	metrics   ports.MetricsCollector

	group singleflight.Group

	mu                sync.RWMutex
	data              *Snapshot
	lastUpdateSuccess bool
	lastErr           error
	lastUpdated       time.Time
	listeners         []listener
	nextListenerID    uint64
	cancelSchedule    func()
	closed            bool
}

func NewCoordinator(cfg CoordinatorConfig, deps CoordinatorDependencies) (*Coordinator, error) {
	if err := cfg.Key.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid location key: " + err.Error())
	}
	if cfg.Interval <= 0 {
		return nil, errors.NewValidationError("update interval must be positive")
	}
	if deps.Source == nil {
		return nil, errors.NewValidationError("weather source is required")
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

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultRefreshTimeout
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Coordinator{
		key:       cfg.Key,
		interval:  cfg.Interval,
		timeout:   timeout,
		loc:       loc,
		now:       now,
		source:    deps.Source,
		scheduler: deps.Scheduler,
		logger:    deps.Logger,
		metrics:   deps.Metrics,
	}, nil
}

func (c *Coordinator) Key() LocationKey {
	return c.key
}

func (c *Coordinator) Interval() time.Duration {
	return c.interval
}

// Location returns the reference time zone used for normalization
func (c *Coordinator) Location() *time.Location {
	return c.loc
}

// Now returns the current time according to the coordinator's clock
func (c *Coordinator) Now() time.Time {
	return c.now().In(c.loc)
}

// Data returns the latest published snapshot, or nil before the first success.
func (c *Coordinator) Data() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data
}

func (c *Coordinator) LastUpdateSuccess() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastUpdateSuccess
}

func (c *Coordinator) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

func (c *Coordinator) LastUpdated() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastUpdated
}

func (c *Coordinator) ListenerCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.listeners)
}

func (c *Coordinator) Status() CoordinatorStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	status := CoordinatorStatus{
		Key:               c.key.String(),
		Interval:          c.interval,
		LastUpdated:       c.lastUpdated,
		LastUpdateSuccess: c.lastUpdateSuccess,
		Listeners:         len(c.listeners),
		HasData:           c.data != nil,
	}
	if c.lastErr != nil {
		status.LastError = c.lastErr.Error()
	}
	return status
}

// Refresh runs a refresh cycle, or joins the one already in flight, and returns
// its outcome. A failed cycle leaves the published data unchanged.
// Cancelling ctx stops the wait but not the shared cycle.
func (c *Coordinator) Refresh(ctx context.Context) error {
	ch := c.group.DoChan(c.key.String(), func() (interface{}, error) {
		return nil, c.runCycle()
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// EnsureFirstRefresh runs a refresh cycle before consumers are created and
// reports a failure as an initialization error. It always fetches, even when
// the coordinator already holds data from an earlier consumer.
func (c *Coordinator) EnsureFirstRefresh(ctx context.Context) error {
	if err := c.Refresh(ctx); err != nil {
		return errors.NewInitializationError(fmt.Sprintf("first refresh of %s failed", c.key), err)
	}
	return nil
}

// AddListener registers fn to be called after every refresh cycle, successful
// or not. The first listener starts periodic refreshes and removing the last
// one stops them. The returned func unsubscribes and is safe to call twice.
func (c *Coordinator) AddListener(fn func()) func() {
	c.mu.Lock()
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners = append(c.listeners, listener{id: id, fn: fn})
	if c.cancelSchedule == nil && !c.closed {
		c.startScheduleLocked()
	}
	count := len(c.listeners)
	c.mu.Unlock()

	c.metrics.SetListeners(c.key.String(), count)

	var once sync.Once
	return func() {
		once.Do(func() { c.removeListener(id) })
	}
}

// Shutdown stops periodic refreshes and drops all listeners.
func (c *Coordinator) Shutdown() {
	c.mu.Lock()
	c.closed = true
	c.listeners = nil
	cancel := c.cancelSchedule
	c.cancelSchedule = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	c.metrics.SetListeners(c.key.String(), 0)
	c.logger.Debug("Coordinator shut down", ports.F("key", c.key.String()))
}

func (c *Coordinator) removeListener(id uint64) {
	c.mu.Lock()
	for i, l := range c.listeners {
		if l.id == id {
			c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
			break
		}
	}
	var cancel func()
	if len(c.listeners) == 0 && c.cancelSchedule != nil {
		cancel = c.cancelSchedule
		c.cancelSchedule = nil
	}
	count := len(c.listeners)
	c.mu.Unlock()

	if cancel != nil {
		cancel()
		c.logger.Debug("Periodic refresh stopped", ports.F("key", c.key.String()))
	}
	c.metrics.SetListeners(c.key.String(), count)
}

func (c *Coordinator) startScheduleLocked() {
	cancel, err := c.scheduler.Every("refresh:"+c.key.String(), c.interval, c.tick)
	if err != nil {
		c.logger.Error("Failed to schedule periodic refresh",
			ports.F("key", c.key.String()),
			ports.F("error", err))
		return
	}
	c.cancelSchedule = cancel
	c.logger.Debug("Periodic refresh started",
		ports.F("key", c.key.String()),
		ports.F("interval", c.interval.String()))
}

// tick is the scheduled job. Failures are already recorded by the cycle.
func (c *Coordinator) tick() {
	_ = c.Refresh(context.Background())
}

func (c *Coordinator) runCycle() error {
	start := time.Now()
	key := c.key.String()

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	results := make(chan fetchResult, 1)
	go func() {
		snapshot, err := c.fetch(ctx)
		results <- fetchResult{snapshot: snapshot, err: err}
	}()

	var snapshot *Snapshot
	var err error
	select {
	case res := <-results:
		snapshot, err = res.snapshot, res.err
	case <-ctx.Done():
	}
	if (err == nil && snapshot == nil) || (err != nil && stderrors.Is(ctx.Err(), context.DeadlineExceeded)) {
		err = errors.NewTimeoutError(fmt.Sprintf("refresh exceeded %s", c.timeout), context.DeadlineExceeded)
	}

	duration := time.Since(start)
	if err != nil {
		return c.fail(key, err, duration)
	}
	c.publish(key, snapshot, duration)
	return nil
}

func (c *Coordinator) fetch(ctx context.Context) (*Snapshot, error) {
	current, err := c.source.GetCurrentAnalysis(ctx)
	if err != nil {
		return nil, errors.NewFetchError("get current analysis", err)
	}
	if current == nil {
		return nil, errors.NewFetchError("get current analysis", fmt.Errorf("empty response"))
	}

	forecast, err := c.source.GetForecast(ctx)
	if err != nil {
		return nil, errors.NewFetchError("get forecast", err)
	}

	images, err := c.source.GetRadarImages(ctx)
	if err != nil {
		return nil, errors.NewFetchError("get radar images", err)
	}

	normalized, err := NormalizeForecast(convertFromPortsForecast(forecast), c.now(), c.loc)
	if err != nil {
		return nil, errors.NewFetchError("normalize forecast", err)
	}

	return &Snapshot{
		CurrentWeather: convertFromPortsCurrent(current),
		Forecast:       normalized,
		Images:         convertFromPortsImages(images),
		FetchedAt:      c.now(),
	}, nil
}

func (c *Coordinator) publish(key string, snapshot *Snapshot, duration time.Duration) {
	c.mu.Lock()
	c.data = snapshot
	c.lastUpdateSuccess = true
	c.lastErr = nil
	c.lastUpdated = snapshot.FetchedAt
	listeners := append([]listener(nil), c.listeners...)
	c.mu.Unlock()

	c.metrics.RecordRefresh(key, OutcomeSuccess, duration)
	c.metrics.SetLastSuccess(key, snapshot.FetchedAt)
	c.logger.Info("Weather data refreshed",
		ports.F("key", key),
		ports.F("days", len(snapshot.Forecast.Days)),
		ports.F("duration_ms", duration.Milliseconds()))

	notify(listeners)
}

func (c *Coordinator) fail(key string, cause error, duration time.Duration) error {
	refreshErr := errors.NewRefreshError(fmt.Sprintf("refresh of %s failed", key), cause)

	c.mu.Lock()
	c.lastUpdateSuccess = false
	c.lastErr = refreshErr
	listeners := append([]listener(nil), c.listeners...)
	c.mu.Unlock()

	outcome := OutcomeFailure
	if errors.IsTimeoutError(cause) {
		outcome = OutcomeTimeout
	}
	c.metrics.RecordRefresh(key, outcome, duration)
	c.logger.Error("Weather data refresh failed",
		ports.F("key", key),
		ports.F("outcome", outcome),
		ports.F("error", cause),
		ports.F("duration_ms", duration.Milliseconds()))

	notify(listeners)
	return refreshErr
}

func notify(listeners []listener) {
	for _, l := range listeners {
		l.fn()
	}
}
