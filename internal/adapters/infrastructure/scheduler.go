package infrastructure

import (
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"imsweather.app/internal/ports"
	"imsweather.app/pkg/errors"
)

// GocronScheduler implements the Scheduler port on a gocron scheduler.
// Jobs never overlap with themselves and first run one interval after
// registration.
type GocronScheduler struct {
	scheduler *gocron.Scheduler
	logger    ports.Logger

	mu      sync.Mutex
	stopped bool
}

// NewGocronScheduler creates and starts the scheduler
func NewGocronScheduler(logger ports.Logger) *GocronScheduler {
	s := gocron.NewScheduler(time.UTC)
	s.StartAsync()
	return &GocronScheduler{scheduler: s, logger: logger}
}

// Every schedules job at interval until cancel is called
func (g *GocronScheduler) Every(name string, interval time.Duration, job func()) (func(), error) {
	if interval <= 0 {
		return nil, errors.NewValidationError("schedule interval must be positive")
	}
	if job == nil {
		return nil, errors.NewValidationError("scheduled job cannot be nil")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.stopped {
		return nil, errors.NewConfigurationError("scheduler is stopped", nil)
	}

	scheduled, err := g.scheduler.Every(interval).
		WaitForSchedule().
		SingletonMode().
		Tag(name).
		Do(job)
	if err != nil {
		return nil, errors.NewConfigurationError("failed to schedule "+name, err)
	}

	g.logger.Debug("Job scheduled",
		ports.F("job", name),
		ports.F("interval", interval.String()))

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			g.scheduler.RemoveByReference(scheduled)
			g.logger.Debug("Job cancelled", ports.F("job", name))
		})
	}
	return cancel, nil
}

func (g *GocronScheduler) jobCount() int {
	return g.scheduler.Len()
}

// Stop stops the scheduler; running jobs finish but no new runs start
func (g *GocronScheduler) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.stopped {
		return
	}
	g.stopped = true
	g.scheduler.Stop()
}
