package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"promo-banner/internal/core/logger"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

var (
	// ErrAlreadyStarted is returned by Start on a running Periodic.
	ErrAlreadyStarted = errors.New("periodic task already started")
	// ErrInvalidPeriod is returned by Start when the period is not positive.
	ErrInvalidPeriod = errors.New("period must be positive")
)

// Periodic runs a single task on a fixed period until stopped.
// The first run happens one period after Start. Runs may overlap when a
// task takes longer than the period.
type Periodic struct {
	name   string
	period time.Duration
	task   func(ctx context.Context)
	logger *zap.Logger

	// runMu orders task admission against cancellation so inflight.Add never races Wait.
	runMu    sync.Mutex
	inflight sync.WaitGroup

	mu       sync.Mutex
	cron     *gocron.Scheduler
	job      *gocron.Job
	cancel   context.CancelFunc
	stopCron func()
}

// NewPeriodic creates a stopped Periodic.
func NewPeriodic(name string, period time.Duration, task func(ctx context.Context)) *Periodic {
	return &Periodic{
		name:   name,
		period: period,
		task:   task,
		logger: logger.Named("scheduler").With(zap.String("job", name)),
	}
}

// Name returns the job name.
func (p *Periodic) Name() string { return p.name }

// Period returns the configured period.
func (p *Periodic) Period() time.Duration { return p.period }

// Start schedules the task. Each run receives a context that is cancelled
// when Stop is called or ctx is done.
func (p *Periodic) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cron != nil {
		return ErrAlreadyStarted
	}
	if p.period <= 0 {
		return fmt.Errorf("%w: %s has period %s", ErrInvalidPeriod, p.name, p.period)
	}

	runCtx, cancel := context.WithCancel(ctx)

	s := gocron.NewScheduler(time.UTC)
	job, err := s.Every(p.period).WaitForSchedule().Do(func() {
		p.runMu.Lock()
		if runCtx.Err() != nil {
			p.runMu.Unlock()
			return
		}
		p.inflight.Add(1)
		p.runMu.Unlock()

		defer p.inflight.Done()
		p.task(runCtx)
	})
	if err != nil {
		cancel()
		return fmt.Errorf("failed to schedule %s: %w", p.name, err)
	}
	job.Tag(p.name)

	s.StartAsync()

	var once sync.Once
	stopCron := func() { once.Do(s.Stop) }

	p.cron = s
	p.job = job
	p.cancel = cancel
	p.stopCron = stopCron

	go func() {
		<-runCtx.Done()
		stopCron()
	}()

	p.logger.Debug("Periodic task started", zap.Duration("period", p.period))
	return nil
}

// Stop cancels the task context, clears the timer and waits for running
// tasks to return. Stopping a stopped Periodic is a no-op.
func (p *Periodic) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cron == nil {
		return
	}

	p.runMu.Lock()
	p.cancel()
	p.runMu.Unlock()

	p.stopCron()
	p.cron.Clear()
	p.inflight.Wait()

	p.logger.Debug("Periodic task stopped", zap.Int("runs", p.job.RunCount()))

	p.cron = nil
	p.job = nil
	p.cancel = nil
	p.stopCron = nil
}

// Running reports whether the timer is armed.
func (p *Periodic) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cron != nil
}

// RunCount returns how many times the task has fired since Start.
func (p *Periodic) RunCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.job == nil {
		return 0
	}
	return p.job.RunCount()
}
