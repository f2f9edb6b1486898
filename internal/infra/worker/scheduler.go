// Package worker runs periodic background jobs inside the API process on a
// robfig/cron scheduler.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"simple-board/pkg/config"
	"simple-board/pkg/sanitize"
)

// DefaultJobTimeout bounds a job whose Timeout is zero.
const DefaultJobTimeout = 30 * time.Second

// Job is a named unit of periodic work.
type Job struct {
	Name    string
	Timeout time.Duration
	Run     func(ctx context.Context) error
}

// Scheduler wraps a cron.Cron. Overlapping runs of the same job are skipped
// and panics inside a job are recovered by the cron chain.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

// NewScheduler creates a stopped scheduler that accepts five-field specs and descriptors.
func NewScheduler(logger *slog.Logger) *Scheduler {
	cl := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelWarn))
	return &Scheduler{
		cron: cron.New(
			cron.WithParser(config.CronParser),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		logger: logger,
	}
}

// Add schedules job on spec.
func (s *Scheduler) Add(spec string, job Job) error {
	if _, err := s.cron.AddFunc(spec, func() { s.RunNow(context.Background(), job) }); err != nil {
		return fmt.Errorf("schedule job %s: %w", job.Name, err)
	}
	s.logger.Info("job scheduled", slog.String("job", job.Name), slog.String("spec", spec))
	return nil
}

// RunNow executes job once on the calling goroutine and returns its error.
func (s *Scheduler) RunNow(ctx context.Context, job Job) error {
	timeout := job.Timeout
	if timeout <= 0 {
		timeout = DefaultJobTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	err := job.Run(ctx)
	duration := time.Since(start)
	recordRun(job.Name, duration, err)

	if err != nil {
		s.logger.Error("job failed",
			slog.String("job", job.Name),
			slog.Duration("duration", duration),
			slog.String("error", sanitize.Error(err)))
		return err
	}
	s.logger.Debug("job completed", slog.String("job", job.Name), slog.Duration("duration", duration))
	return nil
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops scheduling and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
