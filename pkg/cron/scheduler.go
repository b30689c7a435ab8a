// Package cron provides the scheduled watch loop using robfig/cron.
package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// RunFunc is one watch-mode sweep over the input directory.
type RunFunc func(ctx context.Context)

// Scheduler runs the statement sweep on a cron schedule.
type Scheduler struct {
	cron     *cron.Cron
	schedule string
	run      RunFunc
	logger   *slog.Logger
}

// NewScheduler creates a scheduler for the given 5-field cron expression.
func NewScheduler(schedule string, run RunFunc, logger *slog.Logger) *Scheduler {
	// Create cron with seconds disabled (standard 5-field format)
	c := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelDebug))))

	return &Scheduler{
		cron:     c,
		schedule: schedule,
		run:      run,
		logger:   logger,
	}
}

// Start begins the scheduled sweeps.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, s.sweep)
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("watch scheduler started",
		slog.String("schedule", s.schedule),
	)
	return nil
}

// Stop gracefully stops the scheduler.
func (s *Scheduler) Stop() context.Context {
	s.logger.Info("watch scheduler stopping")
	return s.cron.Stop()
}

// RunNow triggers a sweep immediately, outside the schedule.
func (s *Scheduler) RunNow() {
	go s.sweep()
}

func (s *Scheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	s.logger.Info("starting statement sweep")
	s.run(ctx)
}
