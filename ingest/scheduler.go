package ingest

import (
	"context"
	"log/slog"
	"time"
)

// Scheduler runs ingestion cycles on a fixed interval.
type Scheduler struct {
	pipeline *Pipeline
	interval time.Duration
	logger   *slog.Logger
}

// NewScheduler creates a scheduler. A zero or negative interval disables
// scheduling: Run returns immediately without ever invoking the pipeline.
func NewScheduler(pipeline *Pipeline, interval time.Duration, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		pipeline: pipeline,
		interval: interval,
		logger:   logger.With("component", "scheduler"),
	}
}

// Enabled reports whether the scheduler will run cycles.
func (s *Scheduler) Enabled() bool {
	return s.interval > 0
}

// Run blocks, executing one cycle per interval tick until ctx is
// cancelled. Cycle failures are logged; the schedule keeps going.
func (s *Scheduler) Run(ctx context.Context) {
	if !s.Enabled() {
		s.logger.Info("ingestion scheduling disabled", "interval", s.interval)
		return
	}

	s.logger.Info("ingestion scheduler started", "interval", s.interval)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("ingestion scheduler stopped")
			return
		case <-ticker.C:
			if _, err := s.pipeline.RunCycle(ctx); err != nil {
				s.logger.Error("ingestion cycle aborted", "error", err)
			}
		}
	}
}
