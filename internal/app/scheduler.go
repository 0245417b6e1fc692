package app

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// cycleRunner runs one sync cycle.
type cycleRunner interface {
	RunOnce(ctx context.Context) Report
}

// Scheduler runs sync cycles on a fixed interval.
type Scheduler struct {
	runner   cycleRunner
	interval time.Duration
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewScheduler creates a scheduler running runner every interval.
// Panics if interval is not positive.
func NewScheduler(runner cycleRunner, interval time.Duration, logger *slog.Logger) *Scheduler {
	if interval <= 0 {
		panic("app: scheduler interval must be positive")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Scheduler{
		runner:   runner,
		interval: interval,
		logger:   logger,
	}
}

// Run blocks, running one cycle immediately and then one per interval,
// until ctx is canceled. It always returns nil.
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.InfoContext(ctx, "sync scheduler started", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.runner.RunOnce(ctx)

		select {
		case <-ctx.Done():
			s.logger.InfoContext(ctx, "sync scheduler stopped")
			return nil
		case <-ticker.C:
		}
	}
}

// Start runs the loop in a background goroutine. Calling Start on a
// running scheduler does nothing.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	s.cancel = cancel
	s.done = done

	go func() {
		defer close(done)

		_ = s.Run(ctx)
	}()
}

// Stop cancels the loop and waits for it to exit.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
}
