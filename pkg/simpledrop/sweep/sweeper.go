// Package sweep runs the retention sweep: a recurring pass that deletes every
// stored object older than the configured maximum age. It runs for the life
// of the process, independent of request traffic.
package sweep

import (
	"context"
	"log/slog"
	"time"
)

// Sweepable is the slice of the service the sweeper needs.
type Sweepable interface {
	SweepExpired(ctx context.Context, maxAge time.Duration) (int, error)
}

// Sweeper owns the sweep schedule. Cancel the context passed to Run to stop
// it; no further passes fire after cancellation.
type Sweeper struct {
	service  Sweepable
	interval time.Duration
	maxAge   time.Duration
}

// New creates a sweeper that deletes objects older than maxAge on every
// interval tick.
func New(service Sweepable, interval, maxAge time.Duration) *Sweeper {
	return &Sweeper{
		service:  service,
		interval: interval,
		maxAge:   maxAge,
	}
}

// Run performs one pass immediately, then one per interval until ctx is
// cancelled. It blocks; callers run it on its own goroutine.
func (s *Sweeper) Run(ctx context.Context) {
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	deleted, err := s.service.SweepExpired(ctx, s.maxAge)
	if err != nil {
		slog.Error("retention sweep failed", "err", err)
		return
	}
	slog.Info("retention sweep complete", "deleted", deleted, "max_age", s.maxAge)
}
