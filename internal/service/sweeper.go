package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/mmynk/tiptop/internal/metrics"
	"github.com/mmynk/tiptop/internal/storage"
)

// Sweeper closes sessions that have sat idle longer than a TTL.
type Sweeper struct {
	store   storage.Store
	metrics *metrics.Metrics
	ttl     time.Duration
	now     func() time.Time
}

// NewSweeper creates a Sweeper. m may be nil.
func NewSweeper(store storage.Store, m *metrics.Metrics, ttl time.Duration) *Sweeper {
	return &Sweeper{store: store, metrics: m, ttl: ttl, now: time.Now}
}

// Sweep removes idle sessions once and returns how many were closed.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	n, err := s.store.DeleteIdleSessions(ctx, s.now().Add(-s.ttl))
	if err != nil {
		return 0, err
	}
	s.metrics.AddSwept(n)

	if open, err := s.store.Count(ctx); err == nil {
		s.metrics.SetOpenSessions(open)
	}
	if n > 0 {
		slog.Debug("Idle sessions swept", "count", n, "ttl", s.ttl)
	}
	return n, nil
}

// Run sweeps every interval until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil && ctx.Err() == nil {
				slog.Warn("Session sweep failed", "error", err)
			}
		case <-ctx.Done():
			return nil
		}
	}
}
