package storage

import (
	"context"
	"errors"
	"time"

	"github.com/marek-a-m/vigor/internal/health"
	"github.com/marek-a-m/vigor/internal/ring"
)

var ErrNotFound = errors.New("not found")

// ReadingStore persists daily baseline readings. Implementations store only
// the metrics actually present on a day; absent metrics stay absent on the
// way back out.
type ReadingStore interface {
	// SaveReading upserts one day's readings, replacing any earlier entry
	// for the same day.
	SaveReading(ctx context.Context, r health.DailyReading) error

	// ReadingsSince returns readings on or after the given day, ascending.
	ReadingsSince(ctx context.Context, since time.Time) ([]health.DailyReading, error)

	// Prune drops readings strictly before the given day.
	Prune(ctx context.Context, before time.Time) error
}

// MetricsCache caches computed ring metrics so repeated transforms of an
// unchanged payload skip the engine. Entries are keyed by preset and day:
// the same day transformed under different presets yields different metrics,
// so the preset is part of the identity, not a detail.
type MetricsCache interface {
	// GetMetrics returns the cached metrics for a preset and day.
	// Returns ErrNotFound if not cached or expired.
	GetMetrics(ctx context.Context, preset string, day time.Time) (ring.Metrics, error)

	// SetMetrics caches metrics for a preset and their day with a TTL.
	SetMetrics(ctx context.Context, preset string, m ring.Metrics, ttl time.Duration) error
}
