package service

import (
	"context"
	"fmt"
	"time"

	"github.com/marek-a-m/vigor/internal/baseline"
	"github.com/marek-a-m/vigor/internal/health"
	"github.com/marek-a-m/vigor/internal/recovery"
	"github.com/marek-a-m/vigor/internal/xslog"
)

// ScoreDay computes the recovery score for a day from the current readings
// and the stored baseline history. History before the baseline window never
// leaves the store.
func (s *Service) ScoreDay(ctx context.Context, day time.Time, current health.Metrics) (recovery.Result, error) {
	day = day.Truncate(24 * time.Hour)
	since := day.AddDate(0, 0, -s.windowDays)

	history, err := s.store.ReadingsSince(ctx, since)
	if err != nil {
		return recovery.Result{}, fmt.Errorf("loading baseline history: %w", err)
	}

	tracker := baseline.NewTracker(
		baseline.WithWindowDays(s.windowDays),
		baseline.WithMinDays(s.minDays),
	)
	tracker.Seed(history)

	result, err := recovery.Score(current, tracker.At(day))
	if err != nil {
		return recovery.Result{}, err
	}

	s.logger.InfoContext(ctx, "scored day",
		xslog.Date(day),
		xslog.Score(result.Score),
		xslog.Days(len(history)),
	)
	return result, nil
}
