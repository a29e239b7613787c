package service

import (
	"context"
	"errors"

	"github.com/marek-a-m/vigor/internal/generosity"
	"github.com/marek-a-m/vigor/internal/ring"
	"github.com/marek-a-m/vigor/internal/storage"
	"github.com/marek-a-m/vigor/internal/synth"
	"github.com/marek-a-m/vigor/internal/whoop"
	"github.com/marek-a-m/vigor/internal/xslog"
)

// TransformDay converts one payload into ring metrics, consulting the cache
// first when one is configured.
func (s *Service) TransformDay(ctx context.Context, payload *whoop.DailyPayload) (ring.Metrics, error) {
	if s.cache != nil {
		cached, err := s.cache.GetMetrics(ctx, s.preset.Name, payload.Date)
		if err == nil {
			s.logger.DebugContext(ctx, "metrics cache hit", xslog.Date(payload.Date))
			return cached, nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.WarnContext(ctx, "metrics cache read failed", xslog.Error(err))
		}
	}

	metrics, err := generosity.Transform(payload, s.preset)
	if err != nil {
		return ring.Metrics{}, err
	}

	s.logger.InfoContext(ctx, "transformed day",
		xslog.Date(payload.Date),
		xslog.Preset(s.preset.Name),
		xslog.Calories(metrics.ActiveEnergyKcal),
		xslog.ExerciseMinutes(metrics.ExerciseMinutes),
		xslog.StandHours(metrics.StandHours.Count()),
	)

	if s.cache != nil {
		if err := s.cache.SetMetrics(ctx, s.preset.Name, metrics, s.cacheTTL); err != nil {
			s.logger.WarnContext(ctx, "metrics cache write failed", xslog.Error(err))
		}
	}
	return metrics, nil
}

// SynthesizeDay transforms a payload and expands the totals into discrete
// samples for the payload's day.
func (s *Service) SynthesizeDay(ctx context.Context, payload *whoop.DailyPayload) ([]ring.Sample, error) {
	metrics, err := s.TransformDay(ctx, payload)
	if err != nil {
		return nil, err
	}
	samples := synth.Synthesize(metrics, payload.Date)
	s.logger.InfoContext(ctx, "synthesized samples",
		xslog.Date(payload.Date),
		xslog.Count(len(samples)),
	)
	return samples, nil
}
