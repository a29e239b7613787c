package service

import (
	"context"
	"fmt"

	"github.com/marek-a-m/vigor/internal/health"
	"github.com/marek-a-m/vigor/internal/whoop"
	"github.com/marek-a-m/vigor/internal/xslog"
)

// IngestPayload extracts the day's baseline-relevant readings from a payload
// and saves them. Resting heart rate comes from the payload itself; HRV and
// skin temperature only exist on a scored recovery record. A payload with
// nothing usable is a no-op, not an error.
func (s *Service) IngestPayload(ctx context.Context, payload *whoop.DailyPayload) error {
	reading := health.DailyReading{Day: payload.Date}
	if payload.RestingHeartRate > 0 {
		reading.RestingHR = health.Some(payload.RestingHeartRate)
	}
	if r := payload.Recovery; r != nil && r.ScoreState == whoop.ScoreStateScored {
		if r.HRVRmssdMilli > 0 {
			reading.HRV = health.Some(r.HRVRmssdMilli)
		}
		if r.SkinTempCelsius > 0 {
			reading.SkinTemp = health.Some(r.SkinTempCelsius)
		}
	}

	if !reading.HRV.Present() && !reading.RestingHR.Present() && !reading.SkinTemp.Present() {
		s.logger.DebugContext(ctx, "payload has no baseline readings", xslog.Date(payload.Date))
		return nil
	}

	if err := s.store.SaveReading(ctx, reading); err != nil {
		return fmt.Errorf("saving reading: %w", err)
	}
	s.logger.DebugContext(ctx, "ingested readings", xslog.Date(payload.Date))
	return nil
}
