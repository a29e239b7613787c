// Package generosity re-derives motion-based activity credit from
// cardiovascular-only source data: calories for the move ring, weighted
// minutes for the exercise ring, and inferred stand hours. The transform is
// deterministic; the same payload and preset always produce the same output.
package generosity

import (
	"github.com/marek-a-m/vigor/internal/ring"
	"github.com/marek-a-m/vigor/internal/validator"
	"github.com/marek-a-m/vigor/internal/whoop"
)

// kcalPerKilojoule converts WHOOP's kilojoule energy totals to kilocalories.
const kcalPerKilojoule = 1.0 / 4.184

// Transform converts one day of WHOOP data into ring-style metrics.
// The payload is validated up front; transform logic never runs on malformed
// input.
func Transform(payload *whoop.DailyPayload, preset Preset) (ring.Metrics, error) {
	if err := validator.Check(payload); err != nil {
		return ring.Metrics{}, err
	}

	return ring.Metrics{
		Date:             payload.Date,
		ActiveEnergyKcal: moveCalories(payload, preset),
		ExerciseMinutes:  exerciseMinutes(payload, preset),
		StandHours:       standHours(payload, preset),
	}, nil
}
