// Package synth converts daily ring totals into discrete time-stamped
// samples for downstream systems that need per-interval records. Placement
// is fully deterministic: the same metrics and date always yield the same
// intervals, so re-synthesis never produces drift.
package synth

import (
	"time"

	"github.com/marek-a-m/vigor/internal/ring"
)

const (
	// Waking window for energy distribution.
	energyWindowStartHour = 6
	energyWindowEndHour   = 22

	// Active window for exercise blocks.
	exerciseWindowStartHour = 7
	exerciseWindowEndHour   = 21

	// Exercise is chunked into blocks of at most this many minutes.
	maxBlockMinutes = 10.0

	// Per-block start offsets cycle through this many minute steps so the
	// blocks do not land on identical boundaries. Seven is coprime with the
	// cycle length, spreading offsets across it.
	offsetStride = 7
)

// Synthesize expands the daily totals into non-overlapping samples, all
// within [startOfDay, startOfDay+24h). Zero totals produce no samples for
// that type.
func Synthesize(m ring.Metrics, day time.Time) []ring.Sample {
	dayStart := day.Truncate(24 * time.Hour)

	var samples []ring.Sample
	samples = append(samples, energySamples(m.ActiveEnergyKcal, dayStart)...)
	samples = append(samples, exerciseSamples(m.ExerciseMinutes, dayStart)...)
	samples = append(samples, standSamples(m.StandHours, dayStart)...)
	return samples
}

// energySamples spreads the calorie total evenly across the waking window in
// one-hour buckets.
func energySamples(totalKcal float64, dayStart time.Time) []ring.Sample {
	if totalKcal <= 0 {
		return nil
	}

	hours := energyWindowEndHour - energyWindowStartHour
	perBucket := totalKcal / float64(hours)

	samples := make([]ring.Sample, 0, hours)
	for i := 0; i < hours; i++ {
		start := dayStart.Add(time.Duration(energyWindowStartHour+i) * time.Hour)
		samples = append(samples, ring.NewSample(ring.SampleEnergy, start, start.Add(time.Hour), perBucket))
	}
	return samples
}

// exerciseSamples chunks the minute total into blocks of at most ten
// minutes, spaced across the active window. Each block sits inside its own
// slot with a small deterministic offset; when the window is too crowded for
// offsets the blocks run back to back instead. The final block carries the
// remainder so the quantities sum exactly to the total.
func exerciseSamples(totalMinutes float64, dayStart time.Time) []ring.Sample {
	if totalMinutes <= 0 {
		return nil
	}

	blocks := int(totalMinutes / maxBlockMinutes)
	if float64(blocks)*maxBlockMinutes < totalMinutes {
		blocks++
	}

	windowStart := dayStart.Add(exerciseWindowStartHour * time.Hour)
	window := time.Duration(exerciseWindowEndHour-exerciseWindowStartHour) * time.Hour
	slot := window / time.Duration(blocks)

	maxLength := time.Duration(maxBlockMinutes * float64(time.Minute))
	if slot < maxLength {
		// Too many blocks for slotted placement: run them back to back,
		// pulled earlier if the schedule would spill past midnight.
		slot = maxLength
		total := time.Duration(blocks) * slot
		if over := windowStart.Add(total).Sub(dayStart.Add(24 * time.Hour)); over > 0 {
			windowStart = windowStart.Add(-over)
		}
		if windowStart.Before(dayStart) {
			// More block time than the day holds. Start at midnight and drop
			// the blocks that would land in the next day; every emitted
			// interval stays inside the day even if the quantities then sum
			// below the requested total.
			windowStart = dayStart
			if fit := int(24 * time.Hour / slot); blocks > fit {
				blocks = fit
			}
		}
	}

	samples := make([]ring.Sample, 0, blocks)
	remaining := totalMinutes
	for i := 0; i < blocks; i++ {
		minutes := maxBlockMinutes
		if remaining < maxBlockMinutes {
			minutes = remaining
		}
		remaining -= minutes

		length := time.Duration(minutes * float64(time.Minute))
		start := windowStart.Add(time.Duration(i) * slot)
		if slack := slot - length; slack > 0 {
			offsetSteps := int(slack/time.Minute) + 1
			start = start.Add(time.Duration((i*offsetStride)%offsetSteps) * time.Minute)
		}

		samples = append(samples, ring.NewSample(ring.SampleExercise, start, start.Add(length), minutes))
	}
	return samples
}

// standSamples emits one sample per credited hour, pinned to the hour
// boundary.
func standSamples(hours ring.HourSet, dayStart time.Time) []ring.Sample {
	credited := hours.Hours()
	if len(credited) == 0 {
		return nil
	}

	samples := make([]ring.Sample, 0, len(credited))
	for _, h := range credited {
		start := dayStart.Add(time.Duration(h) * time.Hour)
		samples = append(samples, ring.NewSample(ring.SampleStand, start, start.Add(time.Hour), 1))
	}
	return samples
}
