package generosity

import (
	"time"

	"github.com/marek-a-m/vigor/internal/whoop"
)

// exerciseMinutes partitions the day's heart-rate data into clock minutes,
// grades each minute by intensity as a fraction of max heart rate, and sums
// the weighted minutes. Each discrete workout adds a fixed bonus, mirroring
// the target platform's generous workout detection.
func exerciseMinutes(payload *whoop.DailyPayload, preset Preset) float64 {
	type bucket struct {
		sum   float64
		count int
	}
	minutes := make(map[time.Time]*bucket)
	for _, s := range payload.HeartRateSamples {
		key := s.Timestamp.Truncate(time.Minute)
		b, ok := minutes[key]
		if !ok {
			b = &bucket{}
			minutes[key] = b
		}
		b.sum += s.BPM
		b.count++
	}

	var total float64
	for _, b := range minutes {
		avg := b.sum / float64(b.count)
		pct := avg / payload.MaxHeartRate
		switch {
		case pct >= preset.ExerciseHighPct:
			total += 1.0
		case pct >= preset.ExerciseModeratePct:
			total += 1.0
		case pct >= preset.ExerciseLowPct:
			total += preset.LowIntensityWeight
		}
	}

	total += float64(len(payload.Workouts)) * preset.WorkoutBonusMinutes

	return total
}
