package generosity

import "github.com/marek-a-m/vigor/internal/whoop"

// moveCalories computes the move-ring total:
//
//	source kcal x multiplier + motion bonus
//
// The multiplier interpolates linearly between the preset bounds as the
// elevated fraction goes from 0 to 1. The motion bonus simulates the
// non-exercise movement the cardiovascular source cannot see, at a fixed
// rate per waking hour.
func moveCalories(payload *whoop.DailyPayload, preset Preset) float64 {
	sourceKcal := payload.Kilojoule * kcalPerKilojoule

	fraction := elevationFraction(payload)
	multiplier := preset.MoveMultiplierLow +
		(preset.MoveMultiplierHigh-preset.MoveMultiplierLow)*fraction

	motionBonus := preset.MotionKcalPerHour * preset.WakingHours

	return sourceKcal*multiplier + motionBonus
}

// elevationFraction is the share of heart-rate samples strictly above
// resting heart rate. Samples arrive near-uniformly spaced, so the sample
// share stands in for the time share of the day spent elevated. No samples
// means no evidence of elevation.
func elevationFraction(payload *whoop.DailyPayload) float64 {
	if len(payload.HeartRateSamples) == 0 {
		return 0
	}
	elevated := 0
	for _, s := range payload.HeartRateSamples {
		if s.BPM > payload.RestingHeartRate {
			elevated++
		}
	}
	return float64(elevated) / float64(len(payload.HeartRateSamples))
}
