package generosity

import (
	"strings"

	"github.com/marek-a-m/vigor/internal/xerrors"
)

// Preset is a named generosity configuration. The set is closed so behavior
// stays auditable: tuning happens by choosing a preset, not by free-form
// parameters.
type Preset struct {
	Name string

	// Move ring. The calorie multiplier interpolates linearly between the
	// low and high bound as the elevated-heart-rate fraction of the day goes
	// from 0 to 1.
	MoveMultiplierLow  float64
	MoveMultiplierHigh float64
	MotionKcalPerHour  float64
	WakingHours        float64

	// Exercise ring. Thresholds are fractions of max heart rate; minutes in
	// the low band count at LowIntensityWeight, moderate and high at full
	// weight.
	ExerciseLowPct      float64
	ExerciseModeratePct float64
	ExerciseHighPct     float64
	LowIntensityWeight  float64
	WorkoutBonusMinutes float64

	// Stand ring. A spike is a continuous run at least this far above
	// resting heart rate.
	StandSpikeBPM float64
}

var (
	Conservative = Preset{
		Name:                "conservative",
		MoveMultiplierLow:   1.10,
		MoveMultiplierHigh:  1.23,
		MotionKcalPerHour:   8,
		WakingHours:         16,
		ExerciseLowPct:      0.45,
		ExerciseModeratePct: 0.55,
		ExerciseHighPct:     0.75,
		LowIntensityWeight:  0.5,
		WorkoutBonusMinutes: 5,
		StandSpikeBPM:       12,
	}

	Balanced = Preset{
		Name:                "balanced",
		MoveMultiplierLow:   1.15,
		MoveMultiplierHigh:  1.50,
		MotionKcalPerHour:   8,
		WakingHours:         16,
		ExerciseLowPct:      0.45,
		ExerciseModeratePct: 0.55,
		ExerciseHighPct:     0.75,
		LowIntensityWeight:  0.5,
		WorkoutBonusMinutes: 6,
		StandSpikeBPM:       10,
	}

	Generous = Preset{
		Name:                "generous",
		MoveMultiplierLow:   1.25,
		MoveMultiplierHigh:  1.75,
		MotionKcalPerHour:   8,
		WakingHours:         16,
		ExerciseLowPct:      0.40,
		ExerciseModeratePct: 0.50,
		ExerciseHighPct:     0.70,
		LowIntensityWeight:  0.5,
		WorkoutBonusMinutes: 8,
		StandSpikeBPM:       8,
	}
)

func Presets() []Preset {
	return []Preset{Conservative, Balanced, Generous}
}

// PresetByName resolves a preset case-insensitively. Unknown names fail with
// a configuration error rather than falling back to a default.
func PresetByName(name string) (Preset, error) {
	for _, p := range Presets() {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Preset{}, xerrors.Configuration(
		xerrors.WithMessage("unknown preset: " + name + " (valid: conservative, balanced, generous)"),
	)
}
