package ring

import (
	"time"

	"github.com/google/uuid"
)

type SampleType string

const (
	SampleEnergy   SampleType = "energy"
	SampleExercise SampleType = "exercise"
	SampleStand    SampleType = "stand"
)

// Sample is a single time-bounded record for downstream systems that need
// per-interval granularity instead of daily totals. Quantity is kcal for
// energy, minutes for exercise, and hours (always 1) for stand.
type Sample struct {
	ID       uuid.UUID  `json:"id"`
	Type     SampleType `json:"type"`
	Start    time.Time  `json:"start"`
	End      time.Time  `json:"end"`
	Quantity float64    `json:"quantity"`
}

func NewSample(t SampleType, start, end time.Time, quantity float64) Sample {
	return Sample{
		ID:       uuid.New(),
		Type:     t,
		Start:    start,
		End:      end,
		Quantity: quantity,
	}
}
