package whoop

import (
	"fmt"

	"github.com/marek-a-m/vigor/internal/validator"
)

var _ validator.Validator = (*DailyPayload)(nil)

func (p *DailyPayload) Validate() map[string]string {
	fields := make(map[string]string)

	if p.Date.IsZero() {
		fields["date"] = "date is required"
	}
	if p.RestingHeartRate <= 0 {
		fields["resting_heart_rate"] = "resting heart rate must be positive"
	}
	if p.MaxHeartRate <= 0 {
		fields["max_heart_rate"] = "max heart rate must be positive"
	}
	if p.MaxHeartRate > 0 && p.RestingHeartRate >= p.MaxHeartRate {
		fields["max_heart_rate"] = "max heart rate must exceed resting heart rate"
	}
	if p.Kilojoule < 0 {
		fields["kilojoule"] = "kilojoule must not be negative"
	}

	for i, s := range p.HeartRateSamples {
		if s.BPM <= 0 {
			fields[fmt.Sprintf("heart_rate_samples[%d].bpm", i)] = "bpm must be positive"
			break
		}
		if s.Timestamp.IsZero() {
			fields[fmt.Sprintf("heart_rate_samples[%d].timestamp", i)] = "timestamp is required"
			break
		}
	}

	for i, w := range p.Workouts {
		if !w.End.After(w.Start) {
			fields[fmt.Sprintf("workouts[%d]", i)] = "workout end must be after start"
			break
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}
