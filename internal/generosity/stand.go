package generosity

import (
	"sort"
	"time"

	"github.com/marek-a-m/vigor/internal/ring"
	"github.com/marek-a-m/vigor/internal/whoop"
)

// minimum continuous span above the spike threshold for an hour to count.
const spikeSpan = time.Minute

// standHours credits each clock hour that shows direct evidence of movement
// (a sustained heart-rate spike or an overlapping workout), then propagates
// credit to hours sandwiched between two credited neighbors. Propagation
// runs to a fixed point so the result is order-independent: a single pass
// would depend on scan direction once inferred hours enable further
// inference.
func standHours(payload *whoop.DailyPayload, preset Preset) ring.HourSet {
	var credited ring.HourSet

	byHour := samplesByHour(payload.HeartRateSamples)
	threshold := payload.RestingHeartRate + preset.StandSpikeBPM
	for hour, samples := range byHour {
		if hasSpike(samples, threshold) {
			credited = credited.Add(hour)
		}
	}

	dayStart := payload.Date.Truncate(24 * time.Hour)
	for hour := 0; hour < 24; hour++ {
		if credited.Contains(hour) {
			continue
		}
		hourStart := dayStart.Add(time.Duration(hour) * time.Hour)
		for _, w := range payload.Workouts {
			if w.Overlaps(hourStart, hourStart.Add(time.Hour)) {
				credited = credited.Add(hour)
				break
			}
		}
	}

	return propagate(credited)
}

// samplesByHour buckets samples purely by the hour component, sorted by
// timestamp within each bucket. Input order does not matter.
func samplesByHour(samples []whoop.HRSample) map[int][]whoop.HRSample {
	byHour := make(map[int][]whoop.HRSample)
	for _, s := range samples {
		byHour[s.Timestamp.Hour()] = append(byHour[s.Timestamp.Hour()], s)
	}
	for hour := range byHour {
		sort.Slice(byHour[hour], func(i, j int) bool {
			return byHour[hour][i].Timestamp.Before(byHour[hour][j].Timestamp)
		})
	}
	return byHour
}

// hasSpike reports whether a run of consecutive samples above the threshold
// spans at least a minute.
func hasSpike(samples []whoop.HRSample, threshold float64) bool {
	runStart := -1
	for i, s := range samples {
		if s.BPM <= threshold {
			runStart = -1
			continue
		}
		if runStart == -1 {
			runStart = i
		}
		if s.Timestamp.Sub(samples[runStart].Timestamp) >= spikeSpan {
			return true
		}
	}
	return false
}

// propagate applies the adjacency rule (both neighbors credited implies the
// hour is credited) until no hour changes.
func propagate(credited ring.HourSet) ring.HourSet {
	for {
		next := credited
		for hour := 1; hour < 23; hour++ {
			if next.Contains(hour) {
				continue
			}
			if next.Contains(hour-1) && next.Contains(hour+1) {
				next = next.Add(hour)
			}
		}
		if next == credited {
			return credited
		}
		credited = next
	}
}
