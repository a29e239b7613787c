package whoop

import "time"

// DailyPayload is one day of WHOOP data, already decoded and aggregated by
// the fetching layer. The engine consumes it as-is and performs no I/O.
type DailyPayload struct {
	Date             time.Time  `json:"date"`
	RestingHeartRate float64    `json:"resting_heart_rate"`
	MaxHeartRate     float64    `json:"max_heart_rate"`
	Kilojoule        float64    `json:"kilojoule"`
	HeartRateSamples []HRSample `json:"heart_rate_samples"`
	Workouts         []Workout  `json:"workouts"`
	Recovery         *Recovery  `json:"recovery"`
}

// HRSample is a single heart-rate observation. Samples are usually ordered
// ascending by timestamp but hour bucketing must not rely on it.
type HRSample struct {
	Timestamp time.Time `json:"timestamp"`
	BPM       float64   `json:"bpm"`
}

type Workout struct {
	ID               string        `json:"id"`
	Start            time.Time     `json:"start"`
	End              time.Time     `json:"end"`
	SportName        string        `json:"sport_name"`
	AverageHeartRate float64       `json:"average_heart_rate"`
	MaxHeartRate     float64       `json:"max_heart_rate"`
	ZoneDurations    ZoneDurations `json:"zone_durations"`
}

type ZoneDurations struct {
	ZoneZeroMilli  int `json:"zone_zero_milli"`
	ZoneOneMilli   int `json:"zone_one_milli"`
	ZoneTwoMilli   int `json:"zone_two_milli"`
	ZoneThreeMilli int `json:"zone_three_milli"`
	ZoneFourMilli  int `json:"zone_four_milli"`
	ZoneFiveMilli  int `json:"zone_five_milli"`
}

// Recovery is the optional recovery record attached to a cycle.
type Recovery struct {
	ScoreState       ScoreState `json:"score_state"`
	RecoveryScore    float64    `json:"recovery_score"`
	RestingHeartRate float64    `json:"resting_heart_rate"`
	HRVRmssdMilli    float64    `json:"hrv_rmssd_milli"`
	SkinTempCelsius  float64    `json:"skin_temp_celsius"`
}

type ScoreState string

const (
	ScoreStateScored       ScoreState = "SCORED"
	ScoreStatePendingScore ScoreState = "PENDING_SCORE"
	ScoreStateUnscorable   ScoreState = "UNSCORABLE"
)

// Overlaps reports whether the workout interval intersects [start, end).
func (w Workout) Overlaps(start, end time.Time) bool {
	return w.Start.Before(end) && w.End.After(start)
}
