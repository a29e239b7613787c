package health

import "time"

// Metrics holds one day's biometric readings. Any subset may be absent.
type Metrics struct {
	SleepHours Reading // total sleep duration, hours
	HRV        Reading // RMSSD, milliseconds
	RestingHR  Reading // beats per minute
	SkinTemp   Reading // degrees Celsius
}

// DailyReading is the stored form of one day's baseline-relevant readings.
// Sleep is scored against a fixed band and carries no personal baseline, so
// it is not part of the stored history.
type DailyReading struct {
	Day       time.Time
	HRV       Reading
	RestingHR Reading
	SkinTemp  Reading
}
