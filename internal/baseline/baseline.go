// Package baseline maintains rolling per-metric statistics over a trailing
// window of daily readings. The baseline is the personal reference that
// normalizes a current HRV, resting HR, or skin temperature reading.
package baseline

// Stat is the rolling mean and standard deviation for one metric.
// StdDev is the sample (N-1) standard deviation; with a single recorded day
// it is zero.
type Stat struct {
	Mean   float64
	StdDev float64
	Days   int
}

// Baseline holds per-metric statistics. A nil entry means the metric has too
// little history to normalize against and must be treated as missing by the
// scorer.
type Baseline struct {
	HRV       *Stat
	RestingHR *Stat
	SkinTemp  *Stat
}
