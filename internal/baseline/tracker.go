package baseline

import (
	"math"
	"sort"
	"time"

	"github.com/marek-a-m/vigor/internal/health"
)

const (
	// DefaultWindowDays is the trailing window the statistics cover.
	DefaultWindowDays = 30
	// DefaultMinDays is the minimum recorded days a metric needs before it
	// yields a baseline at all.
	DefaultMinDays = 5
)

// Tracker accumulates daily readings and computes trailing-window statistics.
// It is the only stateful piece of the engine and is not safe for concurrent
// mutation; the caller serializes Record calls.
type Tracker struct {
	windowDays int
	minDays    int
	readings   map[time.Time]health.DailyReading
}

type TrackerOption func(*Tracker)

func WithWindowDays(days int) TrackerOption {
	return func(t *Tracker) { t.windowDays = days }
}

func WithMinDays(days int) TrackerOption {
	return func(t *Tracker) { t.minDays = days }
}

func NewTracker(opts ...TrackerOption) *Tracker {
	t := &Tracker{
		windowDays: DefaultWindowDays,
		minDays:    DefaultMinDays,
		readings:   make(map[time.Time]health.DailyReading),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Record stores a day's readings. Recording the same day twice replaces the
// earlier entry. Absent fields are simply not stored for that metric; they
// never count as zero. Entries older than the window (relative to the newest
// recorded day) are evicted.
func (t *Tracker) Record(day time.Time, r health.DailyReading) {
	day = day.Truncate(24 * time.Hour)
	r.Day = day
	t.readings[day] = r
	t.evict(t.newestDay())
}

// Seed bulk-loads historical readings, typically from a reading store.
func (t *Tracker) Seed(readings []health.DailyReading) {
	for _, r := range readings {
		t.Record(r.Day, r)
	}
}

// Current computes the baseline over the trailing window anchored at the
// most recent recorded day.
func (t *Tracker) Current() Baseline {
	return t.At(t.newestDay())
}

// At computes the baseline over the window ending at day, inclusive. Only
// days where a metric was actually recorded participate in that metric's
// statistics.
func (t *Tracker) At(day time.Time) Baseline {
	day = day.Truncate(24 * time.Hour)
	t.evict(day)

	var hrv, rhr, temp []float64
	for _, r := range t.readings {
		if r.Day.After(day) {
			continue
		}
		if v, ok := r.HRV.Value(); ok {
			hrv = append(hrv, v)
		}
		if v, ok := r.RestingHR.Value(); ok {
			rhr = append(rhr, v)
		}
		if v, ok := r.SkinTemp.Value(); ok {
			temp = append(temp, v)
		}
	}

	return Baseline{
		HRV:       t.stat(hrv),
		RestingHR: t.stat(rhr),
		SkinTemp:  t.stat(temp),
	}
}

// Days returns the recorded days in ascending order.
func (t *Tracker) Days() []time.Time {
	days := make([]time.Time, 0, len(t.readings))
	for day := range t.readings {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

func (t *Tracker) newestDay() time.Time {
	var newest time.Time
	for day := range t.readings {
		if day.After(newest) {
			newest = day
		}
	}
	return newest
}

// evict drops entries strictly older than the trailing window ending at
// anchor. The window is a fixed duration, not a fixed sample count: a 30-day
// window anchored at day 41 keeps days 11 through 40.
func (t *Tracker) evict(anchor time.Time) {
	if anchor.IsZero() {
		return
	}
	cutoff := anchor.AddDate(0, 0, -t.windowDays)
	for day := range t.readings {
		if day.Before(cutoff) {
			delete(t.readings, day)
		}
	}
}

func (t *Tracker) stat(values []float64) *Stat {
	if len(values) < t.minDays {
		return nil
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var stddev float64
	if len(values) > 1 {
		var sq float64
		for _, v := range values {
			d := v - mean
			sq += d * d
		}
		// Sample variance, N-1 denominator.
		stddev = math.Sqrt(sq / float64(len(values)-1))
	}

	return &Stat{Mean: mean, StdDev: stddev, Days: len(values)}
}
