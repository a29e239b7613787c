package baseline

import (
	"math"
	"testing"
	"time"

	"github.com/marek-a-m/vigor/internal/health"
)

var day0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func day(n int) time.Time { return day0.AddDate(0, 0, n-1) }

func TestTrackerWindowEviction(t *testing.T) {
	t.Parallel()

	tracker := NewTracker()
	// HRV recorded on days 1-40 with value equal to the day number, so the
	// surviving window is easy to verify from the mean.
	for n := 1; n <= 40; n++ {
		tracker.Record(day(n), health.DailyReading{HRV: health.Some(float64(n))})
	}

	b := tracker.At(day(41))
	if b.HRV == nil {
		t.Fatal("HRV baseline is nil, want stats over days 11-40")
	}
	if b.HRV.Days != 30 {
		t.Errorf("Days = %d, want 30", b.HRV.Days)
	}
	// Days 11..40 have mean 25.5.
	if math.Abs(b.HRV.Mean-25.5) > 1e-9 {
		t.Errorf("Mean = %v, want 25.5", b.HRV.Mean)
	}
}

func TestTrackerMissingDaysExcluded(t *testing.T) {
	t.Parallel()

	tracker := NewTracker()
	for n := 1; n <= 10; n++ {
		r := health.DailyReading{RestingHR: health.Some(50)}
		// HRV present only on even days; odd days must not count as zero.
		if n%2 == 0 {
			r.HRV = health.Some(100)
		}
		tracker.Record(day(n), r)
	}

	b := tracker.Current()
	if b.HRV == nil {
		t.Fatal("HRV baseline is nil, want stats over the 5 recorded days")
	}
	if b.HRV.Days != 5 {
		t.Errorf("HRV.Days = %d, want 5", b.HRV.Days)
	}
	if b.HRV.Mean != 100 {
		t.Errorf("HRV.Mean = %v, want 100 (missing days treated as zero?)", b.HRV.Mean)
	}
	if b.RestingHR == nil || b.RestingHR.Days != 10 {
		t.Errorf("RestingHR baseline = %+v, want 10 days", b.RestingHR)
	}
}

func TestTrackerMinimumDays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		days     int
		wantStat bool
	}{
		{"below threshold", 4, false},
		{"at threshold", 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tracker := NewTracker()
			for n := 1; n <= tt.days; n++ {
				tracker.Record(day(n), health.DailyReading{SkinTemp: health.Some(33.5)})
			}
			b := tracker.Current()
			if got := b.SkinTemp != nil; got != tt.wantStat {
				t.Errorf("SkinTemp baseline present = %v, want %v", got, tt.wantStat)
			}
		})
	}
}

func TestTrackerSampleStdDev(t *testing.T) {
	t.Parallel()

	tracker := NewTracker(WithMinDays(2))
	values := []float64{40, 50, 60, 70, 80}
	for n, v := range values {
		tracker.Record(day(n+1), health.DailyReading{HRV: health.Some(v)})
	}

	b := tracker.Current()
	if b.HRV == nil {
		t.Fatal("HRV baseline is nil")
	}
	// Deviations {-20,-10,0,10,20}, squared sum 1000, /(N-1)=250.
	want := math.Sqrt(250)
	if math.Abs(b.HRV.StdDev-want) > 1e-9 {
		t.Errorf("StdDev = %v, want %v", b.HRV.StdDev, want)
	}
}

func TestTrackerRecordReplacesSameDay(t *testing.T) {
	t.Parallel()

	tracker := NewTracker(WithMinDays(1))
	tracker.Record(day(1), health.DailyReading{HRV: health.Some(40)})
	tracker.Record(day(1), health.DailyReading{HRV: health.Some(60)})

	b := tracker.Current()
	if b.HRV == nil || b.HRV.Days != 1 {
		t.Fatalf("HRV baseline = %+v, want single day", b.HRV)
	}
	if b.HRV.Mean != 60 {
		t.Errorf("Mean = %v, want 60", b.HRV.Mean)
	}
}

func TestTrackerSeed(t *testing.T) {
	t.Parallel()

	readings := make([]health.DailyReading, 0, 6)
	for n := 1; n <= 6; n++ {
		readings = append(readings, health.DailyReading{
			Day: day(n),
			HRV: health.Some(55),
		})
	}

	tracker := NewTracker()
	tracker.Seed(readings)

	if got := len(tracker.Days()); got != 6 {
		t.Errorf("len(Days()) = %d, want 6", got)
	}
	if b := tracker.Current(); b.HRV == nil || b.HRV.Mean != 55 {
		t.Errorf("baseline = %+v, want HRV mean 55", b.HRV)
	}
}
