package synth

import (
	"math"
	"sort"
	"testing"
	"time"

	"github.com/marek-a-m/vigor/internal/ring"
)

var testDay = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

func metricsFixture() ring.Metrics {
	return ring.Metrics{
		Date:             testDay,
		ActiveEnergyKcal: 640,
		ExerciseMinutes:  37,
		StandHours:       ring.NewHourSet(8, 9, 12, 18),
	}
}

func byType(samples []ring.Sample, t ring.SampleType) []ring.Sample {
	var out []ring.Sample
	for _, s := range samples {
		if s.Type == t {
			out = append(out, s)
		}
	}
	return out
}

func TestSynthesizeNoOverlapWithinDay(t *testing.T) {
	t.Parallel()

	samples := Synthesize(metricsFixture(), testDay)
	dayEnd := testDay.Add(24 * time.Hour)

	for _, s := range samples {
		if s.Start.Before(testDay) || s.End.After(dayEnd) {
			t.Errorf("%s sample [%v, %v) escapes the day", s.Type, s.Start, s.End)
		}
		if !s.End.After(s.Start) {
			t.Errorf("%s sample has non-positive duration [%v, %v)", s.Type, s.Start, s.End)
		}
	}

	for _, typ := range []ring.SampleType{ring.SampleEnergy, ring.SampleExercise, ring.SampleStand} {
		typed := byType(samples, typ)
		sort.Slice(typed, func(i, j int) bool { return typed[i].Start.Before(typed[j].Start) })
		for i := 1; i < len(typed); i++ {
			if typed[i].Start.Before(typed[i-1].End) {
				t.Errorf("%s samples overlap: [%v, %v) then [%v, %v)",
					typ, typed[i-1].Start, typed[i-1].End, typed[i].Start, typed[i].End)
			}
		}
	}
}

func TestSynthesizeRoundTrip(t *testing.T) {
	t.Parallel()

	metrics := metricsFixture()
	samples := Synthesize(metrics, testDay)

	totals := make(map[ring.SampleType]float64)
	for _, s := range samples {
		totals[s.Type] += s.Quantity
	}

	if math.Abs(totals[ring.SampleEnergy]-metrics.ActiveEnergyKcal) > 1e-9 {
		t.Errorf("energy total = %v, want %v", totals[ring.SampleEnergy], metrics.ActiveEnergyKcal)
	}
	if math.Abs(totals[ring.SampleExercise]-metrics.ExerciseMinutes) > 1e-9 {
		t.Errorf("exercise total = %v, want %v", totals[ring.SampleExercise], metrics.ExerciseMinutes)
	}
	if got := totals[ring.SampleStand]; got != float64(metrics.StandHours.Count()) {
		t.Errorf("stand total = %v, want %v", got, metrics.StandHours.Count())
	}
}

func TestSynthesizeZeroTotalsProduceNoSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		metrics ring.Metrics
		typ     ring.SampleType
	}{
		{
			name:    "zero exercise",
			metrics: ring.Metrics{ActiveEnergyKcal: 300, StandHours: ring.NewHourSet(9)},
			typ:     ring.SampleExercise,
		},
		{
			name:    "zero energy",
			metrics: ring.Metrics{ExerciseMinutes: 20, StandHours: ring.NewHourSet(9)},
			typ:     ring.SampleEnergy,
		},
		{
			name:    "no stand hours",
			metrics: ring.Metrics{ActiveEnergyKcal: 300, ExerciseMinutes: 20},
			typ:     ring.SampleStand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			samples := Synthesize(tt.metrics, testDay)
			if got := byType(samples, tt.typ); len(got) != 0 {
				t.Errorf("got %d %s samples, want none", len(got), tt.typ)
			}
		})
	}

	t.Run("all zero", func(t *testing.T) {
		t.Parallel()
		if samples := Synthesize(ring.Metrics{}, testDay); len(samples) != 0 {
			t.Errorf("got %d samples, want none", len(samples))
		}
	})
}

func TestEnergySamplesEvenHourlyBuckets(t *testing.T) {
	t.Parallel()

	samples := energySamples(640, testDay)
	if len(samples) != 16 {
		t.Fatalf("got %d energy samples, want 16", len(samples))
	}
	for i, s := range samples {
		wantStart := testDay.Add(time.Duration(6+i) * time.Hour)
		if !s.Start.Equal(wantStart) {
			t.Errorf("sample %d start = %v, want %v", i, s.Start, wantStart)
		}
		if s.Quantity != 40 {
			t.Errorf("sample %d quantity = %v, want 40", i, s.Quantity)
		}
	}
}

func TestExerciseSamplesChunking(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		minutes    float64
		wantBlocks int
		wantLast   float64
	}{
		{"exact multiple", 30, 3, 10},
		{"remainder in last block", 37, 4, 7},
		{"single short block", 4, 1, 4},
		{"crowded window runs back to back", 900, 90, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			samples := exerciseSamples(tt.minutes, testDay)
			if len(samples) != tt.wantBlocks {
				t.Fatalf("got %d blocks, want %d", len(samples), tt.wantBlocks)
			}
			if got := samples[len(samples)-1].Quantity; math.Abs(got-tt.wantLast) > 1e-9 {
				t.Errorf("last block quantity = %v, want %v", got, tt.wantLast)
			}

			var total float64
			dayEnd := testDay.Add(24 * time.Hour)
			for i, s := range samples {
				total += s.Quantity
				if s.Quantity > 10 {
					t.Errorf("block %d quantity = %v, want <= 10", i, s.Quantity)
				}
				if s.Start.Before(testDay) || s.End.After(dayEnd) {
					t.Errorf("block %d [%v, %v) escapes the day", i, s.Start, s.End)
				}
				if i > 0 && s.Start.Before(samples[i-1].End) {
					t.Errorf("block %d overlaps block %d", i, i-1)
				}
			}
			if math.Abs(total-tt.minutes) > 1e-9 {
				t.Errorf("total minutes = %v, want %v", total, tt.minutes)
			}
		})
	}
}

func TestExerciseSamplesCappedAtDayBoundary(t *testing.T) {
	t.Parallel()

	// More block time than a day holds (max-intensity minutes all day plus
	// workout bonuses can exceed 1440). The schedule starts at midnight and
	// drops the overflow rather than spilling into the next day.
	samples := exerciseSamples(1500, testDay)
	if len(samples) != 144 {
		t.Fatalf("got %d blocks, want 144", len(samples))
	}

	var total float64
	dayEnd := testDay.Add(24 * time.Hour)
	for i, s := range samples {
		total += s.Quantity
		if s.Start.Before(testDay) || s.End.After(dayEnd) {
			t.Errorf("block %d [%v, %v) escapes the day", i, s.Start, s.End)
		}
		if i > 0 && s.Start.Before(samples[i-1].End) {
			t.Errorf("block %d overlaps block %d", i, i-1)
		}
	}
	if math.Abs(total-1440) > 1e-9 {
		t.Errorf("total minutes = %v, want 1440 (a day's capacity)", total)
	}
}

func TestExerciseSamplesDeterministicButVaried(t *testing.T) {
	t.Parallel()

	first := exerciseSamples(60, testDay)
	second := exerciseSamples(60, testDay)
	if len(first) != len(second) {
		t.Fatalf("block counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Start.Equal(second[i].Start) || !first[i].End.Equal(second[i].End) {
			t.Errorf("block %d placement not reproducible", i)
		}
	}

	// Offsets vary across blocks: not every block starts at the same
	// minute-within-slot.
	offsets := make(map[int]bool)
	for _, s := range first {
		offsets[s.Start.Minute()] = true
	}
	if len(offsets) < 2 {
		t.Error("all blocks share one offset, want varied placement")
	}
}

func TestStandSamplesAtHourBoundaries(t *testing.T) {
	t.Parallel()

	samples := standSamples(ring.NewHourSet(0, 13, 23), testDay)
	if len(samples) != 3 {
		t.Fatalf("got %d stand samples, want 3", len(samples))
	}
	wantHours := []int{0, 13, 23}
	for i, s := range samples {
		wantStart := testDay.Add(time.Duration(wantHours[i]) * time.Hour)
		if !s.Start.Equal(wantStart) {
			t.Errorf("sample %d start = %v, want %v", i, s.Start, wantStart)
		}
		if got := s.End.Sub(s.Start); got != time.Hour {
			t.Errorf("sample %d duration = %v, want 1h", i, got)
		}
		if s.Quantity != 1 {
			t.Errorf("sample %d quantity = %v, want 1", i, s.Quantity)
		}
	}
}
