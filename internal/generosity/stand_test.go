package generosity

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/marek-a-m/vigor/internal/ring"
	"github.com/marek-a-m/vigor/internal/whoop"
)

func TestStandHoursSpikes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload whoop.DailyPayload
		preset  Preset
		want    []int
	}{
		{
			name: "sustained spike credits the hour",
			payload: whoop.DailyPayload{
				Date:             testDay,
				RestingHeartRate: 52,
				MaxHeartRate:     190,
				// Balanced threshold: 52+10=62. Three elevated samples a
				// minute apart span over a minute.
				HeartRateSamples: samplesAt(9, time.Minute, 70, 72, 71),
			},
			preset: Balanced,
			want:   []int{9},
		},
		{
			name: "momentary spike does not credit",
			payload: whoop.DailyPayload{
				Date:             testDay,
				RestingHeartRate: 52,
				MaxHeartRate:     190,
				// Single elevated sample between calm ones: no one-minute run.
				HeartRateSamples: samplesAt(9, time.Minute, 55, 80, 55),
			},
			preset: Balanced,
			want:   []int{},
		},
		{
			name: "interrupted run does not accumulate",
			payload: whoop.DailyPayload{
				Date:             testDay,
				RestingHeartRate: 52,
				MaxHeartRate:     190,
				HeartRateSamples: samplesAt(9, 30*time.Second, 80, 55, 80, 55, 80),
			},
			preset: Balanced,
			want:   []int{},
		},
		{
			name: "unsorted samples bucket by hour regardless",
			payload: whoop.DailyPayload{
				Date:             testDay,
				RestingHeartRate: 52,
				MaxHeartRate:     190,
				HeartRateSamples: []whoop.HRSample{
					{Timestamp: testDay.Add(9*time.Hour + 2*time.Minute), BPM: 71},
					{Timestamp: testDay.Add(9 * time.Hour), BPM: 70},
					{Timestamp: testDay.Add(9*time.Hour + time.Minute), BPM: 72},
				},
			},
			preset: Balanced,
			want:   []int{9},
		},
		{
			name: "conservative threshold is stricter",
			payload: whoop.DailyPayload{
				Date:             testDay,
				RestingHeartRate: 52,
				MaxHeartRate:     190,
				// 62 bpm clears balanced (spike 10) but not conservative
				// (spike 12, threshold 64).
				HeartRateSamples: samplesAt(9, time.Minute, 63, 63, 63),
			},
			preset: Conservative,
			want:   []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := standHours(&tt.payload, tt.preset)
			if diff := cmp.Diff(tt.want, got.Hours()); diff != "" {
				t.Errorf("standHours() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStandHoursWorkoutOverlap(t *testing.T) {
	t.Parallel()

	payload := whoop.DailyPayload{
		Date:             testDay,
		RestingHeartRate: 52,
		MaxHeartRate:     190,
		Workouts: []whoop.Workout{
			// 17:20-18:40 touches hours 17 and 18.
			{Start: testDay.Add(17*time.Hour + 20*time.Minute), End: testDay.Add(18*time.Hour + 40*time.Minute)},
		},
	}

	got := standHours(&payload, Balanced)
	if diff := cmp.Diff([]int{17, 18}, got.Hours()); diff != "" {
		t.Errorf("standHours() mismatch (-want +got):\n%s", diff)
	}
}

func TestStandHoursAdjacencyPropagation(t *testing.T) {
	t.Parallel()

	// Hours 8 and 10 credited directly; 9 is inferred from its neighbors.
	payload := whoop.DailyPayload{
		Date:             testDay,
		RestingHeartRate: 52,
		MaxHeartRate:     190,
		HeartRateSamples: append(
			samplesAt(8, time.Minute, 70, 72, 71),
			samplesAt(10, time.Minute, 70, 72, 71)...,
		),
	}

	got := standHours(&payload, Balanced)
	if diff := cmp.Diff([]int{8, 9, 10}, got.Hours()); diff != "" {
		t.Errorf("standHours() mismatch (-want +got):\n%s", diff)
	}
}

func TestPropagateFixedPointIdempotent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start ring.HourSet
	}{
		{"alternating hours", ring.NewHourSet(6, 8, 10, 12)},
		{"isolated hours", ring.NewHourSet(3, 20)},
		{"empty", ring.NewHourSet()},
		{"all hours", func() ring.HourSet {
			s := ring.NewHourSet()
			for h := 0; h < 24; h++ {
				s = s.Add(h)
			}
			return s
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			once := propagate(tt.start)
			twice := propagate(once)
			if once != twice {
				t.Errorf("propagate not idempotent: once %v, twice %v", once.Hours(), twice.Hours())
			}
		})
	}
}

func TestPropagateCascades(t *testing.T) {
	t.Parallel()

	// 6 _ 8 _ 10: both gaps fill, producing a contiguous block.
	got := propagate(ring.NewHourSet(6, 8, 10))
	if diff := cmp.Diff([]int{6, 7, 8, 9, 10}, got.Hours()); diff != "" {
		t.Errorf("propagate() mismatch (-want +got):\n%s", diff)
	}
}
