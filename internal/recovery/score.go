// Package recovery computes the daily recovery score: four baseline-relative
// signals combined into a bounded 0-100 value, with proportional weight
// redistribution when signals are missing.
package recovery

import (
	"math"

	"github.com/marek-a-m/vigor/internal/baseline"
	"github.com/marek-a-m/vigor/internal/health"
	"github.com/marek-a-m/vigor/internal/xerrors"
)

const (
	// Optimal sleep band, hours. Sleep need is treated as a population
	// constant, so sleep has no personal baseline.
	sleepBandLow  = 7.0
	sleepBandHigh = 9.0
	// Points lost per hour outside the sleep band (10 per 30 minutes).
	sleepFalloffPerHour = 20.0

	// Z-score slope for HRV and resting HR: one standard deviation moves the
	// sub-score 20 points from the 50-point midline.
	zSlope = 20.0

	// Points lost per degree Celsius of absolute deviation from the
	// temperature baseline mean, symmetric in both directions.
	tempFalloffPerDegree = 65.0
)

// Result is the outcome of scoring one day.
type Result struct {
	Score          float64
	Band           Band
	SubScores      map[Category]float64
	AppliedWeights map[Category]float64
	Missing        []Category
}

// Score combines the present sub-scores into a weighted overall score.
// A category is present only when it has a current reading and, for the
// baseline-relative categories, a usable baseline. It fails with an
// insufficient-data error when no category is computable; sleep alone is
// enough to score.
func Score(current health.Metrics, b baseline.Baseline) (Result, error) {
	subs := make(map[Category]float64)

	if v, ok := current.SleepHours.Value(); ok {
		subs[CategorySleep] = sleepScore(v)
	}
	if v, ok := current.HRV.Value(); ok && b.HRV != nil {
		// Higher HRV than baseline is better.
		subs[CategoryHRV] = clamp(50 + zSlope*zScore(v, b.HRV))
	}
	if v, ok := current.RestingHR.Value(); ok && b.RestingHR != nil {
		// Lower resting HR than baseline is better, inverted sign.
		subs[CategoryRestingHR] = clamp(50 - zSlope*zScore(v, b.RestingHR))
	}
	if v, ok := current.SkinTemp.Value(); ok && b.SkinTemp != nil {
		deviation := math.Abs(v - b.SkinTemp.Mean)
		subs[CategoryTemperature] = clamp(100 - tempFalloffPerDegree*deviation)
	}

	if len(subs) == 0 {
		return Result{}, xerrors.InsufficientData(
			xerrors.WithMessage("no metric has both a reading and a usable baseline"),
		)
	}

	weights := redistribute(subs)

	var score float64
	for category, sub := range subs {
		score += weights[category] * sub
	}
	score = clamp(score)

	return Result{
		Score:          score,
		Band:           BandFor(score),
		SubScores:      subs,
		AppliedWeights: weights,
		Missing:        missing(subs),
	}, nil
}

// sleepScore is 100 anywhere inside the optimal band and degrades linearly
// outside it, floored at zero.
func sleepScore(hours float64) float64 {
	switch {
	case hours < sleepBandLow:
		return clamp(100 - (sleepBandLow-hours)*sleepFalloffPerHour)
	case hours > sleepBandHigh:
		return clamp(100 - (hours-sleepBandHigh)*sleepFalloffPerHour)
	default:
		return 100
	}
}

// zScore normalizes a reading against its baseline. A zero standard
// deviation (identical history) yields zero deviation rather than an
// infinity that the clamp would have to saturate anyway.
func zScore(v float64, s *baseline.Stat) float64 {
	if s.StdDev == 0 {
		return 0
	}
	return (v - s.Mean) / s.StdDev
}

// redistribute renormalizes the nominal weights of the present categories so
// they sum to 1.0 while preserving their relative ratios.
func redistribute(subs map[Category]float64) map[Category]float64 {
	var total float64
	for category := range subs {
		total += nominalWeights[category]
	}

	weights := make(map[Category]float64, len(subs))
	for category := range subs {
		weights[category] = nominalWeights[category] / total
	}
	return weights
}

func missing(subs map[Category]float64) []Category {
	var out []Category
	for _, category := range Categories() {
		if _, ok := subs[category]; !ok {
			out = append(out, category)
		}
	}
	return out
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
