// Package ring holds the Apple-ring style output model: daily aggregate
// totals and the discrete samples synthesized from them.
package ring

import "time"

// Metrics is one day of ring-style activity credit.
type Metrics struct {
	Date             time.Time `json:"date"`
	ActiveEnergyKcal float64   `json:"active_energy_kcal"`
	ExerciseMinutes  float64   `json:"exercise_minutes"`
	StandHours       HourSet   `json:"stand_hours"`
}

// HourSet is a set of clock hours 0-23, stored as a bitmask.
type HourSet uint32

func NewHourSet(hours ...int) HourSet {
	var s HourSet
	for _, h := range hours {
		s = s.Add(h)
	}
	return s
}

func (s HourSet) Add(hour int) HourSet {
	if hour < 0 || hour > 23 {
		return s
	}
	return s | 1<<uint(hour)
}

func (s HourSet) Contains(hour int) bool {
	if hour < 0 || hour > 23 {
		return false
	}
	return s&(1<<uint(hour)) != 0
}

func (s HourSet) Count() int {
	n := 0
	for h := 0; h < 24; h++ {
		if s.Contains(h) {
			n++
		}
	}
	return n
}

// Hours returns the credited hours in ascending order.
func (s HourSet) Hours() []int {
	hours := make([]int, 0, s.Count())
	for h := 0; h < 24; h++ {
		if s.Contains(h) {
			hours = append(hours, h)
		}
	}
	return hours
}
