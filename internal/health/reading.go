package health

// Reading is an optional metric value. Absence is a first-class state, not
// zero: a missing reading must never participate in a mean, a z-score, or a
// weighted sum.
type Reading struct {
	value   float64
	present bool
}

func Some(v float64) Reading { return Reading{value: v, present: true} }

func None() Reading { return Reading{} }

func (r Reading) Present() bool { return r.present }

// Value returns the reading and whether it is present. The value is only
// meaningful when ok is true.
func (r Reading) Value() (v float64, ok bool) {
	return r.value, r.present
}
