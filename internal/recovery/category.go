package recovery

// Category is one of the four signals feeding the overall score.
type Category string

const (
	CategorySleep       Category = "sleep"
	CategoryHRV         Category = "hrv"
	CategoryRestingHR   Category = "resting_hr"
	CategoryTemperature Category = "temperature"
)

// Categories lists all categories in their canonical order.
func Categories() []Category {
	return []Category{CategorySleep, CategoryHRV, CategoryRestingHR, CategoryTemperature}
}

// nominalWeights are the weights applied when every category is present.
// When a category is missing its weight is redistributed proportionally
// among the rest.
var nominalWeights = map[Category]float64{
	CategorySleep:       0.30,
	CategoryHRV:         0.30,
	CategoryRestingHR:   0.25,
	CategoryTemperature: 0.15,
}

// Band is a coarse presentation bucket for the overall score, following the
// red/yellow/green convention of the source platform.
type Band string

const (
	BandRed    Band = "red"
	BandYellow Band = "yellow"
	BandGreen  Band = "green"
)

func BandFor(score float64) Band {
	switch {
	case score < 34:
		return BandRed
	case score < 67:
		return BandYellow
	default:
		return BandGreen
	}
}
