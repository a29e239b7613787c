package ring

import go_json "github.com/goccy/go-json"

// HourSet serializes as a sorted array of hour indices so stored and rendered
// forms stay readable; the bitmask is an in-memory representation only.
func (s HourSet) MarshalJSON() ([]byte, error) {
	return go_json.Marshal(s.Hours())
}

func (s *HourSet) UnmarshalJSON(data []byte) error {
	var hours []int
	if err := go_json.Unmarshal(data, &hours); err != nil {
		return err
	}
	*s = NewHourSet(hours...)
	return nil
}
