package track

import "sort"

// Sample is one observed on-field position record.
// X and Y are percentages of field width/height (0-100), not pixels.
// T is seconds from match start
type Sample struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	T          float64 `json:"t"`
	Confidence float64 `json:"confidence"`
	Intensity  float64 `json:"intensity,omitempty"`
	Action     string  `json:"action,omitempty"`
}

// Weight returns the sample's effective intensity.
// Intensity defaults to detection confidence when the upstream
// pipeline didn't set it
func (s Sample) Weight() float64 {
	if s.Intensity > 0 {
		return s.Intensity
	}
	return s.Confidence
}

// Entity is one tracked participant with its observation history.
// Samples carry no ordering guarantee; consumers sort as needed
type Entity struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Number  int      `json:"number,omitempty"`
	Role    string   `json:"role"`
	Samples []Sample `json:"samples"`
}

// SortByTime orders samples ascending by timestamp in place.
// Stable so equal timestamps keep their input order
func SortByTime(samples []Sample) {
	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].T < samples[j].T
	})
}
