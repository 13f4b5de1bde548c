package track

import "math"

// NearestByPosition returns the index of the sample closest to (x, y)
// by Euclidean distance. Ties go to the first occurrence in input order.
// ok is false on empty input; callers own the fallback, a sample is
// never fabricated here
func NearestByPosition(samples []Sample, x, y float64) (int, bool) {
	if len(samples) == 0 {
		return 0, false
	}

	best := 0
	bestDist := math.Inf(1)
	for i, s := range samples {
		// Squared distance preserves ordering, skips the sqrt
		dx := s.X - x
		dy := s.Y - y
		d := dx*dx + dy*dy
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best, true
}

// NearestByTime returns the index of the sample closest to t.
// Same tie-break and empty-input contract as NearestByPosition.
// O(n) linear scan; sample volumes stay in the low thousands per entity,
// so no index structure is warranted
func NearestByTime(samples []Sample, t float64) (int, bool) {
	if len(samples) == 0 {
		return 0, false
	}

	best := 0
	bestDist := math.Inf(1)
	for i, s := range samples {
		d := math.Abs(s.T - t)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best, true
}
