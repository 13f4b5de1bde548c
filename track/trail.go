package track

// BuildTrail returns the entity's most recent samples as a time-ordered
// polyline: trailing window, sorted ascending, last trailLength kept.
// A result of length <= 1 has no segments to stroke
func BuildTrail(e *Entity, currentTime, windowSeconds float64, trailLength int) []Sample {
	if e == nil || trailLength < 1 {
		return nil
	}

	recent := FilterWindow(e.Samples, currentTime, windowSeconds, WindowTrailing)
	if len(recent) == 0 {
		return nil
	}

	SortByTime(recent)
	if len(recent) > trailLength {
		recent = recent[len(recent)-trailLength:]
	}
	return recent
}
