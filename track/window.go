package track

// WindowMode selects how a time window extends around the query time
type WindowMode uint8

const (
	// WindowSymmetric keeps samples in [t-w, t+w], both ends inclusive.
	// Used for heat zones where context on both sides of playback helps
	WindowSymmetric WindowMode = iota

	// WindowTrailing keeps samples in [t-w, t], no look-ahead.
	// Used for trails where future positions must not be shown
	WindowTrailing
)

// FilterWindow returns the samples whose timestamps fall inside the window.
// Input order is preserved; no sorting happens here
func FilterWindow(samples []Sample, currentTime, windowSeconds float64, mode WindowMode) []Sample {
	lo := currentTime - windowSeconds
	hi := currentTime + windowSeconds
	if mode == WindowTrailing {
		hi = currentTime
	}

	out := make([]Sample, 0, len(samples))
	for _, s := range samples {
		if s.T >= lo && s.T <= hi {
			out = append(out, s)
		}
	}
	return out
}
