package render

import "math"

// Heat ramp keyframes: five contiguous segments of width 0.2.
// Adjacent segments share their endpoint color, so the ramp is continuous
// at every 0.2 boundary by construction
var rampStops = [6]RGB{
	{0, 0, 255},   // blue
	{0, 255, 255}, // cyan
	{0, 255, 0},   // green
	{255, 255, 0}, // yellow
	{255, 165, 0}, // orange
	{255, 0, 0},   // red
}

// Ramp maps a normalized intensity in [0,1] to a heat color.
// Total on the closed interval; out-of-range inputs clamp to the ends.
// Within segment k the blend factor is (v - 0.2k) * 5
func Ramp(v float64) RGB {
	if math.IsNaN(v) {
		return rampStops[0]
	}
	if v <= 0 {
		return rampStops[0]
	}
	if v >= 1 {
		return rampStops[5]
	}

	seg := int(v * 5)
	if seg > 4 {
		seg = 4
	}
	factor := v*5 - float64(seg)
	return Lerp(rampStops[seg], rampStops[seg+1], factor)
}
