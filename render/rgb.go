package render

// RGB is a 24-bit color. Alpha is carried separately by surface state
type RGB struct {
	R, G, B uint8
}

// Predefined colors used by the driver
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}

	// Pitch palette
	RgbPitchGreen = RGB{34, 85, 34}
	RgbPitchLine  = RGB{200, 220, 200}
)

// clamp converts float to uint8 with saturation
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Blend alpha-blends src over c.
// Early-outs at the extremes to save math
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}

	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Lerp linearly interpolates each channel, factor in [0,1].
// Rounds to nearest and saturates so channels never leave [0,255]
func Lerp(a, b RGB, factor float64) RGB {
	return RGB{
		R: clamp(float64(a.R) + (float64(b.R)-float64(a.R))*factor + 0.5),
		G: clamp(float64(a.G) + (float64(b.G)-float64(a.G))*factor + 0.5),
		B: clamp(float64(a.B) + (float64(b.B)-float64(a.B))*factor + 0.5),
	}
}
