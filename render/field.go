package render

import "github.com/lixenwraith/pitchtrace/parameter"

// fieldRect is the playable area in surface pixels, inset by the margin.
// All field-coordinate conversions go through it
type fieldRect struct {
	x, y, w, h float64
}

func surfaceField(s Surface) fieldRect {
	w, h := s.Size()
	mx := w * parameter.FieldMarginFrac
	my := h * parameter.FieldMarginFrac
	return fieldRect{x: mx, y: my, w: w - 2*mx, h: h - 2*my}
}

// toPixel converts field percentages (0-100) to surface pixels
func (f fieldRect) toPixel(fx, fy float64) (float64, float64) {
	return f.x + fx/100*f.w, f.y + fy/100*f.h
}

// toField converts surface pixels back to field percentages.
// Degenerate (zero-size) fields map everything to the origin
func (f fieldRect) toField(px, py float64) (float64, float64) {
	if f.w <= 0 || f.h <= 0 {
		return 0, 0
	}
	return (px - f.x) / f.w * 100, (py - f.y) / f.h * 100
}

// drawField paints the static pitch geometry: border, center line and
// circle, penalty boxes, goal boxes, goals. Pure geometric constants
// scaled by the surface dimensions
func drawField(s Surface, f fieldRect) {
	s.SetFill(RgbPitchGreen, 1)
	s.FillRect(f.x, f.y, f.w, f.h)

	s.SetStroke(RgbPitchLine, 1, 1)
	s.StrokeRect(f.x, f.y, f.w, f.h)

	// Center line and circle
	cx := f.x + f.w/2
	s.Line(cx, f.y, cx, f.y+f.h)
	s.StrokeCircle(cx, f.y+f.h/2, f.h*parameter.CenterCircleRadiusFrac)

	// Penalty and goal boxes, both ends
	pbW := f.w * parameter.PenaltyBoxWidthFrac
	pbH := f.h * parameter.PenaltyBoxHeightFrac
	gbW := f.w * parameter.GoalBoxWidthFrac
	gbH := f.h * parameter.GoalBoxHeightFrac
	midY := f.y + f.h/2

	s.StrokeRect(f.x, midY-pbH/2, pbW, pbH)
	s.StrokeRect(f.x+f.w-pbW, midY-pbH/2, pbW, pbH)
	s.StrokeRect(f.x, midY-gbH/2, gbW, gbH)
	s.StrokeRect(f.x+f.w-gbW, midY-gbH/2, gbW, gbH)

	// Goal mouths outside the touchlines
	gd := f.w * parameter.GoalDepthFrac
	gh := f.h * parameter.GoalHeightFrac
	s.StrokeRect(f.x-gd, midY-gh/2, gd, gh)
	s.StrokeRect(f.x+f.w, midY-gh/2, gd, gh)
}
