package render

// Surface is the abstract draw target the host supplies.
// Coordinates are surface pixels with the origin at the top-left.
// Fill and stroke state is sticky until the next Set call, matching how
// immediate-mode canvases behave
type Surface interface {
	// Size returns the current pixel dimensions. Queried every frame;
	// the driver never caches them across resizes
	Size() (width, height float64)

	Clear()

	SetFill(c RGB, alpha float64)
	SetStroke(c RGB, alpha float64, width float64)

	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)
	Line(x1, y1, x2, y2 float64)
	FillCircle(cx, cy, r float64)
	StrokeCircle(cx, cy, r float64)

	// Text draws s with its anchor centered on (x, y)
	Text(s string, x, y float64)
}
