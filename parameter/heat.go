package parameter

// Heat Zone Grid
const (
	// HeatCellSizePx is the edge length of one heat cell in surface pixels.
	// Grid dimensions are derived from the surface size every frame, never cached
	HeatCellSizePx = 16.0

	// HeatDrawThreshold is the minimum normalized cell value that gets a fill.
	// Cells at or below this are visual noise and stay transparent
	HeatDrawThreshold = 0.1

	// ReferenceGridSize fixes the coverage statistic's resolution.
	// Coverage uses its own grid so the number is stable across surface resizes
	ReferenceGridSize = 20
)

// Temporal Window
const (
	// DefaultWindowSeconds is the half-width of the symmetric sample window
	DefaultWindowSeconds = 10.0
)
