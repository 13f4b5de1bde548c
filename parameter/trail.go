package parameter

// Trail Rendering
const (
	// DefaultTrailLength is the maximum number of samples in a trail polyline
	DefaultTrailLength = 8

	// TrailAlpha is the fixed stroke opacity for trail segments
	TrailAlpha = 0.6

	// TrailStrokeWidth is the polyline stroke width in surface pixels
	TrailStrokeWidth = 2.0
)

// Entity Markers
const (
	// MarkerRadiusMin/Max bound the intensity-scaled marker circle (pixels)
	MarkerRadiusMin = 6.0
	MarkerRadiusMax = 12.0

	// MarkerOutlineWidth is the white ring around each marker
	MarkerOutlineWidth = 1.5
)
