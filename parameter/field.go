package parameter

// Field Geometry
// All values are fractions of field width/height; the render driver scales
// them by the surface dimensions each frame
const (
	// FieldMarginFrac insets the playable area from the surface edge
	FieldMarginFrac = 0.02

	// CenterCircleRadiusFrac is relative to field height
	CenterCircleRadiusFrac = 0.15

	// Penalty box, relative to field dimensions
	PenaltyBoxWidthFrac  = 0.16
	PenaltyBoxHeightFrac = 0.44

	// Goal box (six-yard box)
	GoalBoxWidthFrac  = 0.06
	GoalBoxHeightFrac = 0.20

	// Goal mouth drawn outside the touchline
	GoalDepthFrac  = 0.015
	GoalHeightFrac = 0.10
)

// Formation Layout
const (
	// FormationJitterAmp is the synthetic layout's maximum displacement in
	// field percent. Large enough to read as motion, small enough to keep shape
	FormationJitterAmp = 1.5

	// FormationJitterHz is the sinusoid frequency in cycles per second
	FormationJitterHz = 0.4

	// FormationJitterPhase offsets each roster index so entities don't sway in unison
	FormationJitterPhase = 0.7
)
