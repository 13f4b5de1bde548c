package formation

// Scheme names a canonical slot layout, e.g. "4-4-2".
// The set is closed; unknown schemes fall back to SchemeDefault
type Scheme string

const (
	Scheme442  Scheme = "4-4-2"
	Scheme433  Scheme = "4-3-3"
	Scheme352  Scheme = "3-5-2"
	Scheme4231 Scheme = "4-2-3-1"

	SchemeDefault = Scheme442
)

// Slot is one canonical position in a scheme.
// X and Y are field percentages, goal-to-goal along X
type Slot struct {
	Role string
	X    float64
	Y    float64
}

// layouts holds the fixed ordered slot list per scheme.
// Goalkeeper is always slot 0; defenders, midfielders, forwards follow
// back to front
var layouts = map[Scheme][]Slot{
	Scheme442: {
		{Role: "GK", X: 6, Y: 50},
		{Role: "LB", X: 22, Y: 18},
		{Role: "CB", X: 20, Y: 38},
		{Role: "CB", X: 20, Y: 62},
		{Role: "RB", X: 22, Y: 82},
		{Role: "LM", X: 48, Y: 18},
		{Role: "CM", X: 45, Y: 38},
		{Role: "CM", X: 45, Y: 62},
		{Role: "RM", X: 48, Y: 82},
		{Role: "ST", X: 72, Y: 40},
		{Role: "ST", X: 72, Y: 60},
	},
	Scheme433: {
		{Role: "GK", X: 6, Y: 50},
		{Role: "LB", X: 22, Y: 18},
		{Role: "CB", X: 20, Y: 38},
		{Role: "CB", X: 20, Y: 62},
		{Role: "RB", X: 22, Y: 82},
		{Role: "CM", X: 45, Y: 30},
		{Role: "CM", X: 42, Y: 50},
		{Role: "CM", X: 45, Y: 70},
		{Role: "LW", X: 70, Y: 20},
		{Role: "ST", X: 74, Y: 50},
		{Role: "RW", X: 70, Y: 80},
	},
	Scheme352: {
		{Role: "GK", X: 6, Y: 50},
		{Role: "CB", X: 20, Y: 30},
		{Role: "CB", X: 18, Y: 50},
		{Role: "CB", X: 20, Y: 70},
		{Role: "LWB", X: 40, Y: 12},
		{Role: "CM", X: 45, Y: 35},
		{Role: "CM", X: 42, Y: 50},
		{Role: "CM", X: 45, Y: 65},
		{Role: "RWB", X: 40, Y: 88},
		{Role: "ST", X: 72, Y: 40},
		{Role: "ST", X: 72, Y: 60},
	},
	Scheme4231: {
		{Role: "GK", X: 6, Y: 50},
		{Role: "LB", X: 22, Y: 18},
		{Role: "CB", X: 20, Y: 38},
		{Role: "CB", X: 20, Y: 62},
		{Role: "RB", X: 22, Y: 82},
		{Role: "CDM", X: 38, Y: 40},
		{Role: "CDM", X: 38, Y: 60},
		{Role: "LAM", X: 58, Y: 22},
		{Role: "CAM", X: 60, Y: 50},
		{Role: "RAM", X: 58, Y: 78},
		{Role: "ST", X: 76, Y: 50},
	},
}

// schemeOrder fixes the cycling order for UI toggles
var schemeOrder = []Scheme{Scheme442, Scheme433, Scheme352, Scheme4231}

// Slots returns the scheme's ordered slot list.
// Unknown schemes fall back to the default layout, never a hard failure
func (s Scheme) Slots() []Slot {
	if slots, ok := layouts[s]; ok {
		return slots
	}
	return layouts[SchemeDefault]
}

// Valid reports whether s names a known layout
func (s Scheme) Valid() bool {
	_, ok := layouts[s]
	return ok
}

// Next returns the following scheme in cycling order, wrapping around.
// Unknown schemes restart at the first
func (s Scheme) Next() Scheme {
	for i, sc := range schemeOrder {
		if sc == s {
			return schemeOrder[(i+1)%len(schemeOrder)]
		}
	}
	return schemeOrder[0]
}
