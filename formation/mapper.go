package formation

import (
	"math"

	"github.com/lixenwraith/pitchtrace/parameter"
	"github.com/lixenwraith/pitchtrace/track"
)

// Placement binds one roster entity to one layout slot.
// Synthetic marks presentation-only positions that carry no measured data
type Placement struct {
	Entity    *track.Entity
	Slot      Slot
	Synthetic bool
}

// Map assigns roster entities to scheme slots positionally: the i-th
// entity (in supplied order) takes the i-th slot, independent of the
// entity's own role label. A short roster leaves trailing slots
// unassigned; extra entities are dropped
func Map(scheme Scheme, roster []track.Entity) []Placement {
	slots := scheme.Slots()

	n := len(roster)
	if n > len(slots) {
		n = len(slots)
	}

	out := make([]Placement, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Placement{
			Entity: &roster[i],
			Slot:   slots[i],
		})
	}
	return out
}

// Synthetic builds a presentation-only layout when no per-timestamp
// formation data exists: base slots perturbed by a bounded sinusoid of
// (t, index) so the display doesn't look frozen. Deterministic for a
// fixed input; every placement is tagged Synthetic
func Synthetic(scheme Scheme, roster []track.Entity, t float64) []Placement {
	placements := Map(scheme, roster)

	omega := 2 * math.Pi * parameter.FormationJitterHz
	for i := range placements {
		phase := float64(i) * parameter.FormationJitterPhase
		dx := parameter.FormationJitterAmp * math.Sin(omega*t+phase)
		dy := parameter.FormationJitterAmp * math.Cos(omega*t*0.8+phase)

		placements[i].Slot.X = clampPercent(placements[i].Slot.X + dx)
		placements[i].Slot.Y = clampPercent(placements[i].Slot.Y + dy)
		placements[i].Synthetic = true
	}
	return placements
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
