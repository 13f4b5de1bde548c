package match

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/google/uuid"

	"github.com/lixenwraith/pitchtrace/track"
)

// Match is the on-disk data format: a roster of entities with their
// position samples, as produced by the upstream tracking pipeline
type Match struct {
	Title    string         `json:"title,omitempty"`
	Entities []track.Entity `json:"entities"`
}

// Load reads a match data JSON file
func Load(path string) (*Match, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read match data: %w", err)
	}
	var m Match
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse match data: %w", err)
	}
	return &m, nil
}

// TimeBounds returns the earliest and latest sample timestamps.
// ok is false when the match has no samples at all
func (m *Match) TimeBounds() (lo, hi float64, ok bool) {
	lo = math.Inf(1)
	hi = math.Inf(-1)
	for _, e := range m.Entities {
		for _, s := range e.Samples {
			if s.T < lo {
				lo = s.T
			}
			if s.T > hi {
				hi = s.T
			}
		}
	}
	if lo > hi {
		return 0, 0, false
	}
	return lo, hi, true
}

// demoRoles mirrors a 4-3-3 lineup for the synthetic match
var demoRoles = []string{"GK", "LB", "CB", "CB", "RB", "CM", "CM", "CM", "LW", "ST", "RW"}

// Demo synthesizes a roster of jittered runs for trying the viewer
// without real tracking data. Fixed seed so repeated runs look the same
func Demo(durationSec float64) *Match {
	rng := rand.New(rand.NewSource(42))

	m := &Match{Title: "Demo Match"}
	for i, role := range demoRoles {
		e := track.Entity{
			ID:     uuid.NewString(),
			Name:   fmt.Sprintf("Player %d", i+1),
			Number: i + 1,
			Role:   role,
		}

		// Anchor each player in a band of the field, then random-walk
		// around it at 2 Hz
		baseX := 10 + float64(i)*7
		baseY := 20 + rng.Float64()*60
		x, y := baseX, baseY
		for t := 0.0; t <= durationSec; t += 0.5 {
			x += rng.NormFloat64() * 1.2
			y += rng.NormFloat64() * 1.2
			// Drift back toward the anchor so runs stay on the field
			x += (baseX - x) * 0.05
			y += (baseY - y) * 0.05
			x = clampField(x)
			y = clampField(y)

			e.Samples = append(e.Samples, track.Sample{
				X:          x,
				Y:          y,
				T:          t,
				Confidence: 0.5 + rng.Float64()*0.5,
			})
		}
		m.Entities = append(m.Entities, e)
	}
	return m
}

func clampField(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 99.9 {
		return 99.9
	}
	return v
}
