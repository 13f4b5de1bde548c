package heat

import (
	"math"

	"github.com/lixenwraith/pitchtrace/parameter"
	"github.com/lixenwraith/pitchtrace/track"
)

// Coverage returns the percentage of reference-grid cells touched by at
// least one sample. The reference resolution is fixed (20x20 = 400 cells)
// independent of the render surface, so the statistic survives resizes
func Coverage(samples []track.Sample) float64 {
	const n = parameter.ReferenceGridSize

	var occupied [n * n]bool
	count := 0
	for _, s := range samples {
		col := int(math.Floor(s.X / 100 * n))
		row := int(math.Floor(s.Y / 100 * n))
		if col < 0 || col >= n || row < 0 || row >= n {
			continue
		}
		idx := row*n + col
		if !occupied[idx] {
			occupied[idx] = true
			count++
		}
	}
	return float64(count) / float64(n*n) * 100
}
