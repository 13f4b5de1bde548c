package heat

import (
	"fmt"
	"math"

	"github.com/lixenwraith/pitchtrace/track"
)

// Grid is a dense 2D intensity field backed by a 1D slice.
// Index = row*Width + col
type Grid struct {
	Width  int
	Height int
	Cells  []float64
	Max    float64
}

// At returns the accumulated intensity at (row, col), 0 if out of bounds
func (g *Grid) At(row, col int) float64 {
	if row < 0 || row >= g.Height || col < 0 || col >= g.Width {
		return 0
	}
	return g.Cells[row*g.Width+col]
}

// Sum returns the total accumulated intensity over all cells
func (g *Grid) Sum() float64 {
	var total float64
	for _, v := range g.Cells {
		total += v
	}
	return total
}

// Merge adds src into g cell-wise and recomputes Max.
// Aggregation is an associative reduction, so partial grids built from
// disjoint sample partitions merge with plain addition
func (g *Grid) Merge(src *Grid) error {
	if src.Width != g.Width || src.Height != g.Height {
		return fmt.Errorf("grid dimensions mismatch: %dx%d vs %dx%d",
			g.Width, g.Height, src.Width, src.Height)
	}
	g.Max = 0
	for i, v := range src.Cells {
		g.Cells[i] += v
		if g.Cells[i] > g.Max {
			g.Max = g.Cells[i]
		}
	}
	return nil
}

// Aggregator bins samples into an intensity grid.
// It owns a reusable scratch grid to avoid per-frame allocation; a single
// Aggregator must not be shared across concurrent draws
type Aggregator struct {
	grid Grid
}

// Aggregate bins the samples into a gridW x gridH intensity field.
// Cell mapping: col = floor(x/100*gridW), row = floor(y/100*gridH).
// Out-of-bounds samples are dropped silently, never clamped into a wrong
// cell. The returned grid is valid until the next Aggregate call
func (a *Aggregator) Aggregate(samples []track.Sample, gridW, gridH int) *Grid {
	a.resize(gridW, gridH)
	g := &a.grid

	for _, s := range samples {
		col := int(math.Floor(s.X / 100 * float64(gridW)))
		row := int(math.Floor(s.Y / 100 * float64(gridH)))
		if col < 0 || col >= gridW || row < 0 || row >= gridH {
			continue
		}
		idx := row*gridW + col
		g.Cells[idx] += s.Weight()
		if g.Cells[idx] > g.Max {
			g.Max = g.Cells[idx]
		}
	}
	return g
}

// resize adjusts scratch dimensions and zeroes cells.
// Reallocates only if capacity is insufficient
func (a *Aggregator) resize(gridW, gridH int) {
	size := gridW * gridH
	if cap(a.grid.Cells) < size {
		a.grid.Cells = make([]float64, size)
	} else {
		a.grid.Cells = a.grid.Cells[:size]
		for i := range a.grid.Cells {
			a.grid.Cells[i] = 0
		}
	}
	a.grid.Width = gridW
	a.grid.Height = gridH
	a.grid.Max = 0
}
