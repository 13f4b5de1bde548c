package heat

import (
	"math"
	"testing"

	"github.com/lixenwraith/pitchtrace/track"
)

// TestAggregator_Conservation verifies sum(cells) == sum of in-bounds intensities
func TestAggregator_Conservation(t *testing.T) {
	samples := []track.Sample{
		{X: 10, Y: 10, Intensity: 0.5},
		{X: 10, Y: 10, Intensity: 0.25},
		{X: 90, Y: 50, Intensity: 1.0},
		{X: 150, Y: 50, Intensity: 3.0}, // out of bounds, dropped
		{X: 50, Y: -1, Intensity: 2.0},  // out of bounds, dropped
	}

	var a Aggregator
	g := a.Aggregate(samples, 10, 10)

	want := 0.5 + 0.25 + 1.0
	if got := g.Sum(); got != want {
		t.Errorf("conservation violated: sum=%v want %v", got, want)
	}
}

// TestAggregator_CellMapping verifies floor-based bin placement
func TestAggregator_CellMapping(t *testing.T) {
	samples := []track.Sample{
		{X: 0, Y: 0, Intensity: 1},     // cell (0,0)
		{X: 9.99, Y: 9.99, Intensity: 1}, // still cell (0,0) on a 10x10 grid
		{X: 10, Y: 0, Intensity: 1},    // cell (0,1)
		{X: 99.9, Y: 99.9, Intensity: 1}, // cell (9,9)
	}

	var a Aggregator
	g := a.Aggregate(samples, 10, 10)

	if v := g.At(0, 0); v != 2 {
		t.Errorf("cell (0,0): got %v want 2", v)
	}
	if v := g.At(0, 1); v != 1 {
		t.Errorf("cell (0,1): got %v want 1", v)
	}
	if v := g.At(9, 9); v != 1 {
		t.Errorf("cell (9,9): got %v want 1", v)
	}
}

// TestAggregator_ExactBoundaryDropped verifies x=100 maps past the last
// column and is dropped, not clamped into a wrong cell
func TestAggregator_ExactBoundaryDropped(t *testing.T) {
	var a Aggregator
	g := a.Aggregate([]track.Sample{{X: 100, Y: 50, Intensity: 1}}, 10, 10)

	if g.Sum() != 0 {
		t.Error("sample at x=100 should be dropped by grid indexing")
	}
}

// TestAggregator_MaxValue
func TestAggregator_MaxValue(t *testing.T) {
	var a Aggregator

	g := a.Aggregate(nil, 10, 10)
	if g.Max != 0 {
		t.Errorf("empty input: Max should be 0, got %v", g.Max)
	}

	g = a.Aggregate([]track.Sample{
		{X: 5, Y: 5, Intensity: 0.5},
		{X: 5, Y: 5, Intensity: 0.5},
		{X: 50, Y: 50, Intensity: 0.7},
	}, 10, 10)
	if g.Max != 1.0 {
		t.Errorf("Max: got %v want 1.0", g.Max)
	}
}

// TestAggregator_Idempotence verifies two identical calls produce
// bit-identical grids
func TestAggregator_Idempotence(t *testing.T) {
	samples := []track.Sample{
		{X: 13.37, Y: 42.1, Intensity: 0.333},
		{X: 77.7, Y: 8.08, Intensity: 0.125},
		{X: 50.5, Y: 50.5, Confidence: 0.6},
	}

	var a, b Aggregator
	g1 := a.Aggregate(samples, 16, 12)
	g2 := b.Aggregate(samples, 16, 12)

	if g1.Max != g2.Max {
		t.Errorf("Max differs: %v vs %v", g1.Max, g2.Max)
	}
	for i := range g1.Cells {
		if math.Float64bits(g1.Cells[i]) != math.Float64bits(g2.Cells[i]) {
			t.Fatalf("cell %d differs bitwise: %v vs %v", i, g1.Cells[i], g2.Cells[i])
		}
	}
}

// TestAggregator_ScratchReuse verifies a second call fully resets the grid
func TestAggregator_ScratchReuse(t *testing.T) {
	var a Aggregator
	a.Aggregate([]track.Sample{{X: 5, Y: 5, Intensity: 9}}, 10, 10)

	g := a.Aggregate([]track.Sample{{X: 95, Y: 95, Intensity: 1}}, 10, 10)
	if g.Sum() != 1 {
		t.Errorf("stale scratch state: sum=%v want 1", g.Sum())
	}
	if g.Max != 1 {
		t.Errorf("stale Max: %v want 1", g.Max)
	}
}

// TestGrid_Merge verifies partitioned aggregation merges to the same result
func TestGrid_Merge(t *testing.T) {
	part1 := []track.Sample{{X: 5, Y: 5, Intensity: 1}, {X: 50, Y: 50, Intensity: 2}}
	part2 := []track.Sample{{X: 5, Y: 5, Intensity: 3}}

	var a, b, whole Aggregator
	g1 := a.Aggregate(part1, 10, 10)
	g2 := b.Aggregate(part2, 10, 10)
	if err := g1.Merge(g2); err != nil {
		t.Fatalf("merge failed: %v", err)
	}

	want := whole.Aggregate(append(append([]track.Sample{}, part1...), part2...), 10, 10)
	for i := range want.Cells {
		if g1.Cells[i] != want.Cells[i] {
			t.Fatalf("cell %d: merged %v, whole %v", i, g1.Cells[i], want.Cells[i])
		}
	}
	if g1.Max != want.Max {
		t.Errorf("merged Max %v, whole Max %v", g1.Max, want.Max)
	}
}

// TestGrid_MergeDimensionMismatch
func TestGrid_MergeDimensionMismatch(t *testing.T) {
	var a, b Aggregator
	g1 := a.Aggregate(nil, 10, 10)
	g2 := b.Aggregate(nil, 5, 5)

	if err := g1.Merge(g2); err == nil {
		t.Error("expected dimension mismatch error")
	}
}
