package render

import (
	"testing"

	"github.com/lixenwraith/pitchtrace/track"
)

// recordSurface captures draw commands for assertions
type recordSurface struct {
	w, h    float64
	clears  int
	fills   int
	strokes int
	lines   int
	circles int
	texts   []string
}

func (r *recordSurface) Size() (float64, float64)            { return r.w, r.h }
func (r *recordSurface) Clear()                              { r.clears++ }
func (r *recordSurface) SetFill(RGB, float64)                {}
func (r *recordSurface) SetStroke(RGB, float64, float64)     {}
func (r *recordSurface) FillRect(x, y, w, h float64)         { r.fills++ }
func (r *recordSurface) StrokeRect(x, y, w, h float64)       { r.strokes++ }
func (r *recordSurface) Line(x1, y1, x2, y2 float64)         { r.lines++ }
func (r *recordSurface) FillCircle(cx, cy, rad float64)      { r.circles++ }
func (r *recordSurface) StrokeCircle(cx, cy, rad float64)    {}
func (r *recordSurface) Text(s string, x, y float64)         { r.texts = append(r.texts, s) }

func testEntities() []track.Entity {
	return []track.Entity{
		{
			ID: "p1", Name: "One", Number: 7, Role: "LW",
			Samples: []track.Sample{
				{X: 20, Y: 30, T: 25, Confidence: 0.9},
				{X: 25, Y: 35, T: 28, Confidence: 0.8},
				{X: 30, Y: 40, T: 31, Confidence: 0.7},
			},
		},
		{
			ID: "p2", Name: "Two", Number: 9, Role: "ST",
			Samples: []track.Sample{
				{X: 70, Y: 50, T: 29, Confidence: 1.0},
			},
		},
	}
}

// TestDriver_FrameStats verifies the statistics record on a normal frame
func TestDriver_FrameStats(t *testing.T) {
	surf := &recordSurface{w: 800, h: 520}
	d := NewDriver(surf)

	cfg := DefaultConfig()
	stats := d.Frame(testEntities(), 30, cfg)

	if stats.TotalSamples != 4 {
		t.Errorf("TotalSamples: got %d want 4", stats.TotalSamples)
	}
	// Window [20,40] catches all four samples
	if stats.WindowSamples != 4 {
		t.Errorf("WindowSamples: got %d want 4", stats.WindowSamples)
	}
	if stats.MaxIntensity != 1.0 {
		t.Errorf("MaxIntensity: got %v want 1.0", stats.MaxIntensity)
	}
	want := (0.9 + 0.8 + 0.7 + 1.0) / 4
	if diff := stats.AverageIntensity - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("AverageIntensity: got %v want %v", stats.AverageIntensity, want)
	}
	if stats.CoveragePercent <= 0 {
		t.Error("expected non-zero coverage")
	}
	if surf.clears != 1 {
		t.Errorf("expected exactly one clear, got %d", surf.clears)
	}
}

// TestDriver_EmptyInput verifies graceful degradation: zero stats, field
// geometry only, no markers or trails
func TestDriver_EmptyInput(t *testing.T) {
	surf := &recordSurface{w: 800, h: 520}
	d := NewDriver(surf)

	stats := d.Frame(nil, 30, DefaultConfig())

	if stats != (Stats{}) {
		t.Errorf("expected zero stats, got %+v", stats)
	}
	if surf.circles != 0 {
		t.Errorf("no markers expected, got %d circles", surf.circles)
	}
	if len(surf.texts) != 0 {
		t.Errorf("no labels expected, got %v", surf.texts)
	}
}

// TestDriver_SingleModeDefaultsToFirst verifies missing selection handling
func TestDriver_SingleModeDefaultsToFirst(t *testing.T) {
	surf := &recordSurface{w: 800, h: 520}
	d := NewDriver(surf)

	cfg := DefaultConfig()
	cfg.Mode = ModeSingle
	cfg.SelectedID = "nobody"

	stats := d.Frame(testEntities(), 30, cfg)
	if stats.TotalSamples != 3 {
		t.Errorf("expected first entity's 3 samples in scope, got %d", stats.TotalSamples)
	}
}

// TestDriver_SingleModeSelection
func TestDriver_SingleModeSelection(t *testing.T) {
	surf := &recordSurface{w: 800, h: 520}
	d := NewDriver(surf)

	cfg := DefaultConfig()
	cfg.Mode = ModeSingle
	cfg.SelectedID = "p2"

	stats := d.Frame(testEntities(), 30, cfg)
	if stats.TotalSamples != 1 {
		t.Errorf("expected selected entity's 1 sample, got %d", stats.TotalSamples)
	}
}

// TestDriver_TogglesSuppressDrawing verifies heat and trail switches
func TestDriver_TogglesSuppressDrawing(t *testing.T) {
	entities := testEntities()

	on := &recordSurface{w: 800, h: 520}
	cfgOn := DefaultConfig()
	NewDriver(on).Frame(entities, 30, cfgOn)

	off := &recordSurface{w: 800, h: 520}
	cfgOff := cfgOn
	cfgOff.HeatZones = false
	cfgOff.Trails = false
	NewDriver(off).Frame(entities, 30, cfgOff)

	// Heat cells draw as rect fills beyond the single field background fill
	if on.fills <= off.fills {
		t.Errorf("heat off should reduce rect fills: on=%d off=%d", on.fills, off.fills)
	}
	// p1's trailing window at t=30 holds two samples = one segment; the
	// center line draws either way
	if on.lines != off.lines+1 {
		t.Errorf("trail lines: on=%d off=%d", on.lines, off.lines)
	}
}

// TestDriver_ClickSeeks verifies the click-to-timestamp callback path
func TestDriver_ClickSeeks(t *testing.T) {
	surf := &recordSurface{w: 800, h: 520}
	d := NewDriver(surf)

	var seeked []float64
	d.OnSeek = func(ts float64) { seeked = append(seeked, ts) }

	entities := testEntities()
	f := surfaceField(surf)
	// Click right on p2's only sample
	px, py := f.toPixel(70, 50)

	ts, ok := d.Click(entities, DefaultConfig(), px, py)
	if !ok {
		t.Fatal("expected a seek target")
	}
	if ts != 29 {
		t.Errorf("seek timestamp: got %v want 29", ts)
	}
	if len(seeked) != 1 || seeked[0] != 29 {
		t.Errorf("OnSeek not invoked correctly: %v", seeked)
	}
}

// TestDriver_ClickEmpty verifies no callback without samples
func TestDriver_ClickEmpty(t *testing.T) {
	d := NewDriver(&recordSurface{w: 800, h: 520})

	fired := false
	d.OnSeek = func(float64) { fired = true }

	if _, ok := d.Click(nil, DefaultConfig(), 10, 10); ok {
		t.Error("expected no seek target on empty input")
	}
	if fired {
		t.Error("OnSeek fired for empty input")
	}
}

// TestDriver_SamplelessEntityUsesFormationSlot verifies the synthetic
// fallback marker for entities with no observations
func TestDriver_SamplelessEntityUsesFormationSlot(t *testing.T) {
	surf := &recordSurface{w: 800, h: 520}
	d := NewDriver(surf)

	entities := []track.Entity{{ID: "ghost", Number: 5, Role: "CB"}}
	cfg := DefaultConfig()
	cfg.HeatZones = false
	cfg.Trails = false

	d.Frame(entities, 30, cfg)

	if surf.circles != 1 {
		t.Errorf("expected one fallback marker, got %d", surf.circles)
	}
	if len(surf.texts) != 1 || surf.texts[0] != "5" {
		t.Errorf("expected jersey label \"5\", got %v", surf.texts)
	}
}
