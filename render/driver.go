package render

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/lixenwraith/pitchtrace/formation"
	"github.com/lixenwraith/pitchtrace/heat"
	"github.com/lixenwraith/pitchtrace/parameter"
	"github.com/lixenwraith/pitchtrace/track"
)

// Stats summarizes one rendered frame
type Stats struct {
	TotalSamples     int
	WindowSamples    int
	AverageIntensity float64
	MaxIntensity     float64
	CoveragePercent  float64
}

// Driver orchestrates the engine against an abstract surface.
// Each Frame call is a pure, synchronous function of its inputs; the only
// state held across calls is the aggregator's scratch grid and the seek
// callback, so one Driver must not serve concurrent draws
type Driver struct {
	surface Surface
	agg     heat.Aggregator

	// OnSeek receives the timestamp of the sample nearest a click.
	// Typically wired to an external playback component
	OnSeek func(t float64)
}

// NewDriver creates a driver bound to a surface
func NewDriver(surface Surface) *Driver {
	return &Driver{surface: surface}
}

// Frame draws one complete frame and returns its statistics.
// Order: field geometry, heat zones, trails, markers. Grid dimensions are
// derived from the current surface size on every call
func (d *Driver) Frame(entities []track.Entity, currentTime float64, cfg Config) Stats {
	cfg.Normalize()

	f := surfaceField(d.surface)
	d.surface.Clear()
	drawField(d.surface, f)

	scope := scopeEntities(entities, cfg)
	windowed := windowedSamples(scope, currentTime, cfg.WindowSeconds)

	if cfg.HeatZones {
		d.drawHeat(f, windowed, cfg.Opacity)
	}
	if cfg.Trails {
		for _, e := range scope {
			d.drawTrail(f, e, currentTime, cfg)
		}
	}

	placements := formation.Synthetic(cfg.Formation, entities, currentTime)
	for i, e := range scope {
		d.drawMarker(f, e, currentTime, placementFor(placements, scope, i))
	}

	return frameStats(scope, windowed)
}

// Click translates a surface-pixel click into the timestamp of the
// nearest in-scope sample and hands it to OnSeek. ok is false when no
// sample exists to seek to
func (d *Driver) Click(entities []track.Entity, cfg Config, px, py float64) (float64, bool) {
	cfg.Normalize()

	f := surfaceField(d.surface)
	fx, fy := f.toField(px, py)

	var all []track.Sample
	for _, e := range scopeEntities(entities, cfg) {
		all = append(all, e.Samples...)
	}

	idx, ok := track.NearestByPosition(all, fx, fy)
	if !ok {
		return 0, false
	}

	t := all[idx].T
	if d.OnSeek != nil {
		d.OnSeek(t)
	}
	return t, true
}

// scopeEntities resolves the config's entity scope.
// Single mode with a missing or unknown selection defaults to the first
// entity rather than failing
func scopeEntities(entities []track.Entity, cfg Config) []*track.Entity {
	if len(entities) == 0 {
		return nil
	}

	if cfg.Mode == ModeSingle {
		for i := range entities {
			if entities[i].ID == cfg.SelectedID {
				return []*track.Entity{&entities[i]}
			}
		}
		return []*track.Entity{&entities[0]}
	}

	out := make([]*track.Entity, len(entities))
	for i := range entities {
		out[i] = &entities[i]
	}
	return out
}

// windowedSamples gathers the symmetric-window sample union across scope
func windowedSamples(scope []*track.Entity, currentTime, windowSeconds float64) []track.Sample {
	var out []track.Sample
	for _, e := range scope {
		out = append(out, track.FilterWindow(e.Samples, currentTime, windowSeconds, track.WindowSymmetric)...)
	}
	return out
}

// drawHeat bins the windowed samples and fills every cell whose
// normalized value clears the draw threshold
func (d *Driver) drawHeat(f fieldRect, samples []track.Sample, opacity float64) {
	gridW := int(f.w / parameter.HeatCellSizePx)
	gridH := int(f.h / parameter.HeatCellSizePx)
	if gridW < 1 {
		gridW = 1
	}
	if gridH < 1 {
		gridH = 1
	}

	g := d.agg.Aggregate(samples, gridW, gridH)
	if g.Max == 0 {
		// Nothing landed; skip the normalization pass entirely
		return
	}

	cellW := f.w / float64(gridW)
	cellH := f.h / float64(gridH)
	for row := 0; row < gridH; row++ {
		for col := 0; col < gridW; col++ {
			norm := g.At(row, col) / g.Max
			if norm <= parameter.HeatDrawThreshold {
				continue
			}
			d.surface.SetFill(Ramp(norm), opacity*norm)
			d.surface.FillRect(f.x+float64(col)*cellW, f.y+float64(row)*cellH, cellW, cellH)
		}
	}
}

// drawTrail strokes the entity's recent path as a polyline
func (d *Driver) drawTrail(f fieldRect, e *track.Entity, currentTime float64, cfg Config) {
	trail := track.BuildTrail(e, currentTime, cfg.WindowSeconds, cfg.TrailLength)
	if len(trail) < 2 {
		return
	}

	d.surface.SetStroke(EntityColor(e.ID), parameter.TrailAlpha, parameter.TrailStrokeWidth)
	for i := 1; i < len(trail); i++ {
		x1, y1 := f.toPixel(trail[i-1].X, trail[i-1].Y)
		x2, y2 := f.toPixel(trail[i].X, trail[i].Y)
		d.surface.Line(x1, y1, x2, y2)
	}
}

// drawMarker places the entity's current position circle and label.
// Entities with no samples at all fall back to their synthetic formation
// slot so the roster stays visible; that position carries no measured data
func (d *Driver) drawMarker(f fieldRect, e *track.Entity, currentTime float64, fallback *formation.Placement) {
	var x, y, radius, alpha float64

	idx, ok := track.NearestByTime(e.Samples, currentTime)
	if ok {
		s := e.Samples[idx]
		x, y = s.X, s.Y
		w := s.Weight()
		if w < 0 {
			w = 0
		}
		if w > 1 {
			w = 1
		}
		radius = parameter.MarkerRadiusMin + (parameter.MarkerRadiusMax-parameter.MarkerRadiusMin)*w
		alpha = 1
	} else {
		if fallback == nil {
			return
		}
		x, y = fallback.Slot.X, fallback.Slot.Y
		radius = parameter.MarkerRadiusMin
		alpha = 0.5
	}

	px, py := f.toPixel(x, y)
	d.surface.SetFill(EntityColor(e.ID), alpha)
	d.surface.FillCircle(px, py, radius)
	d.surface.SetStroke(RGBWhite, alpha, parameter.MarkerOutlineWidth)
	d.surface.StrokeCircle(px, py, radius)

	d.surface.SetFill(RGBWhite, alpha)
	d.surface.Text(markerLabel(e), px, py-radius-4)
}

// markerLabel prefers the jersey number, falls back to the role label
func markerLabel(e *track.Entity) string {
	if e.Number > 0 {
		return fmt.Sprintf("%d", e.Number)
	}
	return e.Role
}

// placementFor finds the formation placement matching a scope entity.
// Scope order and roster order coincide in all-entities mode; in single
// mode the placement is looked up by id
func placementFor(placements []formation.Placement, scope []*track.Entity, i int) *formation.Placement {
	for p := range placements {
		if placements[p].Entity.ID == scope[i].ID {
			return &placements[p]
		}
	}
	return nil
}

// frameStats computes the frame's summary record.
// Empty inputs produce zeros, never NaN
func frameStats(scope []*track.Entity, windowed []track.Sample) Stats {
	s := Stats{WindowSamples: len(windowed)}
	for _, e := range scope {
		s.TotalSamples += len(e.Samples)
	}

	if len(windowed) > 0 {
		weights := make([]float64, len(windowed))
		for i, smp := range windowed {
			weights[i] = smp.Weight()
			if weights[i] > s.MaxIntensity {
				s.MaxIntensity = weights[i]
			}
		}
		s.AverageIntensity = stat.Mean(weights, nil)
		s.CoveragePercent = heat.Coverage(windowed)
	}
	return s
}
