package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pitchtrace/match"
	"github.com/lixenwraith/pitchtrace/render"
)

const (
	frameInterval = 33 * time.Millisecond

	// statusRows is reserved at the bottom for stats and key help
	statusRows = 2
)

// Viewer runs the interactive playback loop: clock, key/mouse handling,
// and one driver frame per tick
type Viewer struct {
	screen  tcell.Screen
	surface *TermSurface
	driver  *render.Driver
	audio   *beeper

	match *match.Match
	cfg   render.Config

	clock  float64
	minT   float64
	maxT   float64
	speed  float64
	paused bool

	selected int // roster index for single mode
}

// NewViewer initializes the terminal and wires the driver's seek callback
func NewViewer(m *match.Match, cfg render.Config, speed float64) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	cols, rows := screen.Size()
	v := &Viewer{
		screen:  screen,
		surface: NewTermSurface(screen, cols, max(rows-statusRows, 1)),
		audio:   newBeeper(),
		match:   m,
		cfg:     cfg,
		speed:   speed,
	}
	v.driver = render.NewDriver(v.surface)
	v.driver.OnSeek = func(t float64) {
		v.clock = t
		v.audio.seekBlip()
	}

	v.minT, v.maxT, _ = m.TimeBounds()
	v.clock = v.minT
	return v, nil
}

// Run drives the event/render loop until quit
func (v *Viewer) Run() error {
	defer v.screen.Fini()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go v.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			if done := v.handleEvent(ev); done {
				close(quit)
				return nil
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			v.advance(dt)
			v.frame()
		}
	}
}

// advance moves the playback clock, wrapping at the end of the match
func (v *Viewer) advance(dt float64) {
	if v.paused || v.maxT <= v.minT {
		return
	}
	v.clock += dt * v.speed
	if v.clock > v.maxT {
		v.clock = v.minT
	}
}

func (v *Viewer) frame() {
	stats := v.driver.Frame(v.match.Entities, v.clock, v.cfg)
	v.surface.Flush()
	v.drawStatus(stats)
	v.screen.Show()
}

func (v *Viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		v.surface.Resize(cols, max(rows-statusRows, 1))
		v.screen.Sync()

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			cx, cy := ev.Position()
			// Terminal cell -> surface pixel, center of the two sub-rows
			v.driver.Click(v.match.Entities, v.cfg, float64(cx), float64(cy*2+1))
		}

	case *tcell.EventKey:
		return v.handleKey(ev)
	}
	return false
}

func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	if ev.Key() != tcell.KeyRune {
		return false
	}

	switch ev.Rune() {
	case 'q':
		return true
	case ' ':
		v.paused = !v.paused
	case 't':
		v.cfg.Trails = !v.cfg.Trails
		v.audio.toggleTick()
	case 'h':
		v.cfg.HeatZones = !v.cfg.HeatZones
		v.audio.toggleTick()
	case 'f':
		v.cfg.Formation = v.cfg.Formation.Next()
	case 'm':
		if v.cfg.Mode == render.ModeAll {
			v.cfg.Mode = render.ModeSingle
			v.applySelection()
		} else {
			v.cfg.Mode = render.ModeAll
		}
	case 'n':
		if v.cfg.Mode == render.ModeSingle && len(v.match.Entities) > 0 {
			v.selected = (v.selected + 1) % len(v.match.Entities)
			v.applySelection()
		}
	case '[':
		if v.cfg.WindowSeconds > 2 {
			v.cfg.WindowSeconds -= 2
		}
	case ']':
		v.cfg.WindowSeconds += 2
	case '-':
		if v.speed > 0.25 {
			v.speed /= 2
		}
	case '+', '=':
		if v.speed < 16 {
			v.speed *= 2
		}
	}
	return false
}

func (v *Viewer) applySelection() {
	if v.selected < len(v.match.Entities) {
		v.cfg.SelectedID = v.match.Entities[v.selected].ID
	}
}

// drawStatus renders the stats record and key help below the field
func (v *Viewer) drawStatus(stats render.Stats) {
	cols, rows := v.screen.Size()
	style := tcell.StyleDefault.
		Foreground(tcell.ColorWhite).
		Background(tcell.NewRGBColor(26, 27, 38))

	state := "playing"
	if v.paused {
		state = "paused"
	}
	line1 := fmt.Sprintf(" t=%6.1fs x%.2g %-7s  samples %d/%d  avg %.2f  max %.2f  coverage %.1f%%  %s",
		v.clock, v.speed, state,
		stats.WindowSamples, stats.TotalSamples,
		stats.AverageIntensity, stats.MaxIntensity, stats.CoveragePercent,
		v.cfg.Formation)
	line2 := " space pause  t trails  h heat  m mode  n next  f formation  [/] window  +/- speed  q quit"

	putLine(v.screen, 0, rows-2, cols, line1, style)
	putLine(v.screen, 0, rows-1, cols, line2, style.Dim(true))
}

func putLine(screen tcell.Screen, x, y, width int, s string, style tcell.Style) {
	for i := 0; i < width; i++ {
		r := ' '
		if i < len(s) {
			r = rune(s[i])
		}
		screen.SetContent(x+i, y, r, nil, style)
	}
}

