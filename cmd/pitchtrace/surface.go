package main

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pitchtrace/render"
)

// TermSurface implements render.Surface on a tcell screen.
// Each terminal cell holds two vertical "pixels" via the upper-half block,
// doubling vertical resolution and roughly squaring the aspect ratio.
// A persistent color buffer backs compositing; Flush writes it out
type TermSurface struct {
	screen tcell.Screen

	width  int // pixels = terminal columns
	height int // pixels = 2 * usable rows
	cells  []render.RGB

	fill        render.RGB
	fillAlpha   float64
	stroke      render.RGB
	strokeAlpha float64

	texts []textOp
}

type textOp struct {
	s    string
	x, y int
}

// NewTermSurface creates a surface over the screen's top `rows` rows
func NewTermSurface(screen tcell.Screen, cols, rows int) *TermSurface {
	s := &TermSurface{screen: screen}
	s.Resize(cols, rows)
	return s
}

// Resize adjusts pixel dimensions, reallocating only when capacity is short
func (s *TermSurface) Resize(cols, rows int) {
	s.width = cols
	s.height = rows * 2
	size := s.width * s.height
	if cap(s.cells) < size {
		s.cells = make([]render.RGB, size)
	} else {
		s.cells = s.cells[:size]
	}
	s.Clear()
}

func (s *TermSurface) Size() (float64, float64) {
	return float64(s.width), float64(s.height)
}

func (s *TermSurface) Clear() {
	for i := range s.cells {
		s.cells[i] = render.RGBBlack
	}
	s.texts = s.texts[:0]
}

func (s *TermSurface) SetFill(c render.RGB, alpha float64) {
	s.fill = c
	s.fillAlpha = alpha
}

// SetStroke ignores the width hint; a terminal pixel is the minimum and
// maximum stroke this backend can produce
func (s *TermSurface) SetStroke(c render.RGB, alpha float64, _ float64) {
	s.stroke = c
	s.strokeAlpha = alpha
}

// plot blends a color into one pixel, bounds-checked
func (s *TermSurface) plot(x, y int, c render.RGB, alpha float64) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	idx := y*s.width + x
	s.cells[idx] = render.Blend(s.cells[idx], c, alpha)
}

func (s *TermSurface) FillRect(x, y, w, h float64) {
	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	x1, y1 := int(math.Ceil(x+w)), int(math.Ceil(y+h))
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			s.plot(px, py, s.fill, s.fillAlpha)
		}
	}
}

func (s *TermSurface) StrokeRect(x, y, w, h float64) {
	s.Line(x, y, x+w, y)
	s.Line(x+w, y, x+w, y+h)
	s.Line(x+w, y+h, x, y+h)
	s.Line(x, y+h, x, y)
}

// Line plots with a simple DDA walk; fine for field geometry and trails
func (s *TermSurface) Line(x1, y1, x2, y2 float64) {
	dx := x2 - x1
	dy := y2 - y1
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps < 1 {
		s.plot(int(x1), int(y1), s.stroke, s.strokeAlpha)
		return
	}
	sx := dx / steps
	sy := dy / steps
	x, y := x1, y1
	for i := 0; i <= int(steps); i++ {
		s.plot(int(math.Round(x)), int(math.Round(y)), s.stroke, s.strokeAlpha)
		x += sx
		y += sy
	}
}

func (s *TermSurface) FillCircle(cx, cy, r float64) {
	x0, y0 := int(math.Floor(cx-r)), int(math.Floor(cy-r))
	x1, y1 := int(math.Ceil(cx+r)), int(math.Ceil(cy+r))
	r2 := r * r
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			dx := float64(px) + 0.5 - cx
			dy := float64(py) + 0.5 - cy
			if dx*dx+dy*dy <= r2 {
				s.plot(px, py, s.fill, s.fillAlpha)
			}
		}
	}
}

// StrokeCircle sweeps the perimeter at a step small enough to leave no gaps
func (s *TermSurface) StrokeCircle(cx, cy, r float64) {
	if r <= 0 {
		return
	}
	step := 1 / (r * 4)
	for a := 0.0; a < 2*math.Pi; a += step {
		px := cx + r*math.Cos(a)
		py := cy + r*math.Sin(a)
		s.plot(int(math.Round(px)), int(math.Round(py)), s.stroke, s.strokeAlpha)
	}
}

// Text is deferred to Flush; half-block cells can't carry glyphs
func (s *TermSurface) Text(str string, x, y float64) {
	s.texts = append(s.texts, textOp{s: str, x: int(x), y: int(y)})
}

// Flush writes the pixel buffer to the terminal: each terminal cell gets
// the upper-half block with fg = top pixel, bg = bottom pixel, then text
// overlays are stamped on top
func (s *TermSurface) Flush() {
	rows := s.height / 2
	for row := 0; row < rows; row++ {
		for col := 0; col < s.width; col++ {
			top := s.cells[(row*2)*s.width+col]
			bot := s.cells[(row*2+1)*s.width+col]
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bot.R), int32(bot.G), int32(bot.B)))
			s.screen.SetContent(col, row, '▀', nil, style)
		}
	}

	for _, op := range s.texts {
		row := op.y / 2
		col := op.x - len(op.s)/2
		style := tcell.StyleDefault.
			Foreground(tcell.ColorWhite).
			Background(tcell.NewRGBColor(
				int32(render.RgbPitchGreen.R),
				int32(render.RgbPitchGreen.G),
				int32(render.RgbPitchGreen.B)))
		for i, r := range op.s {
			if col+i >= 0 && col+i < s.width && row >= 0 && row < s.height/2 {
				s.screen.SetContent(col+i, row, r, nil, style)
			}
		}
	}
}
