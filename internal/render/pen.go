package render

import "InkOverlay/internal/state"

// Pen paints a stroke while it is being drawn, one segment per sample,
// so the surface never needs a full redraw during freehand input.
type Pen struct {
	surface Surface
	first   state.Point
	last    state.Point
	active  bool
}

func NewPen(s Surface) *Pen {
	return &Pen{surface: s}
}

// Begin starts a new live stroke at p. Nothing is painted until Extend.
func (p *Pen) Begin(pt state.Point) {
	p.first = pt
	p.last = pt
	p.active = true
}

// Extend paints the segment from the previous sample to pt using the
// style of the stroke's first point.
func (p *Pen) Extend(pt state.Point) error {
	if !p.active {
		return nil
	}
	p.surface.SetStyle(p.first.Color, p.first.Width)
	p.surface.MoveTo(p.last.X, p.last.Y)
	p.surface.LineTo(pt.X, pt.Y)
	p.last = pt
	return p.surface.Stroke()
}

func (p *Pen) End() {
	p.active = false
}

func (p *Pen) Active() bool {
	return p.active
}
