// Package render replays strokes onto a drawing surface.
package render

import (
	"image/color"

	"InkOverlay/internal/state"
)

// Surface is a 2D drawing target with a single current path.
type Surface interface {
	Size() (width, height int)
	Resize(width, height int) error
	// Clear erases every pixel and discards the current path.
	Clear()
	SetStyle(c color.Color, width float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Stroke paints the current path with the current style and starts a new one.
	Stroke() error
}

// RedrawAll clears s and replays every stroke in order.
//
// Each stroke is painted with the color and width of its first point;
// styles recorded on later points are ignored.
func RedrawAll(s Surface, strokes []state.Stroke) error {
	s.Clear()
	for _, st := range strokes {
		if err := Replay(s, st); err != nil {
			return err
		}
	}
	return nil
}

// Replay paints a single stroke on top of whatever s already shows.
// Degenerate strokes paint nothing.
func Replay(s Surface, st state.Stroke) error {
	if st.Degenerate() {
		return nil
	}
	first := st.Points[0]
	s.SetStyle(first.Color, first.Width)
	s.MoveTo(first.X, first.Y)
	for _, p := range st.Points[1:] {
		s.LineTo(p.X, p.Y)
	}
	return s.Stroke()
}
