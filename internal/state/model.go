package state

import (
	"image/color"

	"seehuhn.de/go/geom/vec"
)

const (
	MinWidth     = 1
	MaxWidth     = 20
	DefaultWidth = 2

	// MinHitThreshold keeps thin strokes erasable.
	MinHitThreshold = 5
)

// Point is one sample of a stroke, carrying the style active when it was taken.
type Point struct {
	X     float64
	Y     float64
	Color color.NRGBA
	Width float64
}

// Vec returns the position of the point.
func (p Point) Vec() vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

type Stroke struct {
	ID     string
	Seq    uint64
	Points []Point
	bounds Bounds
}

// Degenerate reports whether the stroke has no segment to draw or hit.
func (s Stroke) Degenerate() bool {
	return len(s.Points) < 2
}

// Bounds returns the stroke's bounding box as computed when it was stored.
func (s Stroke) Bounds() Bounds {
	return s.bounds
}

type Mode int

const (
	ModeDraw Mode = iota
	ModeErase
)

func (m Mode) String() string {
	if m == ModeErase {
		return "erase"
	}
	return "draw"
}

// Style is the color and width applied to newly sampled points.
type Style struct {
	Color color.NRGBA
	Width float64
}

func DefaultStyle() Style {
	return Style{Color: color.NRGBA{A: 255}, Width: DefaultWidth}
}

// ClampWidth forces w into [MinWidth, MaxWidth].
func ClampWidth(w float64) float64 {
	if w < MinWidth {
		return MinWidth
	}
	if w > MaxWidth {
		return MaxWidth
	}
	return w
}

// Sample creates a point at (x, y) using the style.
func (st Style) Sample(x, y float64) Point {
	return Point{X: x, Y: y, Color: st.Color, Width: st.Width}
}
