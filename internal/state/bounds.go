package state

// Bounds is an axis-aligned box around a stroke's sampled points.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64

	// MaxWidth is the widest point width in the stroke.
	MaxWidth float64
}

func boundsOf(points []Point) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}

	b := Bounds{
		MinX:     points[0].X,
		MinY:     points[0].Y,
		MaxX:     points[0].X,
		MaxY:     points[0].Y,
		MaxWidth: points[0].Width,
	}
	for _, p := range points[1:] {
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
		if p.Width > b.MaxWidth {
			b.MaxWidth = p.Width
		}
	}
	return b
}

// Inflate grows the box by pad on every side.
func (b Bounds) Inflate(pad float64) Bounds {
	b.MinX -= pad
	b.MinY -= pad
	b.MaxX += pad
	b.MaxY += pad
	return b
}

func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// hitArea is the region in which a query point can possibly be within
// hit threshold of one of the stroke's segments.
func (b Bounds) hitArea() Bounds {
	return b.Inflate(max(b.MaxWidth, MinHitThreshold))
}
