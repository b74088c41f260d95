package state

import "seehuhn.de/go/geom/vec"

// DistancePointToSegment returns the distance from p to the segment a-b.
// The projection of p is clamped to the segment, so points beyond either end
// measure to the nearest endpoint. A zero-length segment measures to a.
func DistancePointToSegment(p, a, b vec.Vec2) float64 {
	ab := b.Sub(a)
	lenSq := ab.X*ab.X + ab.Y*ab.Y
	if lenSq == 0 {
		return p.Sub(a).Length()
	}

	ap := p.Sub(a)
	t := (ap.X*ab.X + ap.Y*ab.Y) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := a.Add(ab.Mul(t))
	return p.Sub(closest).Length()
}
