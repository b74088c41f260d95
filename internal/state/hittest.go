package state

import "seehuhn.de/go/geom/vec"

// NotFound is returned by FindTopmostStrokeAt when no stroke is near the point.
const NotFound = -1

// FindTopmostStrokeAt returns the index of the most recently drawn stroke
// passing within hit distance of (x, y), or NotFound.
//
// A segment is hit when the point lies closer than the width of the
// segment's first endpoint, floored at MinHitThreshold.
func (s *Store) FindTopmostStrokeAt(x, y float64) int {
	q := vec.Vec2{X: x, Y: y}
	for i := len(s.strokes) - 1; i >= 0; i-- {
		st := s.strokes[i]
		if st.Degenerate() || !st.bounds.hitArea().Contains(x, y) {
			continue
		}
		if strokeHit(st, q) {
			return i
		}
	}
	return NotFound
}

func strokeHit(st Stroke, q vec.Vec2) bool {
	for j := 0; j+1 < len(st.Points); j++ {
		a, b := st.Points[j], st.Points[j+1]
		if DistancePointToSegment(q, a.Vec(), b.Vec()) < max(a.Width, MinHitThreshold) {
			return true
		}
	}
	return false
}
