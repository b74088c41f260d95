package state

import "log"

// Store is the ordered stroke list of one overlay session. Index order is
// z-order: the last stroke was drawn last and sits on top.
type Store struct {
	strokes []Stroke
	clock   Clock
}

func NewStore() *Store {
	return &Store{strokes: make([]Stroke, 0)}
}

// Append stores a finished stroke and returns the stored copy with its ID,
// sequence number and bounds filled in.
func (s *Store) Append(st Stroke) Stroke {
	points := make([]Point, len(st.Points))
	copy(points, st.Points)

	stored := Stroke{
		ID:     newStrokeID(),
		Seq:    s.clock.Tick(),
		Points: points,
		bounds: boundsOf(points),
	}
	s.strokes = append(s.strokes, stored)
	log.Printf("[STORE] Stroke %d added: %s (%d points)", stored.Seq, stored.ID, len(points))
	return stored
}

// RemoveAt deletes the stroke at index i. An out-of-range index leaves the
// store untouched and reports false.
func (s *Store) RemoveAt(i int) (Stroke, bool) {
	if i < 0 || i >= len(s.strokes) {
		return Stroke{}, false
	}
	removed := s.strokes[i]
	s.strokes = append(s.strokes[:i], s.strokes[i+1:]...)
	log.Printf("[STORE] Stroke %d removed: %s", removed.Seq, removed.ID)
	return removed, true
}

func (s *Store) Clear() {
	n := len(s.strokes)
	s.strokes = s.strokes[:0]
	log.Printf("[STORE] Cleared %d strokes", n)
}

func (s *Store) Len() int {
	return len(s.strokes)
}

func (s *Store) At(i int) Stroke {
	return s.strokes[i]
}

// All returns the strokes in draw order. The slice is a copy; the point
// slices are shared and must not be modified.
func (s *Store) All() []Stroke {
	out := make([]Stroke, len(s.strokes))
	copy(out, s.strokes)
	return out
}
