package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindTopmostStrokeAt_Empty(t *testing.T) {
	s := NewStore()
	assert.Equal(t, NotFound, s.FindTopmostStrokeAt(0, 0))
}

func TestFindTopmostStrokeAt_StraightRedStroke(t *testing.T) {
	s := NewStore()
	s.Append(line(Style{Color: red, Width: 4}, 0, 0, 10, 0))

	assert.Equal(t, 0, s.FindTopmostStrokeAt(5, 1))
	assert.Equal(t, NotFound, s.FindTopmostStrokeAt(5, 20))
}

func TestFindTopmostStrokeAt_Threshold(t *testing.T) {
	tests := []struct {
		name  string
		width float64
		y     float64
		hit   bool
	}{
		{"thin stroke inside floor", 1, 4.9, true},
		{"thin stroke at floor", 1, 5, false},
		{"wide stroke inside width", 12, 11.5, true},
		{"wide stroke at width", 12, 12, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			s.Append(line(Style{Color: red, Width: tt.width}, 0, 0, 100, 0))

			got := s.FindTopmostStrokeAt(50, tt.y)
			if tt.hit {
				assert.Equal(t, 0, got)
			} else {
				assert.Equal(t, NotFound, got)
			}
		})
	}
}

func TestFindTopmostStrokeAt_UsesSegmentStartWidth(t *testing.T) {
	s := NewStore()
	st := Stroke{Points: []Point{
		{X: 0, Y: 0, Color: red, Width: 15},
		{X: 100, Y: 0, Color: red, Width: 1},
		{X: 200, Y: 0, Color: red, Width: 1},
	}}
	s.Append(st)

	assert.Equal(t, 0, s.FindTopmostStrokeAt(50, 10), "first segment uses width 15")
	assert.Equal(t, NotFound, s.FindTopmostStrokeAt(150, 10), "second segment uses floor 5")
}

func TestFindTopmostStrokeAt_TopmostWins(t *testing.T) {
	s := NewStore()
	style := Style{Color: red, Width: 4}
	s.Append(line(style, 0, 50, 100, 50))
	s.Append(line(style, 50, 0, 50, 100))

	require.Equal(t, 1, s.FindTopmostStrokeAt(50, 50))

	_, ok := s.RemoveAt(1)
	require.True(t, ok)
	assert.Equal(t, 0, s.FindTopmostStrokeAt(50, 50))
}

func TestFindTopmostStrokeAt_DegenerateNeverHits(t *testing.T) {
	s := NewStore()
	s.Append(line(Style{Color: red, Width: 20}, 10, 10))

	assert.Equal(t, NotFound, s.FindTopmostStrokeAt(10, 10))
}

func TestFindTopmostStrokeAt_SkipsFarStrokes(t *testing.T) {
	s := NewStore()
	style := Style{Color: red, Width: 2}
	s.Append(line(style, 0, 0, 10, 10))
	s.Append(line(style, 500, 500, 510, 510))

	assert.Equal(t, 0, s.FindTopmostStrokeAt(5, 5))
	assert.Equal(t, 1, s.FindTopmostStrokeAt(505, 505))
}

func TestBounds_HitArea(t *testing.T) {
	b := boundsOf([]Point{{X: 10, Y: 20, Width: 2}, {X: 30, Y: 5, Width: 8}})

	assert.Equal(t, Bounds{MinX: 10, MinY: 5, MaxX: 30, MaxY: 20, MaxWidth: 8}, b)
	area := b.hitArea()
	assert.True(t, area.Contains(2, 5))
	assert.False(t, area.Contains(1.9, 5))
}
