// Package overlay implements the annotation session: the input state
// machine that turns pointer and key events into stroke store mutations
// and surface repaints, plus the session's injection and teardown.
package overlay

import (
	"image/color"
	"io"
	"log"

	"github.com/google/uuid"

	"InkOverlay/internal/render"
	"InkOverlay/internal/state"
)

// Phase is the controller's gesture state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDrawing
	PhaseErasing
)

func (p Phase) String() string {
	switch p {
	case PhaseDrawing:
		return "drawing"
	case PhaseErasing:
		return "erasing"
	}
	return "idle"
}

// Options configure a new session.
type Options struct {
	Style      state.Style
	DismissKey string
}

// Session owns one overlay's stroke store and drawing surface. All methods
// must be called from the single goroutine that delivers input events.
type Session struct {
	ID string

	store   *state.Store
	surface render.Surface
	pen     *render.Pen

	style      state.Style
	mode       state.Mode
	phase      Phase
	current    state.Stroke
	dismissKey string
	closed     bool

	// OnTeardown runs once, after the session has been closed.
	OnTeardown func()
	// OnChange runs after anything on the surface changed.
	OnChange func()
}

func NewSession(surface render.Surface, opts Options) *Session {
	style, def := opts.Style, state.DefaultStyle()
	if style.Color == (color.NRGBA{}) {
		style.Color = def.Color
	}
	if style.Width == 0 {
		style.Width = def.Width
	}
	style.Width = state.ClampWidth(style.Width)
	dismiss := opts.DismissKey
	if dismiss == "" {
		dismiss = "Escape"
	}

	s := &Session{
		ID:         uuid.NewString(),
		store:      state.NewStore(),
		surface:    surface,
		pen:        render.NewPen(surface),
		style:      style,
		mode:       state.ModeDraw,
		dismissKey: dismiss,
	}
	log.Printf("[OVERLAY] Session %s started", s.ID)
	return s
}

func (s *Session) Store() *state.Store     { return s.store }
func (s *Session) Surface() render.Surface { return s.surface }
func (s *Session) Mode() state.Mode        { return s.mode }
func (s *Session) Phase() Phase            { return s.phase }
func (s *Session) Style() state.Style      { return s.style }
func (s *Session) Closed() bool            { return s.closed }

// PointerDown starts a stroke in draw mode or an erase probe in erase mode.
func (s *Session) PointerDown(x, y float64) {
	if s.closed {
		return
	}
	if s.phase != PhaseIdle {
		s.finishGesture()
	}

	switch s.mode {
	case state.ModeDraw:
		p := s.style.Sample(x, y)
		s.current = state.Stroke{Points: []state.Point{p}}
		s.pen.Begin(p)
		s.phase = PhaseDrawing
	case state.ModeErase:
		s.phase = PhaseErasing
		s.eraseAt(x, y)
	}
}

// PointerMove extends the live stroke or probes for another stroke to erase.
func (s *Session) PointerMove(x, y float64) {
	if s.closed {
		return
	}

	switch s.phase {
	case PhaseDrawing:
		p := s.style.Sample(x, y)
		s.current.Points = append(s.current.Points, p)
		if err := s.pen.Extend(p); err != nil {
			log.Printf("[OVERLAY] Incremental draw failed: %v", err)
		}
		s.changed()
	case PhaseErasing:
		s.eraseAt(x, y)
	}
}

// PointerUp commits the live stroke, if any, and returns to idle.
func (s *Session) PointerUp() {
	if s.closed {
		return
	}
	s.finishGesture()
}

// PointerLeave behaves like PointerUp.
func (s *Session) PointerLeave() {
	s.PointerUp()
}

// KeyDown tears the session down when key is the dismiss key.
func (s *Session) KeyDown(key string) {
	if key == s.dismissKey {
		s.Close()
	}
}

// Resize resizes the surface and repaints every stroke.
func (s *Session) Resize(width, height int) {
	if s.closed || width <= 0 || height <= 0 {
		return
	}
	if w, h := s.surface.Size(); w == width && h == height {
		return
	}
	if err := s.surface.Resize(width, height); err != nil {
		log.Printf("[OVERLAY] Resize to %dx%d failed: %v", width, height, err)
		return
	}
	s.redraw()
}

func (s *Session) SetColor(c color.NRGBA) {
	s.style.Color = c
}

// SetWidth sets the width of new samples, clamped to the allowed range.
func (s *Session) SetWidth(w float64) {
	s.style.Width = state.ClampWidth(w)
}

// SetMode switches between drawing and erasing. A gesture in progress is
// finished first: a live stroke is committed as if the pointer was released.
func (s *Session) SetMode(m state.Mode) {
	if s.closed || m == s.mode {
		return
	}
	s.finishGesture()
	s.mode = m
	log.Printf("[OVERLAY] Mode set to %s", m)
}

// ClearAll removes every stroke and repaints.
func (s *Session) ClearAll() {
	if s.closed {
		return
	}
	s.finishGesture()
	s.store.Clear()
	s.redraw()
}

// Close tears the session down. Calling it again has no effect.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.phase = PhaseIdle
	s.pen.End()
	s.current = state.Stroke{}
	s.store.Clear()
	s.surface.Clear()
	if c, ok := s.surface.(io.Closer); ok {
		if err := c.Close(); err != nil {
			log.Printf("[OVERLAY] Releasing surface failed: %v", err)
		}
	}
	log.Printf("[OVERLAY] Session %s torn down", s.ID)

	if s.OnTeardown != nil {
		s.OnTeardown()
	}
}

func (s *Session) finishGesture() {
	if s.phase == PhaseDrawing && len(s.current.Points) > 0 {
		s.store.Append(s.current)
	}
	s.current = state.Stroke{}
	s.pen.End()
	s.phase = PhaseIdle
}

func (s *Session) eraseAt(x, y float64) {
	i := s.store.FindTopmostStrokeAt(x, y)
	if i == state.NotFound {
		return
	}
	s.store.RemoveAt(i)
	s.redraw()
}

// redraw repaints the stored strokes and, while drawing, the live stroke
// that is not committed yet.
func (s *Session) redraw() {
	if err := render.RedrawAll(s.surface, s.store.All()); err != nil {
		log.Printf("[OVERLAY] Redraw failed: %v", err)
	}
	if s.phase == PhaseDrawing {
		if err := render.Replay(s.surface, s.current); err != nil {
			log.Printf("[OVERLAY] Live stroke replay failed: %v", err)
		}
	}
	s.changed()
}

func (s *Session) changed() {
	if s.OnChange != nil {
		s.OnChange()
	}
}
