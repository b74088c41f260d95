package overlay

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"InkOverlay/internal/render"
)

type fakePage struct {
	mounted  map[string]*Session
	mountErr error
}

func newFakePage() *fakePage {
	return &fakePage{mounted: make(map[string]*Session)}
}

func (p *fakePage) Lookup(id string) (*Session, bool) {
	s, ok := p.mounted[id]
	return s, ok
}

func (p *fakePage) Mount(id string, s *Session) error {
	if p.mountErr != nil {
		return p.mountErr
	}
	p.mounted[id] = s
	return nil
}

func (p *fakePage) Unmount(id string) {
	delete(p.mounted, id)
}

func testRegistry() *Registry {
	r := NewRegistry("", Options{})
	r.NewSurface = func(w, h int) render.Surface { return &countingSurface{w: w, h: h} }
	return r
}

func TestRegistry_InjectOnce(t *testing.T) {
	reg := testRegistry()
	page := newFakePage()

	first, injected, err := reg.Inject(page, 320, 240)
	require.NoError(t, err)
	assert.True(t, injected)
	assert.Equal(t, DefaultID, reg.ID)

	again, injected, err := reg.Inject(page, 320, 240)
	require.NoError(t, err)
	assert.False(t, injected)
	assert.Same(t, first, again)
	assert.Len(t, page.mounted, 1)
}

func TestRegistry_ReinjectAfterTeardown(t *testing.T) {
	reg := testRegistry()
	page := newFakePage()

	first, _, err := reg.Inject(page, 100, 100)
	require.NoError(t, err)
	first.KeyDown("Escape")
	first.Close()
	assert.Empty(t, page.mounted)

	second, injected, err := reg.Inject(page, 100, 100)
	require.NoError(t, err)
	assert.True(t, injected)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 0, second.Store().Len())
}

func TestRegistry_IndependentPages(t *testing.T) {
	reg := testRegistry()
	a, b := newFakePage(), newFakePage()

	sa, _, err := reg.Inject(a, 100, 100)
	require.NoError(t, err)
	sb, _, err := reg.Inject(b, 100, 100)
	require.NoError(t, err)

	drawLine(sa, 0, 0, 10, 10)
	assert.Equal(t, 1, sa.Store().Len())
	assert.Equal(t, 0, sb.Store().Len())
}

func TestRegistry_MountError(t *testing.T) {
	reg := testRegistry()
	page := newFakePage()
	page.mountErr = errors.New("no root")

	s, injected, err := reg.Inject(page, 100, 100)
	require.Error(t, err)
	assert.ErrorIs(t, err, page.mountErr)
	assert.Nil(t, s)
	assert.False(t, injected)
}

func TestNewRegistry_DefaultSurfaceIsRaster(t *testing.T) {
	reg := NewRegistry("custom-id", Options{})
	assert.Equal(t, "custom-id", reg.ID)

	surf := reg.NewSurface(12, 8)
	_, ok := surf.(*render.Raster)
	require.True(t, ok)
	w, h := surf.Size()
	assert.Equal(t, 12, w)
	assert.Equal(t, 8, h)
}
