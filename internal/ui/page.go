package ui

import (
	"fmt"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"

	"InkOverlay/internal/overlay"
)

type mounted struct {
	session *overlay.Session
	object  fyne.CanvasObject
}

// PageHost layers overlays above a page's content. It implements
// overlay.Page over a fyne stack container.
type PageHost struct {
	root    *fyne.Container
	window  fyne.Window
	palette []color.NRGBA
	layers  map[string]mounted
}

var _ overlay.Page = (*PageHost)(nil)

// NewPageHost wraps content shown in win. Toolbar dialogs open over win.
func NewPageHost(win fyne.Window, content fyne.CanvasObject, palette []color.NRGBA) *PageHost {
	return &PageHost{
		root:    container.NewStack(content),
		window:  win,
		palette: palette,
		layers:  make(map[string]mounted),
	}
}

// CanvasObject returns the page together with any mounted overlay.
func (p *PageHost) CanvasObject() fyne.CanvasObject {
	return p.root
}

func (p *PageHost) Lookup(id string) (*overlay.Session, bool) {
	m, ok := p.layers[id]
	if !ok {
		return nil, false
	}
	return m.session, true
}

// Mount stacks the session's drawing layer and floating toolbar on top of
// the page.
func (p *PageHost) Mount(id string, s *overlay.Session) error {
	if _, ok := p.layers[id]; ok {
		return fmt.Errorf("overlay %s is already mounted", id)
	}

	drawing := NewOverlayWidget(s)
	toolbar := NewToolbar(s, p.palette, p.window)
	layer := container.NewStack(
		drawing,
		container.NewVBox(
			container.NewHBox(layout.NewSpacer(), toolbar.CanvasObject()),
		),
	)

	p.layers[id] = mounted{session: s, object: layer}
	p.root.Add(layer)
	log.Printf("[UI] Overlay %s mounted (session %s)", id, s.ID)
	return nil
}

func (p *PageHost) Unmount(id string) {
	m, ok := p.layers[id]
	if !ok {
		return
	}
	delete(p.layers, id)
	p.root.Remove(m.object)
	log.Printf("[UI] Overlay %s unmounted", id)
}
