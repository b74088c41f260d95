package ui

import (
	"image"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"InkOverlay/internal/overlay"
	"InkOverlay/internal/state"
)

// imageSource is a surface that can show its pixels.
type imageSource interface {
	Image() image.Image
}

// OverlayWidget is the transparent drawing layer that sits above the page.
// It forwards pointer input to its session and shows the session's surface.
type OverlayWidget struct {
	widget.BaseWidget
	session *overlay.Session
	raster  *canvas.Raster
}

var _ fyne.Widget = (*OverlayWidget)(nil)
var _ fyne.Draggable = (*OverlayWidget)(nil)
var _ desktop.Mouseable = (*OverlayWidget)(nil)
var _ desktop.Hoverable = (*OverlayWidget)(nil)
var _ desktop.Cursorable = (*OverlayWidget)(nil)

func NewOverlayWidget(s *overlay.Session) *OverlayWidget {
	o := &OverlayWidget{session: s}
	o.raster = canvas.NewRaster(func(w, h int) image.Image {
		if src, ok := s.Surface().(imageSource); ok {
			return src.Image()
		}
		return image.NewRGBA(image.Rect(0, 0, w, h))
	})
	o.ExtendBaseWidget(o)

	s.OnChange = func() {
		o.raster.Refresh()
	}
	return o
}

func (o *OverlayWidget) Session() *overlay.Session {
	return o.session
}

// Resize keeps the drawing surface the same size as the widget.
func (o *OverlayWidget) Resize(size fyne.Size) {
	o.BaseWidget.Resize(size)
	o.session.Resize(int(size.Width), int(size.Height))
}

func (o *OverlayWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	o.session.PointerDown(float64(e.Position.X), float64(e.Position.Y))
}

func (o *OverlayWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	o.session.PointerUp()
}

func (o *OverlayWidget) Dragged(e *fyne.DragEvent) {
	o.session.PointerMove(float64(e.Position.X), float64(e.Position.Y))
}

func (o *OverlayWidget) DragEnd() {
	o.session.PointerUp()
}

func (o *OverlayWidget) MouseOut() {
	o.session.PointerLeave()
}

// Cursor shows a crosshair while erasing.
func (o *OverlayWidget) Cursor() desktop.Cursor {
	if o.session.Mode() == state.ModeErase {
		return desktop.CrosshairCursor
	}
	return desktop.DefaultCursor
}

func (o *OverlayWidget) MouseIn(*desktop.MouseEvent)    {}
func (o *OverlayWidget) MouseMoved(*desktop.MouseEvent) {}

func (o *OverlayWidget) CreateRenderer() fyne.WidgetRenderer {
	return &overlayRenderer{overlay: o}
}

type overlayRenderer struct {
	overlay *OverlayWidget
}

func (r *overlayRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.overlay.raster}
}

func (r *overlayRenderer) Layout(size fyne.Size) {
	r.overlay.raster.Resize(size)
}

func (r *overlayRenderer) MinSize() fyne.Size {
	return fyne.NewSize(1, 1)
}

func (r *overlayRenderer) Refresh() {
	r.overlay.raster.Refresh()
}

func (r *overlayRenderer) Destroy() {
	log.Printf("[UI] Overlay %s renderer destroyed", r.overlay.session.ID)
}
