package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"

	"github.com/gogpu/gg"
)

// Raster is a Surface backed by a gg software context. Unpainted pixels
// stay fully transparent so the surface can sit above other content.
type Raster struct {
	dc *gg.Context
}

var _ Surface = (*Raster)(nil)

func NewRaster(width, height int) *Raster {
	dc := gg.NewContext(max(width, 1), max(height, 1))
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	return &Raster{dc: dc}
}

func (r *Raster) Size() (int, int) {
	return r.dc.Width(), r.dc.Height()
}

// Resize reallocates the pixel buffer. The content is lost; callers
// redraw afterwards.
func (r *Raster) Resize(width, height int) error {
	if err := r.dc.Resize(width, height); err != nil {
		return fmt.Errorf("resize surface: %w", err)
	}
	return nil
}

func (r *Raster) Clear() {
	r.dc.ClearPath()
	r.dc.Clear()
}

func (r *Raster) SetStyle(c color.Color, width float64) {
	r.dc.SetColor(c)
	r.dc.SetLineWidth(width)
}

func (r *Raster) MoveTo(x, y float64) {
	r.dc.MoveTo(x, y)
}

func (r *Raster) LineTo(x, y float64) {
	r.dc.LineTo(x, y)
}

func (r *Raster) Stroke() error {
	return r.dc.Stroke()
}

// Image returns a snapshot of the current pixels.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

func (r *Raster) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

func (r *Raster) Close() error {
	return r.dc.Close()
}

// SetLogger routes the rasterizer's diagnostics to l. Pass nil to silence it.
func SetLogger(l *slog.Logger) {
	gg.SetLogger(l)
}
