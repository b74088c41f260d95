package ui

import (
	"fmt"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"InkOverlay/internal/overlay"
	"InkOverlay/internal/state"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.NRGBA
	OnTapped func(color.NRGBA)
}

func newColorSwatch(c color.NRGBA, tapped func(color.NRGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// Toolbar is the floating control panel of one overlay session.
type Toolbar struct {
	session *overlay.Session
	status  *widget.Label
	slider  *widget.Slider
	window  fyne.Window
	object  fyne.CanvasObject
}

// NewToolbar builds the color, size, mode, clear and close controls for s.
// The custom color picker opens as a dialog over win.
func NewToolbar(s *overlay.Session, palette []color.NRGBA, win fyne.Window) *Toolbar {
	t := &Toolbar{session: s, status: widget.NewLabel(""), window: win}

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() { t.setMode(state.ModeDraw) }), // Pen
		widget.NewToolbarAction(theme.ContentClearIcon(), func() { t.setMode(state.ModeErase) }),  // Eraser
		widget.NewToolbarAction(theme.ColorPaletteIcon(), func() { t.pickCustomColor() }),         // Custom color
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DeleteIcon(), func() { s.ClearAll() }), // Clear
		widget.NewToolbarAction(theme.CancelIcon(), func() { s.Close() }),    // Close
	)

	// --- Color Palette ---
	swatches := container.NewHBox()
	for _, c := range palette {
		swatches.Add(newColorSwatch(c, t.setColor))
	}

	// --- Stroke Width Slider ---
	t.slider = widget.NewSlider(state.MinWidth, state.MaxWidth)
	t.slider.Step = 1
	t.slider.SetValue(s.Style().Width)
	t.slider.OnChanged = func(val float64) {
		s.SetWidth(val)
		t.updateStatus()
	}
	// The slider keeps focus after a drag and would swallow the dismiss key.
	t.slider.OnChangeEnded = func(float64) {
		if t.window != nil {
			t.window.Canvas().Unfocus()
		}
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(140, 35)), t.slider)

	bg := canvas.NewRectangle(color.NRGBA{R: 250, G: 250, B: 250, A: 235})
	bg.CornerRadius = 6
	bg.StrokeColor = color.Gray{Y: 180}
	bg.StrokeWidth = 1

	t.object = container.NewStack(bg, container.NewHBox(
		tb,
		widget.NewSeparator(),
		swatches,
		widget.NewSeparator(),
		sliderContainer,
		t.status,
	))
	t.updateStatus()
	return t
}

// CanvasObject returns the toolbar's root object.
func (t *Toolbar) CanvasObject() fyne.CanvasObject {
	return t.object
}

func (t *Toolbar) setMode(m state.Mode) {
	t.session.SetMode(m)
	t.updateStatus()
}

func (t *Toolbar) setColor(c color.NRGBA) {
	t.session.SetColor(c)
	if t.session.Mode() == state.ModeErase {
		t.setMode(state.ModeDraw)
		return
	}
	t.updateStatus()
}

// pickCustomColor opens the advanced color picker seeded with the current
// pen color. It returns nil when the toolbar has no window to attach to.
func (t *Toolbar) pickCustomColor() *dialog.ColorPickerDialog {
	if t.window == nil {
		log.Println("[UI] No window for the color picker")
		return nil
	}
	picker := dialog.NewColorPicker("Pen color", "Pick any color", t.setCustomColor, t.window)
	picker.Advanced = true
	picker.Show()
	picker.SetColor(t.session.Style().Color)
	return picker
}

func (t *Toolbar) setCustomColor(c color.Color) {
	t.setColor(state.ToNRGBA(c))
}

func (t *Toolbar) updateStatus() {
	st := t.session.Style()
	t.status.SetText(fmt.Sprintf("%s %s %gpx", t.session.Mode(), state.ColorHex(st.Color), st.Width))
}
