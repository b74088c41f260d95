package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"InkOverlay/internal/config"
	"InkOverlay/internal/overlay"
)

const samplePage = `# Annotate this page

Everything under the overlay stays untouched while you draw.

* Drag to draw with the selected color and size.
* Switch to the eraser and drag across a stroke to remove it.
* Press **Escape** or the close button to dismiss the overlay.
* Press **Ctrl+Shift+A** to bring it back.
`

// RunApp opens the page window and injects the annotation overlay into it.
func RunApp(cfg *config.Config) {
	myApp := app.New()
	myWindow := myApp.NewWindow(cfg.Window.Title)
	myWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	content := widget.NewRichTextFromMarkdown(samplePage)
	content.Wrapping = fyne.TextWrapWord
	page := NewPageHost(myWindow, content, cfg.Palette())
	registry := overlay.NewRegistry(cfg.Overlay.ID, cfg.SessionOptions())

	inject := func() {
		size := myWindow.Canvas().Size()
		if size.Width <= 0 || size.Height <= 0 {
			size = fyne.NewSize(cfg.Window.Width, cfg.Window.Height)
		}
		if _, _, err := registry.Inject(page, int(size.Width), int(size.Height)); err != nil {
			log.Printf("[UI] Injection failed: %v", err)
		}
	}

	bindDismissKey(myWindow.Canvas(), page, registry.ID)
	myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyA,
		Modifier: fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift,
	}, func(fyne.Shortcut) {
		inject()
	})

	myWindow.SetContent(page.CanvasObject())
	inject()
	myWindow.ShowAndRun()
}

// bindDismissKey forwards key presses to the overlay mounted under id. On
// desktop the key-down hook is used because typed keys go to the focused
// widget first and never reach the canvas.
func bindDismissKey(c fyne.Canvas, page overlay.Page, id string) {
	forward := func(e *fyne.KeyEvent) {
		if s, ok := page.Lookup(id); ok {
			s.KeyDown(string(e.Name))
		}
	}
	if dc, ok := c.(desktop.Canvas); ok {
		dc.SetOnKeyDown(forward)
		return
	}
	c.SetOnTypedKey(forward)
}
