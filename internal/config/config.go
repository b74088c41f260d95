package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"log"

	"github.com/BurntSushi/toml"

	"InkOverlay/internal/overlay"
	"InkOverlay/internal/state"
)

// EnvPath names the environment variable holding the config file path.
const EnvPath = "INKOVERLAY_CONFIG"

// Config represents the full InkOverlay configuration
type Config struct {
	Overlay OverlayConfig `toml:"overlay"`
	Toolbar ToolbarConfig `toml:"toolbar"`
	Window  WindowConfig  `toml:"window"`
	Log     LogConfig     `toml:"log"`
}

// OverlayConfig contains drawing defaults for new sessions
type OverlayConfig struct {
	ID           string  `toml:"id"`
	DismissKey   string  `toml:"dismiss_key"`
	DefaultColor string  `toml:"default_color"`
	DefaultWidth float64 `toml:"default_width"`
}

// ToolbarConfig contains the toolbar's color palette
type ToolbarConfig struct {
	Palette []string `toml:"palette"`
}

// WindowConfig contains the host window settings
type WindowConfig struct {
	Title  string  `toml:"title"`
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Verbose bool `toml:"verbose"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Overlay: OverlayConfig{
			ID:           overlay.DefaultID,
			DismissKey:   "Escape",
			DefaultColor: "black",
			DefaultWidth: state.DefaultWidth,
		},
		Toolbar: ToolbarConfig{
			Palette: []string{"black", "#ff0000", "#00aa00", "#0000ff", "#ffcc00"},
		},
		Window: WindowConfig{
			Title:  "InkOverlay",
			Width:  1024,
			Height: 768,
		},
	}
}

// Load reads the TOML file at path over the defaults. A missing file
// yields the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("[CONFIG] %s not found, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	for _, key := range meta.Undecoded() {
		log.Printf("[CONFIG] Ignoring unknown key %q in %s", key.String(), path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the config for values the overlay cannot use.
func (c *Config) Validate() error {
	if c.Overlay.ID == "" {
		return errors.New("overlay.id must not be empty")
	}
	if c.Overlay.DismissKey == "" {
		return errors.New("overlay.dismiss_key must not be empty")
	}
	if _, err := state.ParseColor(c.Overlay.DefaultColor); err != nil {
		return fmt.Errorf("overlay.default_color: %w", err)
	}
	if w := c.Overlay.DefaultWidth; w < state.MinWidth || w > state.MaxWidth {
		return fmt.Errorf("overlay.default_width %g outside [%d, %d]", w, state.MinWidth, state.MaxWidth)
	}
	if len(c.Toolbar.Palette) == 0 {
		return errors.New("toolbar.palette must list at least one color")
	}
	for _, p := range c.Toolbar.Palette {
		if _, err := state.ParseColor(p); err != nil {
			return fmt.Errorf("toolbar.palette: %w", err)
		}
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %gx%g must be positive", c.Window.Width, c.Window.Height)
	}
	return nil
}

// Palette returns the parsed toolbar colors. Validate must have passed.
func (c *Config) Palette() []color.NRGBA {
	out := make([]color.NRGBA, 0, len(c.Toolbar.Palette))
	for _, p := range c.Toolbar.Palette {
		col, _ := state.ParseColor(p)
		out = append(out, col)
	}
	return out
}

// SessionOptions converts the overlay section into session options.
func (c *Config) SessionOptions() overlay.Options {
	col, _ := state.ParseColor(c.Overlay.DefaultColor)
	return overlay.Options{
		Style:      state.Style{Color: col, Width: c.Overlay.DefaultWidth},
		DismissKey: c.Overlay.DismissKey,
	}
}
