package main

import (
	"log"
	"log/slog"
	"os"

	"InkOverlay/internal/config"
	"InkOverlay/internal/render"
	"InkOverlay/internal/ui"
)

func main() {
	path := os.Getenv(config.EnvPath)
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Log.Verbose {
		render.SetLogger(slog.Default())
	}

	log.Printf("Starting overlay %q (dismiss with %s)", cfg.Overlay.ID, cfg.Overlay.DismissKey)
	ui.RunApp(cfg)
}
