// Command advent-runner is the windowed runner game.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/advent/config"
	"github.com/plus3/advent/render"
)

func main() {
	flags := config.NewFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Load(flags.Path, nil)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	flags.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	w, h := render.WindowSize(cfg.Window.Width, cfg.Window.MaxScale)
	app, err := NewApp(cfg, w, h)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer app.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	log.Printf("Window %dx%d, seed %d, sprites %q", w, h, cfg.Tuning.Seed, cfg.Sprites)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatalf("Game exited: %v", err)
	}
}
