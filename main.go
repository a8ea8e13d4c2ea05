package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/leonelquinteros/gotext"

	"arrowboard/pkg/game/config"
	"arrowboard/pkg/game/gameplay"
	"arrowboard/pkg/game/renderer"
	ebitenrenderer "arrowboard/pkg/game/renderer/ebiten"
	"arrowboard/pkg/game/renderer/tui"
)

func initGettext(cfg config.Config) {
	gotext.Configure(cfg.Locales, cfg.Locale, "default")
}

func newRenderer(cfg config.Config) renderer.Renderer {
	if cfg.Renderer == config.RendererTUI {
		return tui.New(cfg.LogFile)
	}
	return ebitenrenderer.New()
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	initGettext(cfg)

	if err := cfg.ApplyKeys(); err != nil {
		log.Fatalf("Cannot apply key bindings: %v", err)
	}

	gen, err := cfg.Generator()
	if err != nil {
		log.Fatalf("Cannot create board generator: %v", err)
	}

	opts := gameplay.Options{
		Size:      cfg.Size,
		Interval:  cfg.Interval.Duration,
		Generator: gen,
	}
	if cfg.Seed != 0 {
		opts.Rand = rand.New(rand.NewSource(cfg.Seed))
	}

	sim, err := gameplay.NewSimulation(opts)
	if err != nil {
		log.Fatalf("Cannot build board: %v", err)
	}
	defer sim.Close()

	rend := newRenderer(cfg)
	if err := rend.Init(); err != nil {
		log.Fatalf("Cannot initialise %s renderer: %v", cfg.Renderer, err)
	}

	log.Printf("Starting %s renderer with a %dx%d board, advancing every %v", cfg.Renderer, cfg.Size, cfg.Size, sim.Interval())
	sim.Attach(renderer.Multi{rend, renderer.LogObserver{}})

	if err := rend.Run(sim); err != nil {
		log.Fatalf("Renderer stopped: %v", err)
	}
}
