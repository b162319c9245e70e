package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/wave-spheres/internal/config"
	"github.com/iburimskiy/wave-spheres/internal/game"
	"github.com/iburimskiy/wave-spheres/internal/settings"
	"github.com/iburimskiy/wave-spheres/internal/tone"
)

func main() {
	scenePath := flag.String("config", "", "path to a YAML scene file")
	flag.Parse()

	cfg := config.Default()
	if *scenePath != "" {
		var err error
		if cfg, err = config.Load(*scenePath); err != nil {
			log.Fatal(err)
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TPS)

	g, err := game.New(cfg, settings.Open(), tone.NewPlayer())
	if err != nil {
		log.Fatal(err)
	}
	err = ebiten.RunGame(g)
	g.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
