//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"snowfall/internal/app"
	"snowfall/pkg/core"
	_ "snowfall/pkg/snow"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := core.New(cfg.Sim, cfg.SimConfig())
	if err != nil {
		log.Fatal(err)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed, cfg.HUD)
	size := sim.Size()

	ebiten.SetWindowTitle("snowfall - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+max(cfg.HUD, 0), size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
