// Command snowfall-term runs the falling-snow field in a terminal.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"snowfall/internal/app"
	"snowfall/internal/audio"
	"snowfall/internal/term"
	"snowfall/pkg/snow"
)

func main() {
	cfg := app.NewConfig()
	cfg.Width = 40
	cfg.Height = 24
	cfg.TPS = 10
	cfg.Bind(flag.CommandLine)
	frames := flag.Int("frames", 1001, "stop after this many frames (0 runs until quit)")
	withAudio := flag.Bool("audio", false, "play a wind bed that follows snow activity")
	volume := flag.Float64("volume", -1, "audio level in base-2 steps, 0 is unchanged")
	flag.Parse()

	field, err := snow.NewField(snow.FromMap(cfg.SimConfig()))
	if err != nil {
		log.Fatal(err)
	}
	field.Reset(cfg.Seed)

	var player *audio.Player
	if *withAudio {
		if player, err = audio.Play(*volume); err != nil {
			log.Printf("audio disabled: %v", err)
		}
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}
	screen.EnableMouse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	interior := float64((field.Size().W - 2) * field.Size().H)
	loop := term.NewLoop(screen, field, term.Options{
		TPS:    cfg.TPS,
		Frames: *frames,
		Seed:   cfg.Seed,
		OnFrame: func(st snow.Stats) {
			player.SetActivity(float64(st.Moved) / interior)
		},
	})
	err = loop.Run(ctx)
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
