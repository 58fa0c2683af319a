package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"bitlife/internal/app"
	"bitlife/internal/term"
	_ "bitlife/pkg/sims/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height, cfg.TPS = 80, 48, 15
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := app.NewSim(cfg)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = term.NewViewer(screen, sim, cfg.TPS, cfg.Seed).Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
