package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"bitlife/internal/bench"
	"bitlife/pkg/pattern"
)

func main() {
	width := flag.Int("w", 768, "grid width in cells (multiple of 8)")
	height := flag.Int("h", 368, "grid height in cells")
	gens := flag.Int("gens", 1000, "generations to step per trial")
	trials := flag.Int("trials", 4, "number of independent trials")
	workers := flag.Int("workers", runtime.NumCPU(), "trials to run concurrently")
	name := flag.String("pattern", "acorn", "built-in pattern ("+strings.Join(pattern.Names(), ", ")+") or \"random\"")
	density := flag.Float64("density", 0.25, "live cell probability for random seeding")
	seed := flag.Int64("seed", 42, "base seed for random trials; trial i uses seed+i")
	flag.Parse()

	opts := bench.Options{
		Width:       *width,
		Height:      *height,
		Generations: *gens,
		Trials:      *trials,
		Workers:     *workers,
		Density:     *density,
		Seed:        *seed,
	}
	if *name != "random" {
		p, ok := pattern.Lookup(*name)
		if !ok {
			log.Fatalf("unknown pattern %q", *name)
		}
		opts.Shape = &p
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Stepping %d trial(s) of %dx%d for %d generations (%d workers, seeded with %s)\n",
		opts.Trials, opts.Width, opts.Height, opts.Generations, opts.Workers, *name)

	start := time.Now()
	results, err := bench.Run(ctx, opts)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	for _, t := range results {
		fmt.Printf("trial %2d: %8.1f gens/s  elapsed=%s  population=%d\n",
			t.ID, t.GensPerSecond(), t.Elapsed.Round(time.Millisecond), t.FinalPopulation)
	}
	s := bench.Summarize(results)
	fmt.Printf("\n%d generations in %s: mean %.1f gens/s (min %.1f, max %.1f)\n",
		s.Generations, elapsed.Round(time.Millisecond), s.Mean, s.Min, s.Max)
}
