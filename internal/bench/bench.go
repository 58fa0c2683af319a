// Package bench times independent Life runs.
package bench

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"bitlife/pkg/core"
	"bitlife/pkg/life"
	"bitlife/pkg/pattern"
)

// ctxCheckInterval is how many generations run between cancellation checks.
const ctxCheckInterval = 64

// Options configures a benchmark run.
type Options struct {
	Width, Height int
	Generations   int
	Trials        int
	Workers       int
	// Shape seeds every trial when set; otherwise trials are random at Density.
	Shape   *pattern.Pattern
	Density float64
	Seed    int64
}

// Trial is the outcome of one independent run.
type Trial struct {
	ID              int
	Generations     int
	Elapsed         time.Duration
	FinalPopulation int
}

// GensPerSecond returns the stepping rate of the trial.
func (t Trial) GensPerSecond() float64 {
	if t.Elapsed <= 0 {
		return 0
	}
	return float64(t.Generations) / t.Elapsed.Seconds()
}

// Run executes opts.Trials runs, at most opts.Workers at a time. Each trial
// owns its own chain of grids. Results are ordered by trial ID.
func Run(ctx context.Context, opts Options) ([]Trial, error) {
	if opts.Trials <= 0 || opts.Generations < 0 {
		return nil, fmt.Errorf("bench: need at least one trial and non-negative generations, got %d and %d", opts.Trials, opts.Generations)
	}
	empty, err := life.New(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}

	results := make([]Trial, opts.Trials)
	eg, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		eg.SetLimit(opts.Workers)
	}
	for i := range results {
		eg.Go(func() error {
			var g *life.Grid
			if opts.Shape != nil {
				placed, err := pattern.Centered(empty, *opts.Shape)
				if err != nil {
					return err
				}
				g = placed
			} else {
				g = pattern.Random(empty, opts.Density, newTrialRNG(opts.Seed, i))
			}

			start := time.Now()
			for gen := 0; gen < opts.Generations; gen++ {
				if gen%ctxCheckInterval == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				g = g.Step()
			}
			results[i] = Trial{
				ID:              i,
				Generations:     opts.Generations,
				Elapsed:         time.Since(start),
				FinalPopulation: g.Population(),
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func newTrialRNG(seed int64, id int) *core.RNG {
	return core.NewRNG(seed + int64(id))
}

// Summary aggregates trial rates.
type Summary struct {
	Trials         int
	Generations    int
	Mean, Min, Max float64
}

// Summarize computes generation-rate statistics over trials.
func Summarize(trials []Trial) Summary {
	var s Summary
	for i, t := range trials {
		rate := t.GensPerSecond()
		s.Trials++
		s.Generations += t.Generations
		s.Mean += rate
		if i == 0 || rate < s.Min {
			s.Min = rate
		}
		if rate > s.Max {
			s.Max = rate
		}
	}
	if s.Trials > 0 {
		s.Mean /= float64(s.Trials)
	}
	return s
}
