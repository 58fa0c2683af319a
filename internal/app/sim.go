package app

import (
	"fmt"
	"os"

	"bitlife/pkg/core"
	"bitlife/pkg/pattern"
)

type patternLoader interface {
	Load(p pattern.Pattern)
}

// NewSim builds and seeds the simulation selected by cfg.
func NewSim(cfg *Config) (core.Sim, error) {
	factory, ok := core.Lookup(cfg.Sim)
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (available: %v)", cfg.Sim, core.Names())
	}
	sim := factory(cfg.SimOptions())

	if cfg.File == "" {
		sim.Reset(cfg.Seed)
		return sim, nil
	}
	loader, ok := sim.(patternLoader)
	if !ok {
		return nil, fmt.Errorf("sim %q cannot load pattern files", cfg.Sim)
	}
	data, err := os.ReadFile(cfg.File)
	if err != nil {
		return nil, fmt.Errorf("read pattern: %w", err)
	}
	p, err := pattern.Parse(cfg.File, string(data))
	if err != nil {
		return nil, err
	}
	loader.Load(p)
	return sim, nil
}
