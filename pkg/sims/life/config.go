package life

import (
	"strconv"

	"bitlife/pkg/pattern"
)

// Config holds parameters for the Life simulation.
type Config struct {
	Width  int
	Height int
	// Shape seeds the grid centre on Reset. When nil the grid is filled
	// randomly at Density.
	Shape   *pattern.Pattern
	Density float64
}

// DefaultConfig returns the default configuration: the acorn on a 768x368 torus.
func DefaultConfig() Config {
	acorn, _ := pattern.Lookup("acorn")
	return Config{Width: 768, Height: 368, Shape: &acorn, Density: 0.25}
}

// FromMap populates a Config from a string map. Keys are w, h, pattern and
// density; pattern "random" selects random seeding. Invalid values keep the
// defaults, and widths are rounded up to a multiple of 8.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = roundUpBlock(parsed)
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		if v == "random" {
			c.Shape = nil
		} else if p, found := pattern.Lookup(v); found {
			c.Shape = &p
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	return c
}

func roundUpBlock(w int) int {
	return (w + 7) / 8 * 8
}
