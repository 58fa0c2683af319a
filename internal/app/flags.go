package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim     string
	Scale   int
	TPS     int
	Seed    int64
	Width   int
	Height  int
	Pattern string
	File    string
	Density float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 2, TPS: 60, Seed: 42, Width: 768, Height: 368, Pattern: "acorn", Density: 0.25}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells (rounded up to a multiple of 8)")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "built-in pattern to seed, or \"random\"")
	fs.StringVar(&c.File, "file", c.File, "plaintext pattern file to seed (overrides -pattern)")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell probability for random seeding")
}

// SimOptions renders the config as the string map sim factories accept.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"pattern": c.Pattern,
		"density": strconv.FormatFloat(c.Density, 'g', -1, 64),
	}
}
