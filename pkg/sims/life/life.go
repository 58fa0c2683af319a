package life

import (
	"bitlife/pkg/core"
	lifegrid "bitlife/pkg/life"
	"bitlife/pkg/pattern"
)

// Automaton drives a chain of immutable Life generations and exposes the
// current one as a byte-per-cell buffer for renderers.
type Automaton struct {
	cfg     Config
	grid    *lifegrid.Grid
	gen     int
	display *core.ByteGrid
}

// New returns an Automaton with the default configuration resized to w x h.
func New(w, h int) (*Automaton, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns an empty Automaton. Call Reset to seed it.
func NewWithConfig(cfg Config) (*Automaton, error) {
	g, err := lifegrid.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	return &Automaton{cfg: cfg, grid: g, display: core.NewByteGrid(cfg.Width, cfg.Height)}, nil
}

// Name returns the simulation identifier.
func (a *Automaton) Name() string { return "life" }

// Size returns the grid dimensions.
func (a *Automaton) Size() core.Size { return core.Size{W: a.cfg.Width, H: a.cfg.Height} }

// Cells exposes the current generation with one byte per cell, 1 for live.
func (a *Automaton) Cells() []uint8 { return a.display.Cells() }

// Grid returns the current generation.
func (a *Automaton) Grid() *lifegrid.Grid { return a.grid }

// Generation returns the number of steps since the last Reset.
func (a *Automaton) Generation() int { return a.gen }

// Population returns the number of live cells in the current generation.
func (a *Automaton) Population() int { return a.grid.Population() }

// Reset starts over from generation zero. A configured shape is placed in
// the centre; otherwise cells are seeded randomly from seed.
func (a *Automaton) Reset(seed int64) {
	empty, _ := lifegrid.New(a.cfg.Width, a.cfg.Height)
	a.grid = empty
	if a.cfg.Shape != nil {
		if g, err := pattern.Centered(empty, *a.cfg.Shape); err == nil {
			a.grid = g
		}
	} else {
		a.grid = pattern.Random(empty, a.cfg.Density, core.NewRNG(seed))
	}
	a.gen = 0
	a.refresh()
}

// Load replaces the configured shape and resets to it.
func (a *Automaton) Load(p pattern.Pattern) {
	a.cfg.Shape = &p
	a.Reset(0)
}

// Step advances the simulation by one generation.
func (a *Automaton) Step() {
	a.grid = a.grid.Step()
	a.gen++
	a.refresh()
}

func (a *Automaton) refresh() {
	a.display.Clear()
	for c := range a.grid.LiveCells() {
		a.display.Set(c.X, c.Y, 1)
	}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		a, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			panic(err)
		}
		return a
	})
}
