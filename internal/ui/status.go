package ui

import (
	"fmt"

	"bitlife/pkg/core"
)

// StatusLine summarises the simulation for display above the grid.
func StatusLine(sim core.Sim, paused bool) string {
	size := sim.Size()
	line := fmt.Sprintf("%s %dx%d", sim.Name(), size.W, size.H)
	if stats, ok := sim.(core.Stats); ok {
		line += fmt.Sprintf("  gen %d  pop %d", stats.Generation(), stats.Population())
	}
	if paused {
		line += "  [paused]"
	}
	return line
}
