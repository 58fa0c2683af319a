package pattern

import (
	"bitlife/pkg/core"
	"bitlife/pkg/life"
)

// Random returns a new grid where each dead cell of g becomes live with
// probability density.
func Random(g *life.Grid, density float64, rng *core.RNG) *life.Grid {
	var cells []life.LifeCell
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if rng.Chance(density) {
				cells = append(cells, life.LifeCell{X: x, Y: y})
			}
		}
	}
	// Every coordinate lies inside g.
	next, _ := g.SetLiveCells(cells...)
	return next
}
