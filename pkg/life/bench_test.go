package life_test

import (
	"testing"

	"bitlife/pkg/life"
)

// BenchmarkStepSparse measures a 768x368 grid seeded with the acorn, where
// most blocks are skipped.
func BenchmarkStepSparse(b *testing.B) {
	g := withCells(b, mustNew(b, 768, 368),
		life.LifeCell{X: 254, Y: 203},
		life.LifeCell{X: 256, Y: 204},
		life.LifeCell{X: 253, Y: 205},
		life.LifeCell{X: 254, Y: 205},
		life.LifeCell{X: 257, Y: 205},
		life.LifeCell{X: 258, Y: 205},
		life.LifeCell{X: 259, Y: 205},
	)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g = g.Step()
	}
}

// BenchmarkStepDense measures a 256x256 grid at 30% density.
func BenchmarkStepDense(b *testing.B) {
	g := randomGrid(b, 256, 256, 0.3, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Step()
	}
}

func BenchmarkLiveCells(b *testing.B) {
	g := randomGrid(b, 256, 256, 0.3, 42)
	b.ResetTimer()
	total := 0
	for i := 0; i < b.N; i++ {
		for range g.LiveCells() {
			total++
		}
	}
	b.ReportMetric(float64(total)/float64(b.N), "cells/op")
}
