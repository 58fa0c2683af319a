package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitlife/pkg/core"
)

func TestByteGridWrap(t *testing.T) {
	g := core.NewByteGrid(4, 3)
	cases := []struct{ x, y, wx, wy int }{
		{0, 0, 0, 0},
		{-1, 0, 3, 0},
		{4, 0, 0, 0},
		{0, -1, 0, 2},
		{0, 3, 0, 0},
		{-5, -4, 3, 2},
	}
	for _, c := range cases {
		x, y := g.Wrap(c.x, c.y)
		assert.Equal(t, c.wx, x, "x for (%d,%d)", c.x, c.y)
		assert.Equal(t, c.wy, y, "y for (%d,%d)", c.x, c.y)
	}
}

func TestByteGridSetAndClear(t *testing.T) {
	g := core.NewByteGrid(4, 3)
	g.Set(-1, -1, 1)
	require.Equal(t, uint8(1), g.At(3, 2))
	require.Equal(t, uint8(1), g.Cells()[g.Index(3, 2)])
	g.Clear()
	for _, c := range g.Cells() {
		require.Zero(t, c)
	}
}

func TestByteGridClampsDimensions(t *testing.T) {
	g := core.NewByteGrid(0, -2)
	require.Equal(t, 1, g.W)
	require.Equal(t, 1, g.H)
	require.Len(t, g.Cells(), 1)
}

func TestRNGDeterministic(t *testing.T) {
	a, b := core.NewRNG(7), core.NewRNG(7)
	for i := 0; i < 64; i++ {
		require.Equal(t, a.IntN(100), b.IntN(100))
	}
	require.False(t, a.Chance(0))
	require.True(t, a.Chance(1))
	require.Zero(t, a.IntN(0))
}

type nopSim struct{}

func (nopSim) Name() string { return "nop" }
func (nopSim) Size() core.Size { return core.Size{W: 1, H: 1} }
func (nopSim) Reset(int64) {}
func (nopSim) Step() {}
func (nopSim) Cells() []uint8 { return []uint8{0} }

func TestRegistry(t *testing.T) {
	core.Register("", func(map[string]string) core.Sim { return nopSim{} })
	core.Register("nop-missing", nil)
	_, ok := core.Lookup("nop-missing")
	require.False(t, ok)

	core.Register("nop", func(map[string]string) core.Sim { return nopSim{} })
	f, ok := core.Lookup("nop")
	require.True(t, ok)
	require.Equal(t, "nop", f(nil).Name())
	require.Contains(t, core.Names(), "nop")
	require.NotContains(t, core.Names(), "")
}
