package life

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bitlife/pkg/core"
	"bitlife/pkg/pattern"
)

func TestBlinkerOscillation(t *testing.T) {
	blinker := pattern.MustParse("vertical", `
.....
..O..
..O..
..O..
.....`)
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 8, 5
	cfg.Shape = &blinker
	life, err := NewWithConfig(cfg)
	require.NoError(t, err)
	life.Reset(0)

	w := life.Size().W
	// Centred at ((8-5)/2, 0) = (1, 0), so the column sits at x=3.
	check := func(expects map[[2]int]bool) {
		t.Helper()
		cells := life.Cells()
		for y := 0; y < 5; y++ {
			for x := 0; x < w; x++ {
				alive := cells[y*w+x] == 1
				require.Equal(t, expects[[2]int{x, y}], alive, "cell (%d,%d) generation %d", x, y, life.Generation())
			}
		}
	}

	check(map[[2]int]bool{{3, 1}: true, {3, 2}: true, {3, 3}: true})
	life.Step()
	check(map[[2]int]bool{{2, 2}: true, {3, 2}: true, {4, 2}: true})
	life.Step()
	check(map[[2]int]bool{{3, 1}: true, {3, 2}: true, {3, 3}: true})
	require.Equal(t, 2, life.Generation())
	require.Equal(t, 3, life.Population())
}

func TestResetRandomDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 32, 16
	cfg.Shape = nil
	cfg.Density = 0.4

	a, err := NewWithConfig(cfg)
	require.NoError(t, err)
	a.Reset(99)
	first := append([]uint8(nil), a.Cells()...)
	require.Positive(t, a.Population())

	a.Step()
	a.Reset(99)
	require.Equal(t, first, a.Cells())
	require.Zero(t, a.Generation())

	a.Reset(100)
	require.NotEqual(t, first, a.Cells())
}

func TestStepKeepsPriorGeneration(t *testing.T) {
	a, err := New(64, 64)
	require.NoError(t, err)
	a.Reset(0)
	before := a.Grid()
	snapshot := before.String()
	a.Step()
	require.Equal(t, snapshot, before.String())
	require.False(t, before.Equal(a.Grid()))
}

func TestLoad(t *testing.T) {
	a, err := New(16, 16)
	require.NoError(t, err)
	block, _ := pattern.Lookup("block")
	a.Load(block)
	require.Equal(t, 4, a.Population())
	a.Step()
	require.Equal(t, 4, a.Population())
}

func TestNewRejectsBadWidth(t *testing.T) {
	_, err := New(12, 8)
	require.Error(t, err)
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "100", "h": "50", "pattern": "glider", "density": "0.5"})
	require.Equal(t, 104, c.Width)
	require.Equal(t, 50, c.Height)
	require.NotNil(t, c.Shape)
	require.Equal(t, "glider", c.Shape.Name)
	require.Equal(t, 0.5, c.Density)

	c = FromMap(map[string]string{"w": "-3", "h": "x", "pattern": "random", "density": "2"})
	def := DefaultConfig()
	require.Equal(t, def.Width, c.Width)
	require.Equal(t, def.Height, c.Height)
	require.Nil(t, c.Shape)
	require.Equal(t, def.Density, c.Density)

	c = FromMap(map[string]string{"pattern": "no-such-thing"})
	require.Equal(t, "acorn", c.Shape.Name)
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Lookup("life")
	require.True(t, ok)
	sim := factory(map[string]string{"w": "16", "h": "8", "pattern": "blinker"})
	sim.Reset(1)
	require.Equal(t, core.Size{W: 16, H: 8}, sim.Size())
	stats, ok := sim.(core.Stats)
	require.True(t, ok)
	require.Equal(t, 3, stats.Population())
}
