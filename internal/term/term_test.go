package term

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"bitlife/pkg/pattern"
	simlife "bitlife/pkg/sims/life"
)

func newBlinkerViewer(t *testing.T) (*Viewer, tcell.SimulationScreen, *simlife.Automaton) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 12)

	blinker, _ := pattern.Lookup("blinker")
	cfg := simlife.DefaultConfig()
	cfg.Width, cfg.Height = 8, 8
	cfg.Shape = &blinker
	sim, err := simlife.NewWithConfig(cfg)
	require.NoError(t, err)
	sim.Reset(0)
	return NewViewer(screen, sim, 60, 0), screen, sim
}

func liveAt(screen tcell.Screen, x, y int) bool {
	r, _, _, _ := screen.GetContent(2*x, y+1)
	return r == '█'
}

func TestDrawPaintsLiveCells(t *testing.T) {
	v, screen, sim := newBlinkerViewer(t)
	v.Draw()

	size := sim.Size()
	cells := sim.Cells()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			require.Equal(t, cells[y*size.W+x] == 1, liveAt(screen, x, y), "cell (%d,%d)", x, y)
		}
	}
	r, _, _, _ := screen.GetContent(0, 0)
	require.Equal(t, 'l', r, "status bar starts with the sim name")
}

func TestHandleKeys(t *testing.T) {
	v, _, sim := newBlinkerViewer(t)

	require.False(t, v.Handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)))
	require.True(t, v.Paused())

	require.False(t, v.Handle(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone)))
	require.Equal(t, 1, sim.Generation())

	require.False(t, v.Handle(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)))
	require.Equal(t, 0, sim.Generation())

	require.True(t, v.Handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	require.True(t, v.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestRunStopsOnContextCancel(t *testing.T) {
	v, _, sim := newBlinkerViewer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := v.Run(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Positive(t, sim.Generation(), "the timer should have stepped at least once")
}

func TestRunQuitsOnKey(t *testing.T) {
	v, screen, _ := newBlinkerViewer(t)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	require.NoError(t, v.Run(context.Background()))
}
