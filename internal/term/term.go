// Package term renders a simulation in a terminal using tcell.
package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"bitlife/internal/ui"
	"bitlife/pkg/core"
)

const frameInterval = 16 * time.Millisecond

// Viewer draws each cell as two terminal columns below a one-line status bar.
type Viewer struct {
	screen tcell.Screen
	sim    core.Sim
	timer  *core.FixedStep
	seed   int64
	paused bool
}

// NewViewer returns a viewer stepping sim at tps ticks per second. The
// screen must already be initialised.
func NewViewer(screen tcell.Screen, sim core.Sim, tps int, seed int64) *Viewer {
	return &Viewer{screen: screen, sim: sim, timer: core.NewFixedStep(tps), seed: seed}
}

// Run draws and steps until the user quits or ctx is cancelled.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if v.Handle(ev) {
				return nil
			}
			v.Draw()
		case <-ticker.C:
			if !v.paused && v.timer.ShouldStep() {
				v.sim.Step()
				v.Draw()
			}
		}
	}
}

// Handle applies one input event and reports whether the viewer should quit.
func (v *Viewer) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case ' ':
				v.paused = !v.paused
			case 'n':
				v.sim.Step()
			case 'r':
				v.sim.Reset(v.seed)
			}
		}
	}
	return false
}

// Paused reports whether stepping is suspended.
func (v *Viewer) Paused() bool { return v.paused }

// Draw paints the status bar and as much of the grid as fits on screen.
func (v *Viewer) Draw() {
	v.screen.Clear()
	status := tcell.StyleDefault.Reverse(true)
	for i, r := range ui.StatusLine(v.sim, v.paused) {
		v.screen.SetContent(i, 0, r, nil, status)
	}

	sw, sh := v.screen.Size()
	size := v.sim.Size()
	cells := v.sim.Cells()
	live := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for y := 0; y < size.H && y+1 < sh; y++ {
		for x := 0; x < size.W && 2*x+1 < sw; x++ {
			if cells[y*size.W+x] == 0 {
				continue
			}
			v.screen.SetContent(2*x, y+1, '█', nil, live)
			v.screen.SetContent(2*x+1, y+1, '█', nil, live)
		}
	}
	v.screen.Show()
}
