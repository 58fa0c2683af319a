//go:build ebiten

package ui

import (
	"image/color"

	"bitlife/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	overlayPadding  = 4
	overlayBaseline = 13
	overlayHeight   = overlayBaseline + 2*overlayPadding
)

// Overlay draws a status bar with the generation and population on top of
// the simulation. H toggles it.
type Overlay struct {
	sim    core.Sim
	hidden bool
	pixel  *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim) *Overlay {
	o := &Overlay{sim: sim}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update allows the overlay to update internal state.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.hidden = !o.hidden
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, paused bool) {
	if o.hidden {
		return
	}
	face := basicfont.Face7x13
	line := StatusLine(o.sim, paused)
	bounds := text.BoundString(face, line)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bounds.Dx()+2*overlayPadding), overlayHeight)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 16, G: 16, B: 24, A: 200})
	screen.DrawImage(o.pixel, op)

	text.Draw(screen, line, face, overlayPadding, overlayPadding+overlayBaseline-2, color.RGBA{R: 220, G: 220, B: 230, A: 255})
}
