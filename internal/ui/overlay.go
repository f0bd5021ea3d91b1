//go:build ebiten

package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mold-ca/internal/core"
)

type tickProvider interface {
	Ticks() uint64
}

// Overlay draws an optional status line on top of the base simulation.
type Overlay struct {
	sim  core.Sim
	show bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim, show: true}
}

// Update toggles overlay visibility.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.show = !o.show
	}
}

// Draw renders the status line onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, status string) {
	if !o.show {
		return
	}
	line := o.sim.Name()
	if tp, ok := o.sim.(tickProvider); ok {
		line = fmt.Sprintf("%s tick %d", line, tp.Ticks())
	}
	if status != "" {
		line += "  " + status
	}
	ebitenutil.DebugPrint(screen, line)
}
