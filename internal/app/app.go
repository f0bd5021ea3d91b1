//go:build ebiten

package app

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mold-ca/internal/core"
	"mold-ca/internal/render"
	"mold-ca/internal/ui"
)

const (
	minZoom = 1
	maxZoom = 16
	panStep = 8
)

// Game adapts a core simulation to the ebiten.Game interface, adding
// pan/zoom navigation and a live light-level control.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay

	window core.Size
	scale  int
	pan    core.Point
	zoom   int
	light  int

	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. light is the starting
// light level shown on the overlay; it must match the simulation's.
func New(sim core.Sim, cfg *Config, light int) *Game {
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(cfg.WindowW, cfg.WindowH),
		overlay: ui.NewOverlay(sim),
		window:  core.Size{W: cfg.WindowW, H: cfg.WindowH},
		scale:   cfg.Scale,
		zoom:    cfg.Zoom,
		light:   light,
		seed:    cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.handleCamera()
	g.handleLight()

	if g.overlay != nil {
		g.overlay.Update()
	}

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handleCamera() {
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.pan.X -= panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.pan.X += panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.pan.Y -= panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.pan.Y += panStep
	}

	_, wheel := ebiten.Wheel()
	if wheel > 0 || inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.setZoom(g.zoom + 1)
	}
	if wheel < 0 || inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.setZoom(g.zoom - 1)
	}
}

// setZoom changes the zoom factor while keeping the window center fixed on
// the same grid position.
func (g *Game) setZoom(zoom int) {
	if zoom < minZoom {
		zoom = minZoom
	}
	if zoom > maxZoom {
		zoom = maxZoom
	}
	if zoom == g.zoom {
		return
	}
	cx := g.pan.X + g.window.W/2
	cy := g.pan.Y + g.window.H/2
	g.pan.X = cx*zoom/g.zoom - g.window.W/2
	g.pan.Y = cy*zoom/g.zoom - g.window.H/2
	g.zoom = zoom
}

func (g *Game) handleLight() {
	setter, ok := g.sim.(core.IntParameterSetter)
	if !ok {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		if setter.SetIntParameter("energy_light", g.light+1) {
			g.light++
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		if setter.SetIntParameter("energy_light", g.light-1) {
			g.light--
		}
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim, g.pan, g.zoom, g.scale)
	if g.overlay != nil {
		status := fmt.Sprintf("zoom %dx  light %d", g.zoom, g.light)
		if g.paused {
			status += "  paused"
		}
		g.overlay.Draw(screen, status)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.window.W * g.scale, g.window.H * g.scale
}
