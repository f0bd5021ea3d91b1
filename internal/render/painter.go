//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"mold-ca/internal/core"
)

// GridPainter renders a simulation's packed-color projection into a single
// RGBA image and draws it scaled onto the destination.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	pix  []uint32
	buf  []byte
}

// NewGridPainter allocates a painter with a w*h pixel window.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{
		w:   w,
		h:   h,
		pix: make([]uint32, w*h),
		buf: make([]byte, 4*w*h),
	}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit asks the simulation for its current projection and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, sim core.Sim, pan core.Point, zoom, scale int) {
	if err := sim.Render(gp.pix, core.Size{W: gp.w, H: gp.h}, pan, zoom); err != nil {
		return
	}
	fillPackedRGBA(gp.buf, gp.pix)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
