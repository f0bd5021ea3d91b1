package mold

import (
	"errors"

	"mold-ca/internal/core"
)

// backgroundColor is the packed color written for empty cells.
const backgroundColor uint32 = 0

// ErrBufferSize reports a destination buffer that does not match the
// requested window.
var ErrBufferSize = errors.New("mold: render buffer does not match window size")

// ErrZoom reports a zoom factor below 1.
var ErrZoom = errors.New("mold: zoom factor must be at least 1")

// Render projects the simulation into buf, one packed 0RGB value per window
// pixel. pan is a pixel offset into the zoomed grid, wrapped toroidally, and
// zoom is the integer magnification. Empty cells render as the background;
// ripe spores render as the bitwise complement of their genome color to
// stand out from normal tissue. Render never mutates simulation state.
func (s *Simulation) Render(buf []uint32, window core.Size, pan core.Point, zoom int) error {
	if len(buf) != window.W*window.H {
		return ErrBufferSize
	}
	if zoom < 1 {
		return ErrZoom
	}

	spanX := s.torus.W * zoom
	spanY := s.torus.H * zoom
	panX := ((pan.X % spanX) + spanX) % spanX
	panY := ((pan.Y % spanY) + spanY) % spanY

	i := 0
	for y := 0; y < window.H; y++ {
		gy := ((panY + y) % spanY) / zoom
		for x := 0; x < window.W; x++ {
			gx := ((panX + x) % spanX) / zoom
			c := &s.grid[s.torus.Index(gx, gy)]
			switch {
			case c.kind == cellEmpty:
				buf[i] = backgroundColor
			case c.kind == cellSpore && c.age >= sporeRipingAge:
				buf[i] = ^c.org.genome.color & 0x00ffffff
			default:
				buf[i] = c.org.genome.color
			}
			i++
		}
	}
	return nil
}
