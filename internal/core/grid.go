package core

// Torus carries the wraparound index arithmetic shared by toroidal grids.
// Cell storage stays with the simulation that owns it; Torus only answers
// geometry questions.
type Torus struct {
	W, H int
}

// Index returns the linear slice index for coordinates (x, y) in row-major
// order.
func (t Torus) Index(x, y int) int { return y*t.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (t Torus) Wrap(x, y int) (int, int) {
	x = (x%t.W + t.W) % t.W
	y = (y%t.H + t.H) % t.H
	return x, y
}

// Contains reports whether (x, y) lies inside the grid without wrapping.
func (t Torus) Contains(x, y int) bool {
	return x >= 0 && x < t.W && y >= 0 && y < t.H
}

// Size returns the grid dimensions.
func (t Torus) Size() Size { return Size{W: t.W, H: t.H} }
