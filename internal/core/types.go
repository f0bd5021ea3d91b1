package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Point is a pixel or cell offset.
type Point struct {
	X int
	Y int
}

// Sim defines the minimal contract a simulation must implement. Render
// projects the current state into a packed-0RGB pixel buffer of
// window.W*window.H entries; pan is a pixel offset wrapped toroidally and
// zoom is an integer magnification of at least 1.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Render(buf []uint32, window Size, pan Point, zoom int) error
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
