package mold

// organism is one mold colony: a shared genome plus a single shared energy
// counter. Every grid cell belonging to the colony holds the same pointer,
// so the colony lives or dies as a unit within one tick. Organisms carry no
// destructor; once the last cell referencing one transitions away it simply
// becomes unreachable.
type organism struct {
	genome *genome
	energy int
}

// cellKind tags the per-position state variant.
type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellTissue
	cellSpore
)

// cell is the state of one grid position. org is nil exactly when kind is
// cellEmpty; activeGene is meaningful only for tissue; dir is the toroidal
// compass index 0..3.
type cell struct {
	kind       cellKind
	org        *organism
	age        uint32
	activeGene uint16
	dir        uint8
}

// dirOffsets maps an absolute direction to its one-step toroidal offset,
// shared by growth targeting and energy distribution: 0=down, 1=right,
// 2=up, 3=left.
var dirOffsets = [4][2]int{
	{0, 1},
	{1, 0},
	{0, -1},
	{-1, 0},
}
