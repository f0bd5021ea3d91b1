package mold

import (
	"errors"

	"mold-ca/internal/core"
)

// ErrOutOfBounds reports coordinates outside the grid. Wrapping is never
// applied silently at the API boundary; only the tick algorithm itself uses
// toroidal arithmetic.
var ErrOutOfBounds = errors.New("mold: coordinates out of bounds")

// Simulation is the full state of one mold world: a toroidal grid of cells
// plus the light-energy parameter. All methods assume exclusive access; the
// engine is single-threaded by design.
type Simulation struct {
	cfg   Config
	torus core.Torus
	grid  []cell
	rng   *core.RNG
	ticks uint64

	// EnergyLight is the energy granted to the single organism bordering an
	// empty cell each tick. Frontends may write it directly; the engine
	// applies no clamping.
	EnergyLight int
}

// New returns a mold simulation with the provided dimensions and light
// level. Dimensions below 2 are raised to 2 so the toroidal offset
// arithmetic stays well-defined.
func New(w, h, energyLight int) *Simulation {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.EnergyLight = energyLight
	return NewWithConfig(cfg)
}

// NewWithConfig returns a mold simulation configured from the provided
// options.
func NewWithConfig(cfg Config) *Simulation {
	if cfg.Width < 2 {
		cfg.Width = 2
	}
	if cfg.Height < 2 {
		cfg.Height = 2
	}
	return &Simulation{
		cfg:         cfg,
		torus:       core.Torus{W: cfg.Width, H: cfg.Height},
		grid:        make([]cell, cfg.Width*cfg.Height),
		rng:         core.NewRNG(cfg.Seed),
		EnergyLight: cfg.EnergyLight,
	}
}

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return "mold" }

// Size reports the grid dimensions.
func (s *Simulation) Size() core.Size { return s.torus.Size() }

// Ticks reports how many steps have run since the last Reset.
func (s *Simulation) Ticks() uint64 { return s.ticks }

// PlaceOrganism creates a new organism with a freshly generated genome at
// (x, y) and returns true. If the cell is occupied nothing changes and it
// returns false. Out-of-range coordinates are an error.
func (s *Simulation) PlaceOrganism(x, y int) (bool, error) {
	if !s.torus.Contains(x, y) {
		return false, ErrOutOfBounds
	}
	idx := s.torus.Index(x, y)
	if s.grid[idx].kind != cellEmpty {
		return false, nil
	}
	org := &organism{genome: newGenome(s.rng)}
	s.grid[idx] = cell{kind: cellTissue, org: org}
	return true, nil
}

// Clear resets every cell to empty, dropping all organism references.
func (s *Simulation) Clear() {
	for i := range s.grid {
		s.grid[i] = cell{}
	}
}

// Reset reseeds the randomness, clears the grid and places organisms on the
// configured lattice. A zero seed falls back to the config seed.
func (s *Simulation) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.rng.Reseed(seed)
	s.ticks = 0
	s.Clear()
	for x := s.cfg.SeedMargin; x < s.torus.W; x += s.cfg.SeedSpacing {
		for y := s.cfg.SeedMargin; y < s.torus.H; y += s.cfg.SeedSpacing {
			s.PlaceOrganism(x, y)
		}
	}
}

// Step evolves the simulation forward by one time step: an aging and energy
// pass over every cell, then a growth, death and germination pass.
func (s *Simulation) Step() {
	// First pass: increase age, apply energy cost, give energy from empty
	// cells. Each live cell of an organism subtracts independently, so the
	// debt scales with colony size and age.
	for y := 0; y < s.torus.H; y++ {
		for x := 0; x < s.torus.W; x++ {
			c := &s.grid[s.torus.Index(x, y)]
			if c.kind == cellEmpty {
				s.distributeEnergy(x, y)
				continue
			}
			c.org.energy -= energyLoss * (1 + int(c.age)/ticksToAge)
			c.age++
		}
	}

	// Second pass: grow colonies, remove ones that are out of energy and
	// germinate their ripe spores. Each decision reads a copy of the cell
	// taken at visit time but writes new growth straight into the live
	// grid; freshly written cells have age 0 and take no action if visited
	// later in the same pass.
	for y := 0; y < s.torus.H; y++ {
		for x := 0; x < s.torus.W; x++ {
			idx := s.torus.Index(x, y)
			c := s.grid[idx]
			switch {
			case c.kind == cellSpore && c.org.energy <= 0:
				if c.age >= sporeRipingAge {
					// The spore outlives its parent as a brand-new organism
					// with a possibly mutated genome.
					s.grid[idx] = cell{
						kind: cellTissue,
						org:  &organism{genome: c.org.genome.mutate(s.rng)},
						dir:  c.dir,
					}
				} else {
					s.grid[idx] = cell{}
				}
			case c.kind == cellTissue && c.org.energy <= 0:
				s.grid[idx] = cell{}
			case c.kind == cellTissue && c.age > 0:
				s.grow(x, y, c)
			}
		}
	}

	s.ticks++
}

// grow attempts growth from the tissue cell c at (x, y) into each of its
// three relative directions. A single cell may spawn up to three children
// in one tick.
func (s *Simulation) grow(x, y int, c cell) {
	for rel := 0; rel < 3; rel++ {
		gene := c.org.genome.genes[int(c.activeGene)*3+rel]
		if gene < geneSpore {
			// geneStop: no growth in this direction.
			continue
		}

		abs := (3 + int(c.dir) + rel) % 4
		off := dirOffsets[abs]
		tx, ty := s.torus.Wrap(x+off[0], y+off[1])
		tidx := s.torus.Index(tx, ty)
		if s.grid[tidx].kind != cellEmpty {
			continue
		}
		if gene == geneSpore {
			s.grid[tidx] = cell{kind: cellSpore, org: c.org, dir: uint8(abs)}
		} else {
			s.grid[tidx] = cell{
				kind:       cellTissue,
				org:        c.org,
				activeGene: uint16(gene),
				dir:        uint8(abs),
			}
		}
	}
}

// distributeEnergy rewards isolated growth fronts: if exactly one distinct
// organism borders the empty cell at (x, y), that organism gains
// EnergyLight. Zero or multiple bordering organisms gain nothing.
func (s *Simulation) distributeEnergy(x, y int) {
	var single *organism
	for _, off := range dirOffsets {
		nx, ny := s.torus.Wrap(x+off[0], y+off[1])
		n := &s.grid[s.torus.Index(nx, ny)]
		if n.kind == cellEmpty {
			continue
		}
		if single == nil {
			single = n.org
		} else if single != n.org {
			return
		}
	}
	if single != nil {
		single.energy += s.EnergyLight
	}
}

// Census summarizes the live population.
type Census struct {
	Tissue    int
	Spores    int
	Organisms int
}

// CountCensus tallies tissue cells, spore cells and distinct organisms.
func (s *Simulation) CountCensus() Census {
	var c Census
	seen := make(map[*organism]struct{})
	for i := range s.grid {
		switch s.grid[i].kind {
		case cellTissue:
			c.Tissue++
		case cellSpore:
			c.Spores++
		default:
			continue
		}
		seen[s.grid[i].org] = struct{}{}
	}
	c.Organisms = len(seen)
	return c
}

func init() {
	core.Register("mold", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
