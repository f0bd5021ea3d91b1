package mold

import (
	"errors"
	"slices"
	"testing"

	"mold-ca/internal/core"
)

// stopGenome builds a genome whose every gene suppresses growth.
func stopGenome() *genome {
	g := &genome{color: 0x204060}
	for i := range g.genes {
		g.genes[i] = geneStop
	}
	return g
}

// withGene overrides one relative direction of one active gene.
func withGene(g *genome, active, rel int, val int16) *genome {
	child := *g
	child.genes[active*3+rel] = val
	return &child
}

func putTissue(s *Simulation, x, y int, org *organism, age uint32, activeGene uint16, dir uint8) {
	s.grid[s.torus.Index(x, y)] = cell{kind: cellTissue, org: org, age: age, activeGene: activeGene, dir: dir}
}

func putSpore(s *Simulation, x, y int, org *organism, age uint32, dir uint8) {
	s.grid[s.torus.Index(x, y)] = cell{kind: cellSpore, org: org, age: age, dir: dir}
}

func cellAt(s *Simulation, x, y int) cell {
	return s.grid[s.torus.Index(x, y)]
}

func TestClearThenTickStaysEmpty(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 10
	cfg.Height = 10
	cfg.SeedMargin = 2
	cfg.SeedSpacing = 3
	s := NewWithConfig(cfg)
	s.Reset(1)

	if c := s.CountCensus(); c.Organisms == 0 {
		t.Fatal("Reset should have placed organisms")
	}

	s.Clear()
	if c := s.CountCensus(); c.Organisms != 0 || c.Tissue != 0 || c.Spores != 0 {
		t.Fatalf("grid not empty after Clear: %+v", c)
	}

	s.Step()
	if c := s.CountCensus(); c.Organisms != 0 || c.Tissue != 0 || c.Spores != 0 {
		t.Fatalf("spontaneous organisms after tick on empty grid: %+v", c)
	}
}

func TestPlaceOrganism(t *testing.T) {
	s := New(10, 10, 16)

	ok, err := s.PlaceOrganism(5, 5)
	if err != nil || !ok {
		t.Fatalf("placement on empty cell: ok=%v err=%v", ok, err)
	}
	before := cellAt(s, 5, 5)

	ok, err = s.PlaceOrganism(5, 5)
	if err != nil {
		t.Fatalf("occupied placement must not error: %v", err)
	}
	if ok {
		t.Fatal("occupied placement must report false")
	}
	if after := cellAt(s, 5, 5); after != before {
		t.Fatal("failed placement must not mutate the grid")
	}

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {10, 0}, {0, 10}} {
		if _, err := s.PlaceOrganism(p[0], p[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("placement at %v: got err %v, want ErrOutOfBounds", p, err)
		}
	}
}

func TestIsolationReward(t *testing.T) {
	s := New(10, 10, 16)
	org := &organism{genome: stopGenome()}
	putTissue(s, 5, 5, org, 0, 0, 0)

	s.Step()

	// Four empty neighbors each granted 16, one cell cost 5.
	want := 4*16 - energyLoss
	if org.energy != want {
		t.Fatalf("energy after one tick: %d, want %d", org.energy, want)
	}
}

func TestCrowdedCellFeedsNobody(t *testing.T) {
	s := New(10, 10, 16)
	a := &organism{genome: stopGenome(), energy: 100}
	b := &organism{genome: stopGenome(), energy: 100}
	putTissue(s, 2, 2, a, 0, 0, 0)
	putTissue(s, 4, 2, b, 0, 0, 0)

	s.Step()

	// (3,2) borders both organisms and must grant nothing; the other three
	// neighbors of each still pay out.
	want := 100 + 3*16 - energyLoss
	if a.energy != want || b.energy != want {
		t.Fatalf("energy a=%d b=%d, want %d", a.energy, b.energy, want)
	}
}

func TestEnergyDrainWithoutLight(t *testing.T) {
	// On a 2x2 torus with two organisms, every empty cell borders both, so
	// no light flows and each live cell strictly loses energyLoss per tick.
	s := New(2, 2, 16)
	a := &organism{genome: stopGenome(), energy: 100}
	b := &organism{genome: stopGenome(), energy: 100}
	putTissue(s, 0, 0, a, 0, 0, 0)
	putTissue(s, 1, 1, b, 0, 0, 0)

	s.Step()
	if a.energy != 100-energyLoss || b.energy != 100-energyLoss {
		t.Fatalf("energy a=%d b=%d, want %d", a.energy, b.energy, 100-energyLoss)
	}
}

func TestAgedCellsCostMore(t *testing.T) {
	s := New(2, 2, 16)
	a := &organism{genome: stopGenome(), energy: 1000}
	b := &organism{genome: stopGenome(), energy: 1000}
	putTissue(s, 0, 0, a, uint32(ticksToAge), 0, 0)
	putTissue(s, 1, 1, b, 0, 0, 0)

	s.Step()
	if a.energy != 1000-2*energyLoss {
		t.Fatalf("aged cell cost %d, want %d", 1000-a.energy, 2*energyLoss)
	}
	if b.energy != 1000-energyLoss {
		t.Fatalf("young cell cost %d, want %d", 1000-b.energy, energyLoss)
	}
}

func TestSporeStarvesImmature(t *testing.T) {
	s := New(10, 10, 16)
	org := &organism{genome: stopGenome(), energy: -1000}
	putSpore(s, 5, 5, org, 50, 2)

	s.Step()
	if c := cellAt(s, 5, 5); c.kind != cellEmpty {
		t.Fatalf("immature starved spore should vanish, got kind %d", c.kind)
	}
}

func TestSporeGerminatesRipe(t *testing.T) {
	s := New(10, 10, 16)
	org := &organism{genome: stopGenome(), energy: -1000}
	putSpore(s, 5, 5, org, sporeRipingAge, 2)

	s.Step()
	c := cellAt(s, 5, 5)
	if c.kind != cellTissue {
		t.Fatalf("ripe starved spore should germinate, got kind %d", c.kind)
	}
	if c.org == org {
		t.Fatal("germination must create a distinct organism")
	}
	if c.org.energy != 0 {
		t.Fatalf("new organism starts with energy %d, want 0", c.org.energy)
	}
	if c.age != 0 || c.activeGene != 0 || c.dir != 2 {
		t.Fatalf("germinated cell age=%d gene=%d dir=%d, want 0/0/2", c.age, c.activeGene, c.dir)
	}
}

func TestTissueDiesWithoutEnergy(t *testing.T) {
	s := New(10, 10, 0)
	org := &organism{genome: stopGenome(), energy: energyLoss}
	putTissue(s, 5, 5, org, 3, 0, 0)

	s.Step()
	if c := cellAt(s, 5, 5); c.kind != cellEmpty {
		t.Fatalf("starved tissue should vanish, got kind %d", c.kind)
	}
}

func TestGrowthBranchesThreeWays(t *testing.T) {
	s := New(10, 10, 16)
	g := stopGenome()
	g = withGene(g, 0, 0, 5)
	g = withGene(g, 0, 1, 7)
	g = withGene(g, 0, 2, geneSpore)
	org := &organism{genome: g, energy: 100}
	putTissue(s, 5, 5, org, 1, 0, 0)

	s.Step()

	left := cellAt(s, 4, 5)
	if left.kind != cellTissue || left.org != org || left.activeGene != 5 || left.dir != 3 {
		t.Fatalf("relative direction 0: got %+v", left)
	}
	down := cellAt(s, 5, 6)
	if down.kind != cellTissue || down.org != org || down.activeGene != 7 || down.dir != 0 {
		t.Fatalf("relative direction 1: got %+v", down)
	}
	right := cellAt(s, 6, 5)
	if right.kind != cellSpore || right.org != org || right.dir != 1 {
		t.Fatalf("relative direction 2: got %+v", right)
	}
}

func TestGrowthSkipsOccupiedTargets(t *testing.T) {
	s := New(10, 10, 16)
	g := withGene(stopGenome(), 0, 0, 0)
	org := &organism{genome: g, energy: 100}
	other := &organism{genome: stopGenome(), energy: 100}
	putTissue(s, 5, 5, org, 1, 0, 0)
	putTissue(s, 4, 5, other, 1, 0, 0)

	s.Step()
	if c := cellAt(s, 4, 5); c.org != other {
		t.Fatal("growth must not overwrite an occupied cell")
	}
}

func TestFreshCellsWaitOneTick(t *testing.T) {
	// Relative direction 1 grows straight ahead, so gene 0 with rel 1 set
	// to itself extends a line by one cell per tick; a child created in
	// tick N must not grow until tick N+1.
	s := New(10, 10, 16)
	g := withGene(stopGenome(), 0, 1, 0)
	org := &organism{genome: g, energy: 1000}
	putTissue(s, 5, 5, org, 1, 0, 0)

	s.Step()
	if c := s.CountCensus(); c.Tissue != 2 {
		t.Fatalf("after tick 1: %d tissue cells, want 2", c.Tissue)
	}
	if c := cellAt(s, 5, 6); c.kind != cellTissue || c.dir != 0 {
		t.Fatalf("expected straight growth at (5,6): %+v", c)
	}
	if c := cellAt(s, 5, 7); c.kind != cellEmpty {
		t.Fatal("grandchild grew in the same tick as its parent")
	}

	s.Step()
	if c := s.CountCensus(); c.Tissue != 3 {
		t.Fatalf("after tick 2: %d tissue cells, want 3", c.Tissue)
	}
	if c := cellAt(s, 5, 7); c.kind != cellTissue {
		t.Fatal("child should grow one tick after its creation")
	}
}

func TestStationaryOrganismScenario(t *testing.T) {
	// Spec scenario: all-stop genome on a 10x10 grid with light 16. The
	// lone cell keeps a positive balance (4*16 in, 5 out) and never grows;
	// cutting the light starves it to empty with no other cells created.
	s := New(10, 10, 16)
	org := &organism{genome: stopGenome()}
	putTissue(s, 5, 5, org, 0, 0, 0)

	for i := 0; i < 50; i++ {
		s.Step()
		c := s.CountCensus()
		if c.Tissue != 1 || c.Spores != 0 || c.Organisms != 1 {
			t.Fatalf("tick %d: unexpected population %+v", i+1, c)
		}
	}

	s.EnergyLight = 0
	org.energy = 20
	for i := 0; i < 10; i++ {
		s.Step()
	}
	if c := s.CountCensus(); c.Tissue != 0 || c.Spores != 0 {
		t.Fatalf("organism should starve with the light off: %+v", c)
	}
}

func TestSporeLineageScenario(t *testing.T) {
	// Spec scenario: gene 0 produces a spore in relative direction 0. The
	// spore appears at the left neighbor, stays dormant while the parent
	// keeps energy, and germinates into a distinct organism once the colony
	// starves after ripening.
	s := New(10, 10, 16)
	g := withGene(stopGenome(), 0, 0, geneSpore)
	org := &organism{genome: g}
	putTissue(s, 5, 5, org, 0, 0, 0)

	s.Step()
	sp := cellAt(s, 4, 5)
	if sp.kind != cellSpore || sp.org != org || sp.dir != 3 {
		t.Fatalf("expected spore at (4,5): %+v", sp)
	}

	for i := 0; i < 150; i++ {
		s.Step()
	}
	if c := cellAt(s, 4, 5); c.kind != cellSpore {
		t.Fatal("spore should stay dormant while the colony holds energy")
	}

	org.energy = -1_000_000
	s.Step()
	if c := cellAt(s, 5, 5); c.kind != cellEmpty {
		t.Fatal("starved parent tissue should vanish")
	}
	child := cellAt(s, 4, 5)
	if child.kind != cellTissue || child.org == org {
		t.Fatalf("ripe spore should germinate into a new organism: %+v", child)
	}
	if child.org.energy != 0 || child.dir != 3 {
		t.Fatalf("germinated cell energy=%d dir=%d, want 0/3", child.org.energy, child.dir)
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 60
	cfg.Height = 60

	run := func(seed int64) ([]uint32, Census) {
		s := NewWithConfig(cfg)
		s.Reset(seed)
		for i := 0; i < 30; i++ {
			s.Step()
		}
		buf := make([]uint32, cfg.Width*cfg.Height)
		if err := s.Render(buf, core.Size{W: cfg.Width, H: cfg.Height}, core.Point{}, 1); err != nil {
			t.Fatal(err)
		}
		return buf, s.CountCensus()
	}

	bufA, censusA := run(7)
	bufB, censusB := run(7)
	if !slices.Equal(bufA, bufB) || censusA != censusB {
		t.Fatal("equal seeds must replay identical runs")
	}

	bufC, _ := run(8)
	if slices.Equal(bufA, bufC) {
		t.Fatal("different seeds should diverge")
	}
}

func BenchmarkStep(b *testing.B) {
	cfg := DefaultConfig()
	cfg.Width = 200
	cfg.Height = 200
	s := NewWithConfig(cfg)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Reset(4)
		for t := 0; t < 1000; t++ {
			s.Step()
		}
	}
}
