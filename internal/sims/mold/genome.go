package mold

import "mold-ca/internal/core"

const (
	// genomeSize is the number of genes in each genome.
	genomeSize = 100
	// energyLoss is the energy a cell costs per tick before age scaling.
	energyLoss = 5
	// ticksToAge is the number of ticks elapsed before a cell ages up.
	ticksToAge = 200
	// sporeRipingAge is the minimum age for a spore to germinate.
	sporeRipingAge = 100
	// stopChance is the chance that a gene stops growth in a direction.
	stopChance = 0.5
	// sporeChance is the chance that a non-stopping gene creates a spore.
	sporeChance = 0.01
	// mutationChance is the chance of a mutation when a spore germinates.
	mutationChance = 1.0 / 50.0
)

// Gene values below geneSpore suppress growth; geneSpore grows a spore;
// values in [0, genomeSize) grow tissue and become the child's active gene.
const (
	geneStop  = -2
	geneSpore = -1
)

// genome holds the growth program of a mold. A gene is three numbers, one
// per relative growth direction, indexed genes[active*3+rel]. The color is
// packed 0RGB with one byte per channel. Genomes are immutable once built
// and shared by reference across every organism of a lineage stage.
type genome struct {
	genes [genomeSize * 3]int16
	color uint32
}

// generateGene draws a single gene. Three sequential draws: stop check,
// spore check, then the uniform gene value. The order and count of draws is
// part of the deterministic replay contract.
func generateGene(rng *core.RNG) int16 {
	if rng.Float64() < stopChance {
		return geneStop
	}
	if rng.Float64() < sporeChance {
		return geneSpore
	}
	return int16(rng.IntN(genomeSize))
}

// randColor packs three uniform channels in [10, 245] into 0RGB.
func randColor(rng *core.RNG) uint32 {
	r := uint32(10 + rng.IntN(236))
	g := uint32(10 + rng.IntN(236))
	b := uint32(10 + rng.IntN(236))
	return r<<16 | g<<8 | b
}

// newGenome draws a random color and then fills all genes in index order.
func newGenome(rng *core.RNG) *genome {
	g := &genome{color: randColor(rng)}
	for i := range g.genes {
		g.genes[i] = generateGene(rng)
	}
	return g
}

// mutate returns a copy of the genome, point-mutated with probability
// mutationChance. Color and the single changed gene go together: either the
// copy is identical or it has a fresh color and exactly one overwritten
// gene position.
func (g *genome) mutate(rng *core.RNG) *genome {
	child := *g
	if rng.Float64() < mutationChance {
		child.color = randColor(rng)
		child.genes[rng.IntN(genomeSize*3)] = generateGene(rng)
	}
	return &child
}
