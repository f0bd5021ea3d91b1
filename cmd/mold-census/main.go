package main

import (
	"flag"
	"fmt"
	"log"

	"mold-ca/internal/sims/mold"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML simulation config")
	steps := flag.Int("steps", 1000, "number of ticks to simulate")
	interval := flag.Int("interval", 100, "ticks between census lines")
	width := flag.Int("width", 200, "grid width")
	height := flag.Int("height", 200, "grid height")
	seed := flag.Int64("seed", 4, "seed used for the deterministic run")
	light := flag.Int("light", 16, "light energy per isolated edge cell")
	flag.Parse()

	cfg, err := mold.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *configPath == "" {
		cfg.Width = *width
		cfg.Height = *height
		cfg.Seed = *seed
		cfg.EnergyLight = *light
	}

	sim := mold.NewWithConfig(cfg)
	sim.Reset(cfg.Seed)

	start := sim.CountCensus()
	fmt.Printf("grid %dx%d, light %d, seed %d: %d organisms placed\n",
		cfg.Width, cfg.Height, cfg.EnergyLight, cfg.Seed, start.Organisms)

	for t := 1; t <= *steps; t++ {
		sim.Step()
		if *interval > 0 && t%*interval == 0 {
			c := sim.CountCensus()
			fmt.Printf("tick %6d: organisms %5d, tissue %7d, spores %6d\n",
				t, c.Organisms, c.Tissue, c.Spores)
		}
	}

	final := sim.CountCensus()
	fmt.Printf("after %d ticks: organisms %d, tissue %d, spores %d\n",
		*steps, final.Organisms, final.Tissue, final.Spores)
}
