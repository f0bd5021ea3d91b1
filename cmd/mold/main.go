//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"mold-ca/internal/app"
	"mold-ca/internal/core"
	"mold-ca/internal/sims/mold"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	var overrides kvList
	flag.Var(&overrides, "set", "simulation override in key=value form (repeatable)")
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	opts := map[string]string{}
	if cfg.ConfigPath != "" {
		opts["config"] = cfg.ConfigPath
	}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			log.Fatalf("bad -set value %q, want key=value", kv)
		}
		opts[parts[0]] = parts[1]
	}

	sim := factory(opts)
	sim.Reset(cfg.Seed)

	light := 0
	if ms, ok := sim.(*mold.Simulation); ok {
		light = ms.EnergyLight
	}

	game := app.New(sim, cfg, light)

	ebiten.SetWindowTitle("mold-ca — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.WindowW*cfg.Scale, cfg.WindowH*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
