package mold

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config controls the mold simulation dimensions and seeding.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Seed int64 `yaml:"seed"`

	// EnergyLight is the energy an isolated colony edge receives per tick.
	EnergyLight int `yaml:"energy_light"`

	// SeedSpacing and SeedMargin describe the lattice of organisms Reset
	// places: one per SeedSpacing cells in each axis, starting SeedMargin
	// cells in.
	SeedSpacing int `yaml:"seed_spacing"`
	SeedMargin  int `yaml:"seed_margin"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:       630,
		Height:      330,
		Seed:        4,
		EnergyLight: 16,
		SeedSpacing: 20,
		SeedMargin:  10,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["config"]; ok && v != "" {
		if loaded, err := LoadConfig(v); err == nil {
			c = loaded
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 2 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 2 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["energy_light"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.EnergyLight = parsed
		}
	}
	if v, ok := cfg["seed_spacing"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.SeedSpacing = parsed
		}
	}
	if v, ok := cfg["seed_margin"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.SeedMargin = parsed
		}
	}
	return c
}

// LoadConfig reads a YAML config file over the defaults. An empty path
// returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("mold: read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("mold: parse config %s: %w", path, err)
	}
	if c.Width < 2 || c.Height < 2 {
		return c, fmt.Errorf("mold: config %s: grid must be at least 2x2", path)
	}
	return c, nil
}
