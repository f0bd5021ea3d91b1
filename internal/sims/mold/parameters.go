package mold

import (
	"strconv"

	"mold-ca/internal/core"
)

// Parameters snapshots the tunables the simulation exposes.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "World",
				Params: []core.Parameter{
					intParam("w", "Width", s.cfg.Width),
					intParam("h", "Height", s.cfg.Height),
					int64Param("seed", "Seed", s.cfg.Seed),
				},
			},
			{
				Name: "Energy",
				Params: []core.Parameter{
					intParam("energy_light", "Light level", s.EnergyLight),
				},
			},
			{
				Name: "Seeding",
				Params: []core.Parameter{
					intParam("seed_spacing", "Seed spacing", s.cfg.SeedSpacing),
					intParam("seed_margin", "Seed margin", s.cfg.SeedMargin),
				},
			},
		},
	}
}

// ParameterControls lists the live-adjustable controls for frontends. Only
// the light level is safe to change mid-run.
func (s *Simulation) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key:   "energy_light",
			Label: "Light level",
			Type:  core.ParamTypeInt,
			Step:  1,
		},
	}
}

// SetIntParameter updates an integer parameter by key. It reports whether
// the key was recognized. Light level is intentionally unclamped; range
// enforcement belongs to the caller.
func (s *Simulation) SetIntParameter(key string, value int) bool {
	switch key {
	case "energy_light":
		s.EnergyLight = value
		return true
	}
	return false
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func int64Param(key, label string, v int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(v, 10)}
}
