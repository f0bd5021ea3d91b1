package app

import "flag"

// Config represents the command-line parameters for the windowed frontend.
type Config struct {
	Sim        string
	ConfigPath string
	WindowW    int
	WindowH    int
	Scale      int
	TPS        int
	Seed       int64
	Zoom       int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "mold", WindowW: 630, WindowH: 330, Scale: 2, TPS: 60, Seed: 4, Zoom: 1}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "path to a YAML simulation config")
	fs.IntVar(&c.WindowW, "window-w", c.WindowW, "view window width in pixels")
	fs.IntVar(&c.WindowH, "window-h", c.WindowH, "view window height in pixels")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Zoom, "zoom", c.Zoom, "initial zoom factor")
}
