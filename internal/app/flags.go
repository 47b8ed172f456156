package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters shared by the hosts.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64
	HUD   int

	Width   int
	Height  int
	Order   string
	Emitter bool
	Fill    float64
	Palette string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:     "snowfall",
		Scale:   6,
		TPS:     30,
		Seed:    1,
		HUD:     200,
		Width:   72,
		Height:  128,
		Order:   "permuted",
		Emitter: true,
		Fill:    1,
		Palette: "white",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUD, "hud", c.HUD, "HUD panel width in pixels (0 hides it)")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells, walls included")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.StringVar(&c.Order, "order", c.Order, "row order: permuted or natural")
	fs.BoolVar(&c.Emitter, "emitter", c.Emitter, "keep the top row as a static snow line")
	fs.Float64Var(&c.Fill, "fill", c.Fill, "chance a top-row cell starts with a flake")
	fs.StringVar(&c.Palette, "palette", c.Palette, "top-row flake colors: white or ice")
}

// SimConfig renders the simulation flags as the string map factories take.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"order":   c.Order,
		"emitter": strconv.FormatBool(c.Emitter),
		"fill":    strconv.FormatFloat(c.Fill, 'g', -1, 64),
		"palette": c.Palette,
	}
}
