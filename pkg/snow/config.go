package snow

import "strconv"

// Palette names the coloring used when seeding the top row.
type Palette string

const (
	PaletteWhite Palette = "white"
	PaletteIce   Palette = "ice"
)

// Config controls a Field.
type Config struct {
	Width  int
	Height int

	Seed int64

	Order   Order
	Emitter bool
	// Fill is the chance that a top-row cell starts with a flake.
	Fill    float64
	Palette Palette
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   72,
		Height:  128,
		Seed:    1,
		Order:   OrderPermuted,
		Emitter: true,
		Fill:    1,
		Palette: PaletteWhite,
	}
}

// Options extracts the stepper options from the config.
func (c Config) Options() Options {
	return Options{Order: c.Order, Emitter: c.Emitter}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= minWidth {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= minHeight {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["order"]; ok {
		if parsed, err := ParseOrder(v); err == nil {
			c.Order = parsed
		}
	}
	if v, ok := cfg["emitter"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Emitter = parsed
		}
	}
	if v, ok := cfg["fill"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Fill = parsed
		}
	}
	if v, ok := cfg["palette"]; ok {
		switch p := Palette(v); p {
		case PaletteWhite, PaletteIce:
			c.Palette = p
		}
	}
	return c
}
