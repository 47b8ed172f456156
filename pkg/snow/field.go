package snow

import "snowfall/pkg/core"

// Field owns a cell buffer, its decoded pixels and the frame counter, and
// steps them together. It is the shape every host drives.
type Field struct {
	cfg Config

	w, h    int
	cells   []uint32
	pixels  []uint32
	stepper *Stepper

	frame uint32
	stats Stats
}

// NewField allocates a field and seeds it with cfg.Seed.
func NewField(cfg Config) (*Field, error) {
	if err := validateSize(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}
	total := cfg.Width * cfg.Height
	f := &Field{
		cfg:     cfg,
		w:       cfg.Width,
		h:       cfg.Height,
		cells:   make([]uint32, total),
		pixels:  make([]uint32, total),
		stepper: NewStepper(cfg.Options()),
	}
	f.Reset(0)
	return f, nil
}

// Name returns the simulation identifier.
func (f *Field) Name() string { return "snowfall" }

// Size reports the grid dimensions.
func (f *Field) Size() core.Size { return core.Size{W: f.w, H: f.h} }

// Cells exposes the raw packed buffer.
func (f *Field) Cells() []uint32 { return f.cells }

// Pixels exposes the decoded RGBA8888 pixels of the last completed frame.
func (f *Field) Pixels() []uint32 { return f.pixels }

// Frame returns the index the next Step will run.
func (f *Field) Frame() uint32 { return f.frame }

// Stats returns the summary of the last completed frame.
func (f *Field) Stats() Stats { return f.stats }

// Config returns the active configuration.
func (f *Field) Config() Config { return f.cfg }

// Reset clears the field, rewinds to frame 0 and seeds the top row. A zero
// seed falls back to the configured one.
func (f *Field) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = f.cfg.Seed
	}
	for i := range f.cells {
		f.cells[i] = 0
	}
	f.frame = 0
	f.stats = Stats{}

	s := core.Seed(uint64(effective)).Next()
	for x := 1; x < f.w-1; x++ {
		var roll float64
		roll, s = s.Float64()
		if roll >= f.cfg.Fill {
			continue
		}
		var p uint16
		p, s = f.flake(s)
		f.cells[x] = Filled(p)
	}
	decode(readShift(f.frame), f.cells, f.pixels)
}

func (f *Field) flake(s core.Seed) (uint16, core.Seed) {
	if f.cfg.Palette != PaletteIce {
		return White, s
	}
	var r, g int
	r, s = s.Intn(8)
	g, s = s.Intn(8)
	return Pack(uint8(24+r), uint8(24+g), 31), s
}

// Step advances the field by one frame and refreshes the pixels.
func (f *Field) Step() {
	// Dimensions were validated by NewField and the buffers never change size.
	f.stats, _ = f.stepper.StepDecode(f.frame, f.cells, f.w, f.h, f.pixels)
	f.frame++
}

// Paint drops a flake with payload at (x, y) in both halves so it shows
// immediately and is picked up by the next frame. Walls, empty payloads and
// out-of-range coordinates are rejected.
func (f *Field) Paint(x, y int, payload uint16) bool {
	if x < 1 || x >= f.w-1 || y < 0 || y >= f.h {
		return false
	}
	payload &= PayloadMask
	if payload == 0 {
		return false
	}
	i := Index(f.w, x, y)
	f.cells[i] = Filled(payload)
	f.pixels[i] = Decode(payload)
	return true
}

// Occupied reports whether (x, y) holds a flake or wall in the settled state.
func (f *Field) Occupied(x, y int) bool {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return false
	}
	return half(f.cells[Index(f.w, x, y)], readShift(f.frame)) != 0
}

// SetOptions changes order and emitter for subsequent frames.
func (f *Field) SetOptions(opts Options) {
	f.cfg.Order = opts.Order
	f.cfg.Emitter = opts.Emitter
	f.stepper.SetOptions(opts)
}

func init() {
	core.Register("snowfall", func(cfg map[string]string) (core.Sim, error) {
		f, err := NewField(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return f, nil
	})
}
