package snow

import "snowfall/pkg/core"

// Options tune the stepper. The zero value is not the default; use
// DefaultOptions.
type Options struct {
	Order Order
	// Emitter keeps the top row as a static line that sheds flakes into row
	// 1 without emptying.
	Emitter bool
}

// DefaultOptions returns permuted row order with the top-row emitter on.
func DefaultOptions() Options {
	return Options{Order: OrderPermuted, Emitter: true}
}

// Stats summarizes one frame.
type Stats struct {
	Frame uint32
	// Particles counts occupied interior cells after the step.
	Particles int
	Moved     int
	Stayed    int
	// Shed counts moves out of the emitting top row; those sources are kept.
	Shed int
	// Draws counts landing-choice draws, excluding row permutations.
	Draws int
}

// Stepper advances a caller-owned buffer one frame at a time. It only holds
// scratch memory and is not safe for concurrent use.
type Stepper struct {
	opts Options
	perm []int
}

// NewStepper returns a Stepper using opts.
func NewStepper(opts Options) *Stepper {
	return &Stepper{opts: opts}
}

// Options reports the stepper configuration.
func (s *Stepper) Options() Options { return s.opts }

// SetOptions replaces the stepper configuration for subsequent frames.
func (s *Stepper) SetOptions(opts Options) { s.opts = opts }

// Step advances buf by one frame using the default options.
func Step(frame uint32, buf []uint32, w, h int) error {
	_, err := NewStepper(DefaultOptions()).Step(frame, buf, w, h)
	return err
}

// StepDecode advances buf by one frame and decodes the result into pixels.
func StepDecode(frame uint32, buf []uint32, w, h int, pixels []uint32) error {
	_, err := NewStepper(DefaultOptions()).StepDecode(frame, buf, w, h, pixels)
	return err
}

// StepDecode is Step followed by a decode of the settled state into pixels.
// Both buffers are validated before either is touched.
func (s *Stepper) StepDecode(frame uint32, buf []uint32, w, h int, pixels []uint32) (Stats, error) {
	if err := validate(buf, w, h); err != nil {
		return Stats{}, err
	}
	if err := validatePixels(pixels, w, h); err != nil {
		return Stats{}, err
	}
	st := s.step(frame, buf, w, h)
	decode(writeShift(frame), buf[:w*h], pixels[:w*h])
	return st, nil
}

// Step advances buf by one frame in place. Frame 0 stamps the side walls.
func (s *Stepper) Step(frame uint32, buf []uint32, w, h int) (Stats, error) {
	if err := validate(buf, w, h); err != nil {
		return Stats{}, err
	}
	return s.step(frame, buf, w, h), nil
}

func (s *Stepper) step(frame uint32, buf []uint32, w, h int) Stats {
	if frame == 0 {
		stampWalls(buf, w, h)
	}

	rs, ws := readShift(frame), writeShift(frame)
	seed := core.FrameSeed(frame)
	st := Stats{Frame: frame}

	inner := w - 2
	if cap(s.perm) < inner {
		s.perm = make([]int, inner)
	}
	perm := s.perm[:inner]

	// The bottom row has nowhere to go; carry it over as is.
	bottom := buf[(h-1)*w : h*w]
	for x := range bottom {
		bottom[x] = clearHalf(bottom[x], ws)
	}
	for x := 1; x <= inner; x++ {
		if p := half(bottom[x], rs); p != 0 {
			bottom[x] = setHalf(bottom[x], ws, p)
		}
	}

	// Bottom to top: row y+1 is final for this frame before row y reads it.
	var eligible [3]int
	for y := h - 2; y >= 0; y-- {
		line := buf[y*w : (y+1)*w]
		below := buf[(y+1)*w : (y+2)*w]
		for x := range line {
			line[x] = clearHalf(line[x], ws)
		}

		seed = fillOrder(s.opts.Order, perm, seed)
		for _, i := range perm {
			x := i + 1
			p := half(line[x], rs)
			if p == 0 || p&WallBit != 0 {
				continue
			}

			n := 0
			for dx := -1; dx <= 1; dx++ {
				if half(below[x+dx], ws) == 0 {
					eligible[n] = x + dx
					n++
				}
			}

			if n == 0 {
				line[x] = setHalf(line[x], ws, p)
				st.Stayed++
				continue
			}

			k := 0
			if n > 1 {
				k, seed = seed.Intn(n)
				st.Draws++
			}
			dest := eligible[k]
			below[dest] = setHalf(below[dest], ws, p)
			line[x] = setHalf(line[x], rs, 0)
			st.Moved++

			if y == 0 && s.opts.Emitter {
				line[x] = setHalf(line[x], ws, p)
				st.Shed++
			}
		}
	}

	st.Particles = countParticles(buf, w, h, ws)
	return st
}

func stampWalls(buf []uint32, w, h int) {
	for y := 0; y < h; y++ {
		row := y * w
		buf[row] = WallCell
		buf[row+w-1] = WallCell
	}
}

func countParticles(buf []uint32, w, h int, shift uint) int {
	n := 0
	for y := 0; y < h; y++ {
		line := buf[y*w : (y+1)*w]
		for x := 1; x < w-1; x++ {
			if half(line[x], shift)&PayloadMask != 0 {
				n++
			}
		}
	}
	return n
}
