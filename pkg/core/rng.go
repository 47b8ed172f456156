package core

const (
	lcgMultiplier = 0x5DEECE66D
	lcgIncrement  = 0xB
	lcgMask       = 1<<48 - 1

	// frameSalt decorrelates consecutive frame indices before the first draw.
	frameSalt = 0xa0de23ac904c

	// drawShift drops the weak low-order LCG bits from bounded draws.
	drawShift = 7
)

// Seed is the state of a 48-bit linear congruential generator. It is a plain
// value: callers thread it through their code instead of sharing a generator.
type Seed uint64

// FrameSeed derives the starting seed for a frame from its index.
func FrameSeed(frame uint32) Seed {
	return Seed(uint64(frame) ^ frameSalt).Next()
}

// Next advances the generator once. The returned seed is also the output value.
func (s Seed) Next() Seed {
	return Seed((uint64(s)*lcgMultiplier + lcgIncrement) & lcgMask)
}

// Intn advances the generator and returns a value in [0, n) along with the
// advanced seed. For n <= 0 it returns 0 and leaves the seed untouched.
func (s Seed) Intn(n int) (int, Seed) {
	if n <= 0 {
		return 0, s
	}
	s = s.Next()
	return int((uint64(s) >> drawShift) % uint64(n)), s
}

// Float64 advances the generator and returns a value in [0, 1) built from the
// top 41 bits of the state.
func (s Seed) Float64() (float64, Seed) {
	s = s.Next()
	return float64(uint64(s)>>drawShift) / float64(uint64(1)<<(48-drawShift)), s
}
