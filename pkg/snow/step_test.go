package snow

import (
	"errors"
	"slices"
	"testing"

	"snowfall/pkg/core"
)

// layout renders the settled state after frame: '#' wall, 'o' flake, '.' empty.
func layout(buf []uint32, w, h int, frame uint32) []string {
	shift := writeShift(frame)
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		row := make([]byte, w)
		for x := 0; x < w; x++ {
			v := half(buf[Index(w, x, y)], shift)
			switch {
			case v&WallBit != 0:
				row[x] = '#'
			case v != 0:
				row[x] = 'o'
			default:
				row[x] = '.'
			}
		}
		rows[y] = string(row)
	}
	return rows
}

func fillRow(buf []uint32, w, y int) {
	for x := 1; x < w-1; x++ {
		buf[Index(w, x, y)] = Filled(White)
	}
}

func TestScenarioRowOneFalls(t *testing.T) {
	const w, h = 5, 4
	buf := make([]uint32, w*h)
	fillRow(buf, w, 1)

	st, err := NewStepper(DefaultOptions()).Step(0, buf, w, h)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	want := []string{
		"#...#",
		"#..o#",
		"#.oo#",
		"#...#",
	}
	if got := layout(buf, w, h, 0); !slices.Equal(got, want) {
		t.Fatalf("frame 0 layout = %q, want %q", got, want)
	}
	if st.Moved != 2 || st.Stayed != 1 || st.Draws != 2 || st.Particles != 3 {
		t.Fatalf("frame 0 stats = %+v", st)
	}

	st, err = NewStepper(DefaultOptions()).Step(1, buf, w, h)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	want = []string{
		"#...#",
		"#...#",
		"#..o#",
		"#.oo#",
	}
	if got := layout(buf, w, h, 1); !slices.Equal(got, want) {
		t.Fatalf("frame 1 layout = %q, want %q", got, want)
	}
	if st.Moved != 3 || st.Particles != 3 {
		t.Fatalf("frame 1 stats = %+v", st)
	}
}

func TestScenarioReplayable(t *testing.T) {
	const w, h = 5, 4
	run := func() []uint32 {
		buf := make([]uint32, w*h)
		fillRow(buf, w, 1)
		for f := uint32(0); f < 2; f++ {
			if err := Step(f, buf, w, h); err != nil {
				t.Fatalf("Step(%d): %v", f, err)
			}
		}
		return buf
	}
	if a, b := run(), run(); !slices.Equal(a, b) {
		t.Fatal("identical runs produced different buffers")
	}
}

func TestEmitterShedsWithoutEmptying(t *testing.T) {
	const w, h = 5, 4
	buf := make([]uint32, w*h)
	fillRow(buf, w, 0)
	s := NewStepper(DefaultOptions())

	wants := [][]string{
		{"#ooo#", "#ooo#", "#...#", "#...#"},
		{"#ooo#", "#ooo#", "#ooo#", "#...#"},
		{"#ooo#", "#ooo#", "#ooo#", "#ooo#"},
	}
	for f, want := range wants {
		st, err := s.Step(uint32(f), buf, w, h)
		if err != nil {
			t.Fatalf("Step(%d): %v", f, err)
		}
		if got := layout(buf, w, h, uint32(f)); !slices.Equal(got, want) {
			t.Fatalf("frame %d layout = %q, want %q", f, got, want)
		}
		if st.Shed != 3 {
			t.Fatalf("frame %d shed = %d, want 3", f, st.Shed)
		}
	}
}

func TestWithoutEmitterTopRowDrains(t *testing.T) {
	const w, h = 5, 4
	buf := make([]uint32, w*h)
	fillRow(buf, w, 0)
	s := NewStepper(Options{Order: OrderPermuted})

	for f := uint32(0); f < 3; f++ {
		st, err := s.Step(f, buf, w, h)
		if err != nil {
			t.Fatalf("Step(%d): %v", f, err)
		}
		if st.Moved != 3 || st.Shed != 0 {
			t.Fatalf("frame %d stats = %+v", f, st)
		}
	}
	want := []string{"#...#", "#...#", "#...#", "#ooo#"}
	if got := layout(buf, w, h, 2); !slices.Equal(got, want) {
		t.Fatalf("layout = %q, want %q", got, want)
	}
}

func TestSingleChoiceDrawsNothing(t *testing.T) {
	const w, h = 3, 2
	buf := make([]uint32, w*h)
	buf[Index(w, 1, 0)] = Filled(White)

	st, err := NewStepper(Options{Order: OrderPermuted}).Step(0, buf, w, h)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if st.Moved != 1 || st.Draws != 0 {
		t.Fatalf("stats = %+v, want one move and no draws", st)
	}
	if got := layout(buf, w, h, 0); !slices.Equal(got, []string{"#.#", "#o#"}) {
		t.Fatalf("layout = %q", got)
	}
}

func TestRowsProcessedBottomToTop(t *testing.T) {
	const w, h = 3, 4
	buf := make([]uint32, w*h)
	for y := 0; y < 3; y++ {
		buf[Index(w, 1, y)] = Filled(White)
	}

	st, err := NewStepper(Options{Order: OrderNatural}).Step(0, buf, w, h)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	// Each flake falls into the cell its lower neighbour just vacated.
	if st.Moved != 3 || st.Stayed != 0 {
		t.Fatalf("stats = %+v, want the whole column to move", st)
	}
	want := []string{"#.#", "#o#", "#o#", "#o#"}
	if got := layout(buf, w, h, 0); !slices.Equal(got, want) {
		t.Fatalf("layout = %q, want %q", got, want)
	}
}

func TestBottomRowStays(t *testing.T) {
	const w, h = 4, 2
	buf := make([]uint32, w*h)
	fillRow(buf, w, 1)
	s := NewStepper(Options{Order: OrderNatural})
	for f := uint32(0); f < 4; f++ {
		st, err := s.Step(f, buf, w, h)
		if err != nil {
			t.Fatalf("Step(%d): %v", f, err)
		}
		if st.Moved != 0 || st.Particles != 2 {
			t.Fatalf("frame %d stats = %+v", f, st)
		}
		if got := layout(buf, w, h, f); !slices.Equal(got, []string{"#..#", "#oo#"}) {
			t.Fatalf("frame %d layout = %q", f, got)
		}
	}
}

// randomScene seeds roughly a third of the interior with uniquely colored
// flakes so individual particles can be tracked between frames.
func randomScene(w, h int, seed core.Seed) []uint32 {
	buf := make([]uint32, w*h)
	next := uint16(1)
	for y := 0; y < h; y++ {
		for x := 1; x < w-1; x++ {
			var v int
			v, seed = seed.Intn(3)
			if v == 0 {
				buf[Index(w, x, y)] = Filled(next)
				next++
			}
		}
	}
	return buf
}

func positions(buf []uint32, w, h int, shift uint) map[uint16][2]int {
	out := map[uint16][2]int{}
	for y := 0; y < h; y++ {
		for x := 1; x < w-1; x++ {
			if p := half(buf[Index(w, x, y)], shift); p != 0 && p&WallBit == 0 {
				out[p] = [2]int{x, y}
			}
		}
	}
	return out
}

func TestLocalityAndConservation(t *testing.T) {
	const w, h = 16, 12
	buf := randomScene(w, h, 42)
	s := NewStepper(Options{Order: OrderPermuted})

	prev := positions(buf, w, h, 0)
	for f := uint32(0); f < 20; f++ {
		if _, err := s.Step(f, buf, w, h); err != nil {
			t.Fatalf("Step(%d): %v", f, err)
		}
		cur := positions(buf, w, h, writeShift(f))
		if len(cur) != len(prev) {
			t.Fatalf("frame %d: %d flakes, had %d", f, len(cur), len(prev))
		}
		for p, was := range prev {
			now, ok := cur[p]
			if !ok {
				t.Fatalf("frame %d: flake %d vanished", f, p)
			}
			dx, dy := now[0]-was[0], now[1]-was[1]
			stayed := dx == 0 && dy == 0
			fell := dy == 1 && dx >= -1 && dx <= 1
			if !stayed && !fell {
				t.Fatalf("frame %d: flake %d went %v -> %v", f, p, was, now)
			}
		}
		prev = cur
	}
}

func TestEmitterConservation(t *testing.T) {
	const w, h = 12, 10
	buf := randomScene(w, h, 7)
	fillRow(buf, w, 0)
	s := NewStepper(DefaultOptions())

	below := func(shift uint) int {
		n := 0
		for y := 1; y < h; y++ {
			for x := 1; x < w-1; x++ {
				if half(buf[Index(w, x, y)], shift) != 0 {
					n++
				}
			}
		}
		return n
	}

	before := below(0)
	for f := uint32(0); f < 15; f++ {
		st, err := s.Step(f, buf, w, h)
		if err != nil {
			t.Fatalf("Step(%d): %v", f, err)
		}
		after := below(writeShift(f))
		if after != before+st.Shed {
			t.Fatalf("frame %d: rows below top went %d -> %d with %d shed", f, before, after, st.Shed)
		}
		before = after
	}
}

func TestWallsPermanent(t *testing.T) {
	const w, h = 9, 7
	buf := randomScene(w, h, 3)
	s := NewStepper(DefaultOptions())
	for f := uint32(0); f < 30; f++ {
		if _, err := s.Step(f, buf, w, h); err != nil {
			t.Fatalf("Step(%d): %v", f, err)
		}
		for y := 0; y < h; y++ {
			for _, x := range []int{0, w - 1} {
				if c := buf[Index(w, x, y)]; c != WallCell {
					t.Fatalf("frame %d: wall (%d,%d) = %#x", f, x, y, c)
				}
			}
		}
	}
}

func TestFrameZeroAgainKeepsParticles(t *testing.T) {
	const w, h = 5, 4
	buf := make([]uint32, w*h)
	fillRow(buf, w, 1)
	s := NewStepper(Options{Order: OrderNatural})
	if _, err := s.Step(0, buf, w, h); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Step(1, buf, w, h); err != nil {
		t.Fatal(err)
	}
	settled := layout(buf, w, h, 1)

	// Frame 0 reads the low half, which frame 1 just settled into.
	st, err := s.Step(0, buf, w, h)
	if err != nil {
		t.Fatal(err)
	}
	if st.Particles != 3 {
		t.Fatalf("re-running frame 0 changed the flake count to %d", st.Particles)
	}
	// The pile is already resting, so nothing may move back up to row 1.
	if got := layout(buf, w, h, 0); !slices.Equal(got, settled) {
		t.Fatalf("re-running frame 0 moved flakes: %q, want %q", got, settled)
	}
}

func TestDeterministicAcrossStepperInstances(t *testing.T) {
	const w, h = 20, 15
	a := randomScene(w, h, 11)
	b := slices.Clone(a)
	pa := make([]uint32, w*h)
	pb := make([]uint32, w*h)
	for f := uint32(0); f < 25; f++ {
		if _, err := NewStepper(DefaultOptions()).StepDecode(f, a, w, h, pa); err != nil {
			t.Fatal(err)
		}
		if err := StepDecode(f, b, w, h, pb); err != nil {
			t.Fatal(err)
		}
	}
	if !slices.Equal(a, b) || !slices.Equal(pa, pb) {
		t.Fatal("stepper instances diverged")
	}
}

func TestNaturalOrderDiffersFromPermuted(t *testing.T) {
	const w, h = 24, 4
	a := make([]uint32, w*h)
	fillRow(a, w, 0)
	b := slices.Clone(a)

	sa, _ := NewStepper(Options{Order: OrderNatural}).Step(0, a, w, h)
	sb, _ := NewStepper(Options{Order: OrderPermuted}).Step(0, b, w, h)
	if sa.Particles != sb.Particles {
		t.Fatalf("order changed flake count: %d vs %d", sa.Particles, sb.Particles)
	}
	if slices.Equal(a, b) {
		t.Fatal("expected permuted order to resolve contention differently")
	}
}

func TestStepRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		n    int
		want error
	}{
		{"narrow", 2, 4, 8, ErrWidth},
		{"short", 4, 1, 4, ErrHeight},
		{"small buffer", 4, 4, 15, ErrBuffer},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf := make([]uint32, tc.n)
			err := Step(0, buf, tc.w, tc.h)
			if !errors.Is(err, tc.want) {
				t.Fatalf("Step error = %v, want %v", err, tc.want)
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *ConfigError, got %T", err)
			}
			for i, c := range buf {
				if c != 0 {
					t.Fatalf("cell %d touched on rejected call", i)
				}
			}
		})
	}
}

func TestStepDecodeRejectsSmallPixels(t *testing.T) {
	buf := make([]uint32, 16)
	err := StepDecode(0, buf, 4, 4, make([]uint32, 15))
	if !errors.Is(err, ErrPixels) {
		t.Fatalf("error = %v, want ErrPixels", err)
	}
	if buf[0] != 0 {
		t.Fatal("walls stamped despite invalid pixel buffer")
	}
	if got := err.Error(); got != "snow: invalid pixel buffer length: got 15, need 16" {
		t.Fatalf("message = %q", got)
	}
}

func TestPermutationCoversRow(t *testing.T) {
	perm := make([]int, 10)
	seed := fillOrder(OrderPermuted, perm, core.FrameSeed(5))
	if seed == core.FrameSeed(5) {
		t.Fatal("permuted order must consume the seed")
	}
	sorted := slices.Clone(perm)
	slices.Sort(sorted)
	for i, v := range sorted {
		if v != i {
			t.Fatalf("permutation %v is missing %d", perm, i)
		}
	}

	start := core.Seed(77)
	if fillOrder(OrderNatural, perm, start) != start {
		t.Fatal("natural order must not draw")
	}
	for i, v := range perm {
		if v != i {
			t.Fatalf("natural order = %v", perm)
		}
	}
}
