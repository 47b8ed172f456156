package snow

const (
	// WallPixel is the opaque grey used for wall cells.
	WallPixel uint32 = 0xff444444
	// Background is written for empty cells: fully transparent black.
	Background uint32 = 0x00000000
)

// Decode expands one cell half into a little-endian RGBA8888 pixel
// (A<<24 | B<<16 | G<<8 | R).
func Decode(v uint16) uint32 {
	if v&WallBit != 0 {
		return WallPixel
	}
	if v == 0 {
		return Background
	}
	r, g, b := Unpack(v)
	return 0xff000000 | uint32(b)<<19 | uint32(g)<<11 | uint32(r)<<3
}

// DecodeFrame writes the settled state of frame into pixels without stepping.
// It is what StepDecode would have produced for the same frame.
func DecodeFrame(frame uint32, buf []uint32, w, h int, pixels []uint32) error {
	if err := validate(buf, w, h); err != nil {
		return err
	}
	if err := validatePixels(pixels, w, h); err != nil {
		return err
	}
	decode(writeShift(frame), buf[:w*h], pixels[:w*h])
	return nil
}

func decode(shift uint, cells, pixels []uint32) {
	for i, c := range cells {
		pixels[i] = Decode(half(c, shift))
	}
}
