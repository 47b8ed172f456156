package snow

// Each cell packs two 16-bit states. Frame parity picks which half is read
// and which is written, so the buffer doubles as current and next grid.
const (
	// WallBit marks a permanent boundary cell within a half.
	WallBit uint16 = 0x8000
	// PayloadMask covers the 15 color bits of a half.
	PayloadMask uint16 = 0x7fff

	// WallCell is a wall marker in both halves.
	WallCell uint32 = uint32(WallBit)<<16 | uint32(WallBit)

	halfBits = 16
	halfMask = 0xffff
)

// readShift returns the bit offset of the half read during frame.
func readShift(frame uint32) uint { return uint(frame&1) * halfBits }

// writeShift returns the bit offset of the half written during frame, which
// is also the half holding the settled state once the frame completes.
func writeShift(frame uint32) uint { return uint((frame+1)&1) * halfBits }

func half(cell uint32, shift uint) uint16 { return uint16(cell >> shift) }

func setHalf(cell uint32, shift uint, v uint16) uint32 {
	return cell&^(halfMask<<shift) | uint32(v)<<shift
}

// clearHalf drops the payload of one half but keeps its wall bit.
func clearHalf(cell uint32, shift uint) uint32 {
	return cell &^ (uint32(PayloadMask) << shift)
}

// Pack builds a 15-bit payload from 5-bit red, green and blue channels.
// Values above 31 are truncated to their low five bits.
func Pack(r, g, b uint8) uint16 {
	return uint16(r&31) | uint16(g&31)<<5 | uint16(b&31)<<10
}

// Unpack splits a payload into its 5-bit channels.
func Unpack(p uint16) (r, g, b uint8) {
	return uint8(p & 31), uint8(p >> 5 & 31), uint8(p >> 10 & 31)
}

// Filled returns a cell holding payload in both halves, so it reads as
// occupied whatever the frame parity.
func Filled(payload uint16) uint32 {
	p := uint32(payload & PayloadMask)
	return p<<halfBits | p
}

// White is the brightest snow payload.
const White uint16 = 0x7fff

// Index returns the linear buffer index of (x, y) for a grid of width w.
func Index(w, x, y int) int { return y*w + x }
