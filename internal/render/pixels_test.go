package render

import (
	"image/color"
	"slices"
	"testing"

	"snowfall/pkg/snow"
)

func TestFillRGBA(t *testing.T) {
	buf := make([]byte, 8)
	FillRGBA(buf, []uint32{snow.WallPixel, snow.Decode(snow.Pack(31, 0, 0))})
	want := []byte{0x44, 0x44, 0x44, 0xff, 0xf8, 0, 0, 0xff}
	if !slices.Equal(buf, want) {
		t.Fatalf("FillRGBA = %v, want %v", buf, want)
	}
}

func TestImageScalesAndComposites(t *testing.T) {
	bg := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	pixels := []uint32{snow.Background, snow.WallPixel}
	img := Image(pixels, 2, 1, 3, bg)

	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 3 {
		t.Fatalf("bounds = %v", b)
	}
	if got := img.RGBAAt(2, 2); got != bg {
		t.Fatalf("empty cell = %v, want background %v", got, bg)
	}
	if got := img.RGBAAt(3, 0); got != (color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}) {
		t.Fatalf("wall cell = %v", got)
	}
}

func TestOverHalfAlpha(t *testing.T) {
	got := over(color.RGBA{R: 255, A: 128}, color.RGBA{B: 255, A: 255})
	if got.R != 128 || got.B != 127 || got.A != 255 {
		t.Fatalf("over = %v", got)
	}
}
