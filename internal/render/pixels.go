package render

import (
	"image"
	"image/color"
)

// FillRGBA expands little-endian RGBA8888 pixels into buf, four bytes each.
// buf must hold at least 4*len(pixels) bytes.
func FillRGBA(buf []byte, pixels []uint32) {
	for i, p := range pixels {
		base := i * 4
		buf[base+0] = uint8(p)
		buf[base+1] = uint8(p >> 8)
		buf[base+2] = uint8(p >> 16)
		buf[base+3] = uint8(p >> 24)
	}
}

// RGBA splits one packed pixel into a color.RGBA.
func RGBA(p uint32) color.RGBA {
	return color.RGBA{R: uint8(p), G: uint8(p >> 8), B: uint8(p >> 16), A: uint8(p >> 24)}
}

// Image draws a w*h pixel grid into a new image, each cell scale pixels wide,
// composited over bg so transparent cells show the background.
func Image(pixels []uint32, w, h, scale int, bg color.RGBA) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := over(RGBA(pixels[y*w+x]), bg)
			for sy := 0; sy < scale; sy++ {
				off := img.PixOffset(x*scale, y*scale+sy)
				for sx := 0; sx < scale; sx++ {
					img.Pix[off+0] = c.R
					img.Pix[off+1] = c.G
					img.Pix[off+2] = c.B
					img.Pix[off+3] = c.A
					off += 4
				}
			}
		}
	}
	return img
}

// over composites a straight-alpha foreground onto an opaque background.
func over(fg, bg color.RGBA) color.RGBA {
	switch fg.A {
	case 0xff:
		return fg
	case 0:
		return bg
	}
	a := uint32(fg.A)
	mix := func(f, b uint8) uint8 {
		return uint8((uint32(f)*a + uint32(b)*(255-a) + 127) / 255)
	}
	return color.RGBA{R: mix(fg.R, bg.R), G: mix(fg.G, bg.G), B: mix(fg.B, bg.B), A: 0xff}
}
