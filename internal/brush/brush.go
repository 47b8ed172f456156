// Package brush picks colors for flakes painted by hand.
package brush

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"snowfall/pkg/snow"
)

// Brush walks the hue circle one degree per flake, with a slow saturation
// wobble so long strokes do not look flat.
type Brush struct {
	angle float64
}

// New returns a brush starting at hue 0.
func New() *Brush { return &Brush{} }

// Angle reports the hue, in degrees, the next flake will use.
func (b *Brush) Angle() float64 { return b.angle }

// Next returns the payload for the next painted flake and advances the hue.
func (b *Brush) Next() uint16 {
	p := Payload(b.angle)
	b.angle++
	if b.angle >= 360*4 {
		b.angle -= 360 * 4
	}
	return p
}

// Payload converts a hue angle into a 5-5-5 snow payload.
func Payload(angle float64) uint16 {
	sat := (1 - 0.125) + math.Cos(angle/180/4*math.Pi)*0.125
	c := colorful.Hsl(math.Mod(angle, 360), sat, 0.5).Clamped()
	p := snow.Pack(uint8(c.R*31), uint8(c.G*31), uint8(c.B*31))
	if p == 0 {
		// Never hand out an empty payload; it would not paint anything.
		p = snow.Pack(1, 1, 1)
	}
	return p
}
