// Package term draws a snowfall field in a terminal and runs the console demo.
package term

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"snowfall/internal/render"
	"snowfall/pkg/snow"
)

// CellWidth is the number of terminal columns per grid cell; two columns make
// a roughly square cell.
const CellWidth = 2

// Sky is the color behind empty cells.
var Sky = color.RGBA{R: 8, G: 12, B: 28, A: 255}

// Renderer paints decoded pixels onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	sky    tcell.Style
}

// NewRenderer returns a renderer for screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		sky:    tcell.StyleDefault.Background(rgb(Sky)).Foreground(tcell.ColorWhite),
	}
}

// Draw paints a w*h pixel grid from the top-left corner and a status line
// under it, then shows the screen.
func (r *Renderer) Draw(pixels []uint32, w, h int, status string) {
	r.screen.Clear()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			st := r.cellStyle(pixels[y*w+x])
			for i := 0; i < CellWidth; i++ {
				r.screen.SetContent(x*CellWidth+i, y, ' ', nil, st)
			}
		}
	}
	r.drawText(0, h, status)
	r.screen.Show()
}

func (r *Renderer) cellStyle(p uint32) tcell.Style {
	c := render.RGBA(p)
	if c.A == 0 {
		return r.sky
	}
	return r.sky.Background(rgb(c))
}

func (r *Renderer) drawText(x, y int, s string) {
	for i, ch := range s {
		r.screen.SetContent(x+i, y, ch, nil, tcell.StyleDefault)
	}
}

// CellAt maps a terminal position to a grid cell.
func CellAt(col, row int) (x, y int) {
	return col / CellWidth, row
}

// Status formats the counters shown under the field.
func Status(st snow.Stats, paused bool) string {
	state := "running"
	if paused {
		state = "paused"
	}
	return fmt.Sprintf("frame %d  flakes %d  moved %d  [%s]  space pause  n step  r reset  q quit",
		st.Frame, st.Particles, st.Moved, state)
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
