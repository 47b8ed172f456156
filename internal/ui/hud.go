//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"snowfall/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor  = color.RGBA{R: 150, G: 150, B: 165, A: 255}
	buttonColor = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	idleColor   = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim      core.Sim
	width    int
	panel    *ebiten.Image
	pixel    *ebiten.Image
	title    string
	controls controls
	snapshot core.ParameterSnapshot

	panelOffsetX int
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, controls: newControls(sim, width)}
	h.title = strings.ToUpper(sim.Name()[:1]) + sim.Name()[1:]
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Width returns the panel width in screen pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the snapshot and applies clicks on the panel buttons.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
	h.controls.refresh(h.snapshot)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if mx >= panelOffsetX {
			h.controls.click(mx-panelOffsetX, my)
		}
	}
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.sim.Size().H * max(scale, 1)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)
	h.drawControls()
	h.drawReadouts(h.controls.bottom() + panelPadding)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, titleColor)
	for i := range h.controls.states {
		st := &h.controls.states[i]
		y := st.top + labelBaseline
		text.Draw(h.panel, st.control.Label, face, panelPadding, y, labelColor)

		value, col := "--", mutedColor
		if st.hasValue {
			value, col = fmt.Sprint(st.value), labelColor
		}
		x := st.minusRect.Min.X - buttonGap - text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, x, y, col)

		h.drawButton(st.minusRect, "-", h.controls.canAdjust(st, -1))
		h.drawButton(st.plusRect, "+", h.controls.canAdjust(st, 1))
	}
}

func (h *HUD) drawReadouts(top int) {
	face := basicfont.Face7x13
	y := top
	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y, titleColor)
		y += readoutHeight
		for _, p := range group.Params {
			text.Draw(h.panel, p.Label, face, panelPadding, y, mutedColor)
			vw := text.BoundString(face, p.Value).Dx()
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-vw, y, labelColor)
			y += readoutHeight
		}
		y += readoutHeight / 2
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonColor, labelColor
	if !enabled {
		bg, fg = idleColor, mutedColor
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
