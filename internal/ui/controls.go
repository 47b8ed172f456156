package ui

import (
	"image"
	"strconv"

	"snowfall/pkg/core"
)

const (
	panelPadding   = 12
	lineHeight     = 30
	readoutHeight  = 16
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 20
	controlsTop    = panelPadding + headerBaseline + 14
)

type controlState struct {
	control  core.ParameterControl
	value    int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// controls tracks HUD-adjustable parameters independently of drawing.
type controls struct {
	states []controlState
	setter core.IntParameterSetter
}

func newControls(sim core.Sim, width int) controls {
	var c controls
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			c.states = append(c.states, controlState{control: ctrl})
		}
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		c.setter = setter
	}
	c.layout(width)
	return c
}

func (c *controls) layout(width int) {
	for i := range c.states {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		c.states[i].top = top
		c.states[i].minusRect = minus
		c.states[i].plusRect = plus
	}
}

// bottom is the first y below the controls.
func (c *controls) bottom() int {
	return controlsTop + len(c.states)*lineHeight
}

func (c *controls) refresh(snap core.ParameterSnapshot) {
	values := map[string]string{}
	for _, group := range snap.Groups {
		for _, p := range group.Params {
			values[p.Key] = p.Value
		}
	}
	for i := range c.states {
		st := &c.states[i]
		parsed, err := strconv.Atoi(values[st.control.Key])
		st.value, st.hasValue = parsed, err == nil
	}
}

func (c *controls) canAdjust(st *controlState, direction int) bool {
	if c.setter == nil || !st.hasValue || direction == 0 {
		return false
	}
	return st.control.Clamp(st.value+direction*step(st.control)) != st.value
}

func (c *controls) adjust(st *controlState, direction int) bool {
	if !c.canAdjust(st, direction) {
		return false
	}
	target := st.control.Clamp(st.value + direction*step(st.control))
	if !c.setter.SetIntParameter(st.control.Key, target) {
		return false
	}
	st.value = target
	return true
}

// click applies a press at panel coordinates (x, y).
func (c *controls) click(x, y int) bool {
	for i := range c.states {
		st := &c.states[i]
		if pointInRect(x, y, st.minusRect) {
			return c.adjust(st, -1)
		}
		if pointInRect(x, y, st.plusRect) {
			return c.adjust(st, 1)
		}
	}
	return false
}

func step(ctrl core.ParameterControl) int {
	if ctrl.Step <= 0 {
		return 1
	}
	return ctrl.Step
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}
