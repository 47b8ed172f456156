package snow

import (
	"strconv"

	"snowfall/pkg/core"
)

// Parameters reports the live configuration and last-frame counters.
func (f *Field) Parameters() core.ParameterSnapshot {
	st := f.stats
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Field",
			Params: []core.Parameter{
				intParam("w", "Width", f.w),
				intParam("h", "Height", f.h),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(f.cfg.Seed, 10)},
				{Key: "fill", Label: "Fill", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(f.cfg.Fill, 'f', 2, 64)},
				{Key: "palette", Label: "Palette", Type: core.ParamTypeText, Value: string(f.cfg.Palette)},
			},
		},
		{
			Name: "Stepper",
			Params: []core.Parameter{
				boolParam("emitter", "Emitter", f.cfg.Emitter),
				boolParam("permuted", "Permuted", f.cfg.Order == OrderPermuted),
			},
		},
		{
			Name: "Frame",
			Params: []core.Parameter{
				intParam("frame", "Frame", int(f.frame)),
				intParam("particles", "Flakes", st.Particles),
				intParam("moved", "Moved", st.Moved),
				intParam("shed", "Shed", st.Shed),
				intParam("draws", "Draws", st.Draws),
			},
		},
	}}
}

// ParameterControls lists the toggles the HUD can flip.
func (f *Field) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "emitter", Label: "Emitter", Step: 1, Min: 0, Max: 1},
		{Key: "permuted", Label: "Permuted", Step: 1, Min: 0, Max: 1},
	}
}

// SetIntParameter flips a stepper toggle; non-zero means on.
func (f *Field) SetIntParameter(key string, value int) bool {
	opts := f.stepper.Options()
	switch key {
	case "emitter":
		opts.Emitter = value != 0
	case "permuted":
		opts.Order = OrderNatural
		if value != 0 {
			opts.Order = OrderPermuted
		}
	default:
		return false
	}
	f.SetOptions(opts)
	return true
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func boolParam(key, label string, v bool) core.Parameter {
	value := "0"
	if v {
		value = "1"
	}
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: value}
}
