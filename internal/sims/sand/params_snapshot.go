package sand

import (
	"strconv"

	"dsand/internal/core"
)

const (
	paramExtinguish = "fire_extinguish_chance"
	paramIgnite     = "fire_ignite_chance"
)

// Parameters reports the world's current tunables for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				floatParam(paramExtinguish, "Burn out", w.cfg.Params.ExtinguishChance),
				floatParam(paramIgnite, "Ignite oil", w.cfg.Params.IgniteChance),
			},
		},
	}}
}

// ParameterControls lists the parameters adjustable at runtime.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		chanceControl(paramExtinguish, "Burn out"),
		chanceControl(paramIgnite, "Ignite oil"),
	}
}

// SetFloatParameter updates a fire probability, clamped to [0, 1].
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case paramExtinguish:
		w.cfg.Params.ExtinguishChance = clampChance(value)
	case paramIgnite:
		w.cfg.Params.IgniteChance = clampChance(value)
	default:
		return false
	}
	return true
}

func chanceControl(key, label string) core.ParameterControl {
	return core.ParameterControl{
		Key:    key,
		Label:  label,
		Type:   core.ParamTypeFloat,
		Step:   0.05,
		Min:    0,
		Max:    1,
		HasMin: true,
		HasMax: true,
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}
