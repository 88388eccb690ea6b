package sand

import "strconv"

// MaxBrush is the largest brush edge length.
const MaxBrush = 32

// Params holds the fire probabilities, each checked once per draw.
type Params struct {
	ExtinguishChance float64
	IgniteChance     float64
}

// BrushConfig sets the initial brush size and its adjustment limits.
type BrushConfig struct {
	Size int
	Max  int
	Step int
}

// Config controls the sand world dimensions, seeding and rule tunables.
type Config struct {
	Width  int
	Height int

	Seed  int64
	Scene string

	Params Params
	Brush  BrushConfig
}

// DefaultConfig returns the standard 480x360 canvas.
func DefaultConfig() Config {
	return Config{
		Width:  480,
		Height: 360,
		Seed:   42,
		Scene:  SceneEmpty,
		Params: Params{
			ExtinguishChance: 0.2,
			IgniteChance:     0.5,
		},
		Brush: BrushConfig{
			Size: 5,
			Max:  MaxBrush,
			Step: 2,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["scene"]; ok {
		if ValidateScene(v) == nil {
			c.Scene = v
		}
	}
	if v, ok := cfg["fire_extinguish_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.ExtinguishChance = clampChance(parsed)
		}
	}
	if v, ok := cfg["fire_ignite_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.IgniteChance = clampChance(parsed)
		}
	}
	if v, ok := cfg["brush_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Brush.Max = min(parsed, MaxBrush)
		}
	}
	if v, ok := cfg["brush_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Brush.Size = parsed
		}
	}
	if c.Brush.Size > c.Brush.Max {
		c.Brush.Size = c.Brush.Max
	}
	return c
}

func clampChance(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
