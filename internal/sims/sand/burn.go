package sand

// BurnResult summarises one oil slab burn.
type BurnResult struct {
	InitialOil int
	Burned     int
	Steps      int
	PeakFire   int
	BurnedOut  bool
}

// Fraction is the share of the initial oil consumed.
func (r BurnResult) Fraction() float64 {
	if r.InitialOil == 0 {
		return 0
	}
	return float64(r.Burned) / float64(r.InitialOil)
}

// BurnTrial fills the lower half of an empty cfg-sized world with oil,
// replaces the slab's top centre cell with fire and steps until no fire is
// left or maxSteps passes have run.
func BurnTrial(cfg Config, maxSteps int) BurnResult {
	cfg.Scene = SceneEmpty
	world := NewWorld(cfg, nil)
	world.Reset(cfg.Seed)

	g := world.Grid()
	size := g.Size()
	top := size.H / 2
	for y := top; y < size.H-1; y++ {
		for x := 1; x < size.W-1; x++ {
			g.Set(x, y, Oil)
		}
	}
	g.Set(size.W/2, top, Fire)

	res := BurnResult{InitialOil: g.Count(Oil), PeakFire: 1, Steps: maxSteps}
	for step := 0; step < maxSteps; step++ {
		world.Step()
		fire := g.Count(Fire)
		if fire > res.PeakFire {
			res.PeakFire = fire
		}
		if fire == 0 {
			res.Steps = step + 1
			res.BurnedOut = true
			break
		}
	}
	res.Burned = res.InitialOil - g.Count(Oil)
	return res
}
