package sand

import (
	"sort"

	"github.com/aquilax/go-perlin"
	"gopkg.in/errgo.v1"
)

// Scene names accepted by Config.Scene.
const (
	SceneEmpty   = "empty"
	ScenePools   = "pools"
	SceneTerrain = "terrain"
)

var scenes = map[string]func(g *Grid, seed int64){
	SceneEmpty:   func(*Grid, int64) {},
	ScenePools:   seedPools,
	SceneTerrain: seedTerrain,
}

// Scenes returns the known scene names in sorted order.
func Scenes() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateScene reports an error for names Scenes does not list.
func ValidateScene(name string) error {
	if _, ok := scenes[name]; !ok {
		return errgo.Newf("unknown scene %q (have %v)", name, Scenes())
	}
	return nil
}

func seedScene(name string, g *Grid, seed int64) {
	if fn, ok := scenes[name]; ok {
		fn(g, seed)
	}
}

// seedPools builds three wall basins, each holding water under a slick of
// oil, with a spark touching the first slick and a block of sand overhead.
func seedPools(g *Grid, _ int64) {
	size := g.Size()
	w, h := size.W, size.H
	if w < 24 || h < 24 {
		return
	}
	const basins = 3
	span := (w - 2) / basins
	depth := h / 3
	floor := h - 2 - h/8
	top := floor - depth
	waterTop := floor - depth*2/3

	for i := 0; i < basins; i++ {
		left := 1 + i*span + span/6
		right := 1 + (i+1)*span - span/6 - 1
		for y := top; y <= floor; y++ {
			g.Set(left, y, Wall)
			g.Set(right, y, Wall)
		}
		for x := left; x <= right; x++ {
			g.Set(x, floor, Wall)
		}
		for y := waterTop - 2; y < floor; y++ {
			fill := Water
			if y < waterTop {
				fill = Oil
			}
			for x := left + 1; x < right; x++ {
				g.Set(x, y, fill)
			}
		}
		if i == 0 {
			g.Set((left+right)/2, waterTop-3, Fire)
		}
	}
	g.FillSquare(w/2, h/6, h/8, Sand)
}

// seedTerrain lays a Perlin ridge of wall across the lower part of the grid
// and drifts sand dunes over it.
func seedTerrain(g *Grid, seed int64) {
	size := g.Size()
	w, h := size.W, size.H
	if w < 8 || h < 8 {
		return
	}
	ridge := perlin.NewPerlin(2, 2, 3, seed)
	dunes := perlin.NewPerlin(2, 2, 3, seed+1)

	base := h * 3 / 4
	amp := float64(h) / 6
	for x := 1; x < w-1; x++ {
		fx := float64(x) / float64(w)
		top := base + int(ridge.Noise1D(fx*3)*amp)
		if top < h/3 {
			top = h / 3
		}
		if top > h-2 {
			top = h - 2
		}
		for y := top; y < h-1; y++ {
			g.Set(x, y, Wall)
		}
		depth := int((dunes.Noise1D(fx*5) + 1) * amp / 3)
		for y := top - depth; y < top; y++ {
			g.Set(x, y, Sand)
		}
	}
}
