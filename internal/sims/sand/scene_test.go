package sand

import (
	"slices"
	"testing"
)

func TestScenesListed(t *testing.T) {
	want := []string{SceneEmpty, ScenePools, SceneTerrain}
	if got := Scenes(); !slices.Equal(got, want) {
		t.Fatalf("Scenes() = %v, expected %v", got, want)
	}
	for _, name := range want {
		if err := ValidateScene(name); err != nil {
			t.Fatalf("ValidateScene(%q) = %v", name, err)
		}
	}
	if err := ValidateScene("volcano"); err == nil {
		t.Fatal("unknown scene should be rejected")
	}
}

func TestPoolsScene(t *testing.T) {
	g := NewGrid(96, 72)
	seedPools(g, 0)
	assertBorder(t, g)
	for _, p := range []Particle{Wall, Water, Oil, Fire, Sand} {
		if g.Count(p) == 0 {
			t.Fatalf("pools scene should contain %v", p)
		}
	}
	if g.Count(Fire) != 1 {
		t.Fatalf("pools scene should start with one spark, got %d", g.Count(Fire))
	}

	small := NewGrid(10, 10)
	seedPools(small, 0)
	if small.Count(Empty) != 64 {
		t.Fatal("pools scene should skip grids too small for basins")
	}
}

func TestTerrainSceneSeeded(t *testing.T) {
	a := NewGrid(120, 80)
	b := NewGrid(120, 80)
	c := NewGrid(120, 80)
	seedTerrain(a, 3)
	seedTerrain(b, 3)
	seedTerrain(c, 4)

	assertBorder(t, a)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("terrain should be deterministic for a seed")
	}
	if slices.Equal(a.Cells(), c.Cells()) {
		t.Fatal("different seeds should give different terrain")
	}
	if a.Count(Wall) == 0 {
		t.Fatal("terrain should lay down wall")
	}
	for x := 1; x < 119; x++ {
		if a.Get(x, 78) != Wall {
			t.Fatalf("column %d should have wall on the floor row", x)
		}
	}
}
