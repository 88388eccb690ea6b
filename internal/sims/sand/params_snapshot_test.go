package sand

import (
	"testing"

	"dsand/internal/core"
)

func TestParametersReportFireChances(t *testing.T) {
	world := New(16, 12)
	snap := world.Parameters()
	p, ok := snap.Lookup(paramIgnite)
	if !ok || p.Value != "0.5" || p.Type != core.ParamTypeFloat {
		t.Fatalf("unexpected ignite parameter %+v (found %v)", p, ok)
	}
	if p, ok := snap.Lookup("w"); !ok || p.Value != "16" {
		t.Fatalf("unexpected width parameter %+v", p)
	}
}

func TestSetFloatParameterClamps(t *testing.T) {
	world := New(16, 12)
	if !world.SetFloatParameter(paramExtinguish, 1.5) {
		t.Fatal("extinguish chance should be adjustable")
	}
	if got := world.Config().Params.ExtinguishChance; got != 1 {
		t.Fatalf("extinguish chance should clamp to 1, got %v", got)
	}
	if !world.SetFloatParameter(paramIgnite, -0.2) {
		t.Fatal("ignite chance should be adjustable")
	}
	if got := world.Config().Params.IgniteChance; got != 0 {
		t.Fatalf("ignite chance should clamp to 0, got %v", got)
	}
	if world.SetFloatParameter("gravity", 2) {
		t.Fatal("unknown keys should be rejected")
	}

	controls := world.ParameterControls()
	if len(controls) != 2 {
		t.Fatalf("expected 2 controls, got %d", len(controls))
	}
	for _, c := range controls {
		if _, ok := world.Parameters().Lookup(c.Key); !ok {
			t.Fatalf("control %q has no matching parameter", c.Key)
		}
	}
}

func TestRegisteredFactory(t *testing.T) {
	factory, ok := core.Sims()["sand"]
	if !ok {
		t.Fatal("sand sim should register itself")
	}
	sim := factory(map[string]string{"w": "30", "h": "20"})
	if size := sim.Size(); size.W != 30 || size.H != 20 {
		t.Fatalf("factory ignored overrides: %+v", size)
	}
	if sim.Name() != "sand" {
		t.Fatalf("unexpected name %q", sim.Name())
	}
}
