package sand

import (
	"testing"

	"dsand/internal/core"
)

func TestSessionExposesBrushSize(t *testing.T) {
	s := NewSession(New(16, 12), NewBrush(DefaultConfig().Brush))
	var sim core.Sim = s
	setter, ok := sim.(core.IntParameterSetter)
	if !ok {
		t.Fatal("session should accept int parameters")
	}
	if _, ok := sim.(core.FloatParameterSetter); !ok {
		t.Fatal("session should still accept the fire chances")
	}

	if !setter.SetIntParameter(paramBrushSize, 9) {
		t.Fatal("brush size should be adjustable")
	}
	if s.Brush().Size() != 9 {
		t.Fatalf("brush size = %d, want 9", s.Brush().Size())
	}
	if p, ok := s.Parameters().Lookup(paramBrushSize); !ok || p.Value != "9" || p.Type != core.ParamTypeInt {
		t.Fatalf("unexpected brush parameter %+v (found %v)", p, ok)
	}

	setter.SetIntParameter(paramBrushSize, 500)
	if s.Brush().Size() != MaxBrush {
		t.Fatalf("brush size should clamp to %d, got %d", MaxBrush, s.Brush().Size())
	}
	if setter.SetIntParameter("seed", 3) {
		t.Fatal("only the brush size is an int control")
	}
}

func TestSessionControlsMatchParameters(t *testing.T) {
	s := NewSession(New(16, 12), NewBrush(DefaultConfig().Brush))
	controls := s.ParameterControls()
	if len(controls) != 3 {
		t.Fatalf("expected 3 controls, got %d", len(controls))
	}
	first := controls[0]
	if first.Key != paramBrushSize || first.Type != core.ParamTypeInt || first.Step != 2 || first.Max != MaxBrush {
		t.Fatalf("unexpected brush control %+v", first)
	}
	snap := s.Parameters()
	for _, c := range controls {
		if _, ok := snap.Lookup(c.Key); !ok {
			t.Fatalf("control %q has no matching parameter", c.Key)
		}
	}
}
