package sand

import "testing"

func TestBrushDefaults(t *testing.T) {
	b := NewBrush(DefaultConfig().Brush)
	if b.Selected() != Sand {
		t.Fatalf("default brush paints %v, expected sand", b.Selected())
	}
	if b.Size() != 5 || b.Max() != MaxBrush {
		t.Fatalf("unexpected default size %d / max %d", b.Size(), b.Max())
	}

	b = NewBrush(BrushConfig{Size: 99, Max: 0, Step: 0})
	if b.Size() != MaxBrush {
		t.Fatalf("oversized brush should clamp to %d, got %d", MaxBrush, b.Size())
	}

	b = NewBrush(BrushConfig{Size: 5, Max: 100, Step: 2})
	if b.Max() != MaxBrush {
		t.Fatalf("brush max above %d should cap, got %d", MaxBrush, b.Max())
	}
}

func TestSelectTypeDigits(t *testing.T) {
	b := NewBrush(DefaultConfig().Brush)
	want := map[Key]Particle{
		KeyDigit1: Sand,
		KeyDigit2: Water,
		KeyDigit3: Wall,
		KeyDigit4: Empty,
		KeyDigit5: Fire,
		KeyDigit6: Oil,
	}
	for key, p := range want {
		if !b.SelectType(key) {
			t.Fatalf("key %d should select a particle", key)
		}
		if b.Selected() != p {
			t.Fatalf("key %d selected %v, expected %v", key, b.Selected(), p)
		}
	}

	b.SelectType(KeyDigit2)
	for _, key := range []Key{KeyNone, KeyGrow, KeyShrink, Key(42)} {
		if b.SelectType(key) {
			t.Fatalf("key %d should be ignored", key)
		}
	}
	if b.Selected() != Water {
		t.Fatal("ignored keys must not change the selection")
	}
}

func TestResizeBrushClamps(t *testing.T) {
	b := NewBrush(DefaultConfig().Brush)
	b.ResizeBrush(KeyGrow)
	if b.Size() != 7 {
		t.Fatalf("grow should add 2, got %d", b.Size())
	}
	for i := 0; i < 50; i++ {
		b.ResizeBrush(KeyGrow)
		if b.Size() > MaxBrush {
			t.Fatalf("brush grew past the maximum: %d", b.Size())
		}
	}
	if b.Size() != MaxBrush {
		t.Fatalf("repeated grow should settle at %d, got %d", MaxBrush, b.Size())
	}
	for i := 0; i < 50; i++ {
		b.ResizeBrush(KeyShrink)
		if b.Size() < 1 {
			t.Fatalf("brush shrank below 1: %d", b.Size())
		}
	}
	if b.Size() != 1 {
		t.Fatalf("repeated shrink should settle at 1, got %d", b.Size())
	}
	if b.ResizeBrush(KeyDigit1) {
		t.Fatal("digit keys should not resize")
	}
}

func TestHandleKeyRoutes(t *testing.T) {
	b := NewBrush(DefaultConfig().Brush)
	if !b.HandleKey(KeyDigit6) || b.Selected() != Oil {
		t.Fatal("HandleKey should select oil on 6")
	}
	if !b.HandleKey(KeyShrink) || b.Size() != 3 {
		t.Fatalf("HandleKey should shrink, size %d", b.Size())
	}
	if b.HandleKey(KeyNone) {
		t.Fatal("KeyNone should be ignored")
	}
}

func TestApplyPaintsOnlyWhileHeld(t *testing.T) {
	g := NewGrid(20, 20)
	b := NewBrush(BrushConfig{Size: 3, Max: MaxBrush, Step: 2})
	b.SelectType(KeyDigit2)

	b.Apply(g, Pointer{X: 10, Y: 10})
	if g.Count(Water) != 0 {
		t.Fatal("brush painted without the button held")
	}
	b.Apply(g, Pointer{X: 10, Y: 10, Held: true})
	if g.Count(Water) != 9 {
		t.Fatalf("held brush should paint 9 cells, got %d", g.Count(Water))
	}

	b.SelectType(KeyDigit4)
	b.Apply(g, Pointer{X: 10, Y: 10, Held: true})
	if g.Count(Water) != 0 {
		t.Fatal("the empty brush should erase")
	}

	b.SelectType(KeyDigit3)
	b.Apply(g, Pointer{X: 0, Y: 0, Held: true})
	if g.Get(0, 0) != IndestructibleWall || g.Get(1, 1) != Wall {
		t.Fatal("brush at the corner should paint the interior only")
	}
}
