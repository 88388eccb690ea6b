package term

import (
	"context"
	"testing"
	"time"

	"dsand/internal/sims/sand"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func newFrontend(t *testing.T) (*Frontend, tcell.SimulationScreen) {
	t.Helper()
	s := newScreen(t, 20, 11)
	w, h := GridSize(s.Size())
	world := sand.New(w, h)
	brush := sand.NewBrush(sand.DefaultConfig().Brush)
	return New(s, world, brush, 60), s
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestGridSizeReservesStatusRow(t *testing.T) {
	w, h := GridSize(80, 24)
	if w != 80 || h != 23 {
		t.Fatalf("GridSize = %dx%d, want 80x23", w, h)
	}
}

func TestFramePaintsUnderHeldPointer(t *testing.T) {
	f, s := newFrontend(t)
	f.HandleEvent(key('2'))
	f.HandleEvent(tcell.NewEventMouse(5, 4, tcell.Button1, tcell.ModNone))
	f.Frame()

	if got := f.world.Grid().Get(5, 4); got != sand.Water {
		t.Fatalf("cell under pointer = %v, want water", got)
	}
	_, _, style, _ := s.GetContent(5, 4)
	_, bg, _ := style.Decompose()
	if want := tcell.NewRGBColor(0, 121, 241); bg != want {
		t.Fatalf("background = %v, want %v", bg, want)
	}
}

func TestReleasedPointerDoesNotPaint(t *testing.T) {
	f, _ := newFrontend(t)
	f.HandleEvent(tcell.NewEventMouse(5, 4, tcell.Button1, tcell.ModNone))
	f.HandleEvent(tcell.NewEventMouse(12, 4, tcell.ButtonNone, tcell.ModNone))
	before := f.world.Grid().Count(sand.Sand)
	f.Frame()
	if got := f.world.Grid().Count(sand.Sand); got != before {
		t.Fatalf("sand count changed from %d to %d without a held button", before, got)
	}
}

func TestPointerOnStatusRowIsIgnored(t *testing.T) {
	f, _ := newFrontend(t)
	f.HandleEvent(tcell.NewEventMouse(5, 10, tcell.Button1, tcell.ModNone))
	if f.pointer.Held {
		t.Fatalf("pointer on the status row should not be held")
	}
	if f.pointer.Y != 9 {
		t.Fatalf("pointer y = %d, want clamped to 9", f.pointer.Y)
	}
}

func TestBrushKeysApplyOnFrame(t *testing.T) {
	f, _ := newFrontend(t)
	f.HandleEvent(key('6'))
	f.HandleEvent(key(']'))
	if f.brush.Selected() != sand.Sand {
		t.Fatalf("brush changed before the frame ran")
	}
	f.Frame()
	if f.brush.Selected() != sand.Oil {
		t.Fatalf("selected = %v, want oil", f.brush.Selected())
	}
	if f.brush.Size() != 7 {
		t.Fatalf("size = %d, want 7", f.brush.Size())
	}
}

func TestPauseAndSingleStep(t *testing.T) {
	f, _ := newFrontend(t)
	g := f.world.Grid()
	g.Set(4, 2, sand.Sand)

	f.HandleEvent(key(' '))
	f.Frame()
	if g.Get(4, 2) != sand.Sand {
		t.Fatalf("paused frame moved the grain")
	}

	f.HandleEvent(key('n'))
	f.Frame()
	if g.Get(4, 3) != sand.Sand {
		t.Fatalf("single step did not move the grain")
	}
	f.Frame()
	if g.Get(4, 3) != sand.Sand {
		t.Fatalf("single step advanced more than once")
	}
}

func TestClearKeyEmptiesInterior(t *testing.T) {
	f, _ := newFrontend(t)
	f.world.Grid().FillSquare(8, 5, 3, sand.Oil)
	f.HandleEvent(key('c'))
	if n := f.world.Grid().Count(sand.Oil); n != 0 {
		t.Fatalf("oil left after clear: %d", n)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		key('q'),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	} {
		f, _ := newFrontend(t)
		f.HandleEvent(ev)
		if !f.Done() {
			t.Fatalf("%v did not quit", ev.Name())
		}
	}
}

type countingCue struct{ total, calls int }

func (c *countingCue) Observe(n int) bool {
	c.total += n
	c.calls++
	return n > 0
}

func TestCueHearsIgnitions(t *testing.T) {
	f, _ := newFrontend(t)
	cue := &countingCue{}
	f.SetCue(cue)
	g := f.world.Grid()
	g.FillSquare(10, 5, 20, sand.Oil)
	for _, x := range []int{3, 8, 13} {
		g.Set(x, 4, sand.Fire)
	}
	for range 20 {
		f.Frame()
	}
	if cue.calls != 20 {
		t.Fatalf("cue observed %d frames, want 20", cue.calls)
	}
	if cue.total == 0 {
		t.Fatalf("no ignitions reported")
	}
}

func TestRunStopsOnQuitKey(t *testing.T) {
	f, s := newFrontend(t)
	if err := s.PostEvent(key('q')); err != nil {
		t.Fatalf("post event: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := f.Run(ctx); err != nil {
		t.Fatalf("Run returned %v, want nil", err)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	f, _ := newFrontend(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := f.Run(ctx); err != context.Canceled {
		t.Fatalf("Run returned %v, want context.Canceled", err)
	}
}
