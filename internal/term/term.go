// Package term runs a sand world inside a terminal. Every grid cell maps to
// one character cell painted with the particle color as background; the row
// below the grid is a status line.
package term

import (
	"context"
	"fmt"
	"time"

	"dsand/internal/audio"
	"dsand/internal/sims/sand"

	"github.com/gdamore/tcell/v2"
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("dsand.term")

// Frontend connects a tcell screen to a world and a brush.
type Frontend struct {
	screen tcell.Screen
	world  *sand.World
	brush  *sand.Brush
	cue    audio.IgnitionObserver
	tps    int
	seed   int64

	styles  []tcell.Style
	status  tcell.Style
	pointer sand.Pointer
	pending []sand.Key

	paused   bool
	tickOnce bool
	quit     bool
}

// GridSize returns the grid dimensions that fill a w*h screen while leaving
// the bottom row for the status line.
func GridSize(w, h int) (int, int) {
	return w, h - 1
}

// New builds a front end. The screen must already be initialised.
func New(screen tcell.Screen, world *sand.World, brush *sand.Brush, tps int) *Frontend {
	if tps <= 0 {
		tps = 60
	}
	f := &Frontend{
		screen: screen,
		world:  world,
		brush:  brush,
		tps:    tps,
		seed:   world.Config().Seed,
		status: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	}
	for _, p := range sand.Particles() {
		c := sand.ColorFor(p)
		bg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
		f.styles = append(f.styles, tcell.StyleDefault.Background(bg))
	}
	return f
}

// SetCue attaches an observer that hears about ignitions.
func (f *Frontend) SetCue(cue audio.IgnitionObserver) { f.cue = cue }

// Done reports whether a quit key has been pressed.
func (f *Frontend) Done() bool { return f.quit }

// Run polls screen events on a separate goroutine and advances one frame per
// tick until the context is cancelled, a quit key is pressed or the screen
// stops delivering events.
func (f *Frontend) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(events)
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(f.tps))
	defer ticker.Stop()
	logger.Infof("terminal loop started at %d ticks per second", f.tps)

	for !f.quit {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			f.HandleEvent(ev)
		case <-ticker.C:
			f.Frame()
		}
	}
	return nil
}

// HandleEvent records input. Session keys act immediately; brush keys and the
// pointer are applied by the next Frame.
func (f *Frontend) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		f.handleKey(ev)
	case *tcell.EventMouse:
		x, y := ev.Position()
		size := f.world.Size()
		f.pointer = sand.Pointer{
			X:    clamp(x, 0, size.W-1),
			Y:    clamp(y, 0, size.H-1),
			Held: ev.Buttons()&tcell.Button1 != 0 && y >= 0 && y < size.H,
		}
	case *tcell.EventResize:
		f.screen.Sync()
	}
}

func (f *Frontend) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		f.quit = true
		return
	case tcell.KeyRune:
	default:
		return
	}
	switch r := ev.Rune(); r {
	case 'q':
		f.quit = true
	case ' ':
		f.paused = !f.paused
	case 'n':
		f.tickOnce = true
	case 'r':
		f.world.Reset(f.seed)
	case 's':
		f.seed = time.Now().UnixNano()
		f.world.Reset(f.seed)
	case 'c':
		f.world.Clear()
	default:
		if k := brushKey(r); k != sand.KeyNone {
			f.pending = append(f.pending, k)
		}
	}
}

// Frame runs one step, applies queued brush input and redraws.
func (f *Frontend) Frame() {
	if !f.paused || f.tickOnce {
		f.world.Step()
		f.tickOnce = false
		if f.cue != nil {
			f.cue.Observe(f.world.LastStep().Ignitions)
		}
	}
	for _, k := range f.pending {
		f.brush.HandleKey(k)
	}
	f.pending = f.pending[:0]
	f.brush.Apply(f.world.Grid(), f.pointer)
	f.draw()
}

func (f *Frontend) draw() {
	size := f.world.Size()
	cells := f.world.Cells()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			f.screen.SetContent(x, y, ' ', nil, f.styleFor(cells[y*size.W+x]))
		}
	}
	w, _ := f.screen.Size()
	line := []rune(f.statusLine())
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(line) {
			r = line[x]
		}
		f.screen.SetContent(x, size.H, r, nil, f.status)
	}
	f.screen.Show()
}

func (f *Frontend) styleFor(tag uint8) tcell.Style {
	if int(tag) < len(f.styles) {
		return f.styles[tag]
	}
	return f.styles[sand.Empty]
}

func (f *Frontend) statusLine() string {
	state := ""
	if f.paused {
		state = " [paused]"
	}
	return fmt.Sprintf(" %s x%d%s | fire %d | 1-6 type  [ ] size  space pause  q quit",
		f.brush.Selected(), f.brush.Size(), state, f.world.Grid().Count(sand.Fire))
}

func brushKey(r rune) sand.Key {
	switch r {
	case '1':
		return sand.KeyDigit1
	case '2':
		return sand.KeyDigit2
	case '3':
		return sand.KeyDigit3
	case '4':
		return sand.KeyDigit4
	case '5':
		return sand.KeyDigit5
	case '6':
		return sand.KeyDigit6
	case '+', '=', ']':
		return sand.KeyGrow
	case '-', '[':
		return sand.KeyShrink
	}
	return sand.KeyNone
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
