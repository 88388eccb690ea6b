package sand

import (
	"image/color"

	"dsand/internal/core"

	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("dsand.sand")

// Rand is the randomness the update pass consumes: one Bool per row for the
// scan direction and one Float64 per probability check.
type Rand interface {
	Bool() bool
	Float64() float64
}

type seeder interface {
	Seed(seed int64)
}

// StepStats counts what happened during the most recent update pass.
type StepStats struct {
	Moves        int
	Ignitions    int
	Extinguished int
}

// World owns a particle grid and advances it one pass per Step.
type World struct {
	cfg  Config
	grid *Grid
	rng  Rand

	// stamp holds the pass number that last wrote each cell. A cell stamped
	// with the current pass has already moved or ignited and is not visited
	// again until the next pass.
	stamp []uint32
	pass  uint32

	stats StepStats
}

// New returns a world with default parameters and the provided dimensions.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWorld(cfg, nil)
}

// NewWorld builds a world from cfg. When rng is nil a seeded core.RNG is used,
// which Reset re-seeds; injected sources are used as given.
func NewWorld(cfg Config, rng Rand) *World {
	if rng == nil {
		rng = core.NewRNG(cfg.Seed)
	}
	grid := NewGrid(cfg.Width, cfg.Height)
	size := grid.Size()
	cfg.Width, cfg.Height = size.W, size.H
	return &World{
		cfg:   cfg,
		grid:  grid,
		rng:   rng,
		stamp: make([]uint32, size.W*size.H),
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return w.grid.Size() }

// Cells exposes the particle tags in row-major order.
func (w *World) Cells() []uint8 { return w.grid.Cells() }

// Grid exposes the particle store for brushes and tests.
func (w *World) Grid() *Grid { return w.grid }

// Config returns a copy of the active configuration.
func (w *World) Config() Config { return w.cfg }

// Palette maps every particle tag to its display color.
func (w *World) Palette() []color.RGBA { return palette }

// LastStep reports the counters gathered by the most recent Step.
func (w *World) LastStep() StepStats { return w.stats }

// Reset clears the grid and seeds the configured scene. A zero seed falls
// back to the configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	if s, ok := w.rng.(seeder); ok {
		s.Seed(effective)
	}
	w.grid.Reset()
	w.clearStamps()
	w.stats = StepStats{}
	seedScene(w.cfg.Scene, w.grid, effective)
	logger.Debugf("reset %dx%d world, scene %q, seed %d", w.cfg.Width, w.cfg.Height, w.cfg.Scene, effective)
}

// Clear empties the grid without applying a scene.
func (w *World) Clear() {
	w.grid.Reset()
	w.clearStamps()
	w.stats = StepStats{}
}

// Step runs one update pass. Rows are visited from the bottom up so a grain
// that falls is not seen again in its new row; each row picks its own
// horizontal direction.
func (w *World) Step() {
	w.stats = StepStats{}
	w.nextPass()
	size := w.grid.Size()
	for y := size.H - 1; y >= 1; y-- {
		if w.rng.Bool() {
			for x := 0; x < size.W; x++ {
				w.stepCell(x, y)
			}
		} else {
			for x := size.W - 1; x >= 0; x-- {
				w.stepCell(x, y)
			}
		}
	}
}

func (w *World) nextPass() {
	w.pass++
	if w.pass == 0 {
		w.clearStamps()
		w.pass = 1
	}
}

func (w *World) clearStamps() {
	for i := range w.stamp {
		w.stamp[i] = 0
	}
	w.pass = 0
}

func (w *World) mark(x, y int) {
	w.stamp[y*w.grid.Size().W+x] = w.pass
}

func (w *World) visited(x, y int) bool {
	return w.stamp[y*w.grid.Size().W+x] == w.pass
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		return NewWorld(FromMap(cfg), nil)
	})
}
