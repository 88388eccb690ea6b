package sand

type offset struct{ dx, dy int }

// Neighbour orders are fixed; only the order cells are visited within a row
// is randomised.
var (
	granularMoves = []offset{{0, 1}, {-1, 1}, {1, 1}}
	fluidMoves    = []offset{{0, 1}, {-1, 0}, {1, 0}, {-1, 1}, {1, 1}}
	orthogonal    = []offset{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
)

func emptyOnly(p Particle) bool { return p == Empty }

func emptyOrWater(p Particle) bool { return p == Empty || p == Water }

func (w *World) stepCell(x, y int) {
	if w.visited(x, y) {
		return
	}
	switch p := w.grid.Get(x, y); p {
	case Empty, Wall, IndestructibleWall:
	case Sand:
		w.move(x, y, granularMoves, emptyOrWater)
	case Water:
		w.move(x, y, fluidMoves, emptyOnly)
	case Oil:
		w.move(x, y, fluidMoves, emptyOrWater)
	case Fire:
		w.burn(x, y)
	default:
		// Tags outside the enum are inert.
	}
}

// move swaps the particle at (x, y) into the first neighbour in moves that
// passable accepts.
func (w *World) move(x, y int, moves []offset, passable func(Particle) bool) bool {
	for _, m := range moves {
		nx, ny := x+m.dx, y+m.dy
		if !passable(w.grid.Get(nx, ny)) {
			continue
		}
		w.grid.Swap(x, y, nx, ny)
		w.mark(x, y)
		w.mark(nx, ny)
		w.stats.Moves++
		return true
	}
	return false
}

// burn may put the fire out and then tries to ignite each orthogonal oil
// neighbour with an independent draw. A fire that goes out this pass still
// gets its ignition checks.
func (w *World) burn(x, y int) {
	params := w.cfg.Params
	if w.rng.Float64() < params.ExtinguishChance {
		w.grid.Set(x, y, Empty)
		w.mark(x, y)
		w.stats.Extinguished++
	}
	for _, o := range orthogonal {
		nx, ny := x+o.dx, y+o.dy
		if w.grid.Get(nx, ny) != Oil {
			continue
		}
		if w.rng.Float64() < params.IgniteChance {
			w.grid.Set(nx, ny, Fire)
			w.mark(nx, ny)
			w.stats.Ignitions++
		}
	}
}
