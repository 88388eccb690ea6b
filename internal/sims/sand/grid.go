package sand

import "dsand/internal/core"

// Grid is the fixed-size particle store. The outer ring of cells is
// IndestructibleWall for the lifetime of the grid; Set refuses to overwrite
// those cells, which is what keeps every neighbour lookup in the rules inside
// the grid without further checks.
type Grid struct {
	cells *core.ByteGrid
}

// NewGrid allocates a w*h grid, empty inside and walled at the border.
// Dimensions below 3 are raised to 3 so at least one interior cell exists.
func NewGrid(w, h int) *Grid {
	if w < 3 {
		w = 3
	}
	if h < 3 {
		h = 3
	}
	g := &Grid{cells: core.NewByteGrid(w, h)}
	g.Reset()
	return g
}

// Reset empties the grid and rebuilds the border.
func (g *Grid) Reset() {
	g.cells.Clear()
	w, h := g.cells.W, g.cells.H
	data := g.cells.Cells()
	wall := uint8(IndestructibleWall)
	for x := 0; x < w; x++ {
		data[g.cells.Index(x, 0)] = wall
		data[g.cells.Index(x, h-1)] = wall
	}
	for y := 0; y < h; y++ {
		data[g.cells.Index(0, y)] = wall
		data[g.cells.Index(w-1, y)] = wall
	}
}

// Size reports the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.cells.W, H: g.cells.H} }

// Cells exposes the row-major tag buffer for rendering.
func (g *Grid) Cells() []uint8 { return g.cells.Cells() }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool { return g.cells.InBounds(x, y) }

// Get returns the particle at (x, y). Coordinates outside the grid read as
// IndestructibleWall.
func (g *Grid) Get(x, y int) Particle {
	if !g.cells.InBounds(x, y) {
		return IndestructibleWall
	}
	return Particle(g.cells.Cells()[g.cells.Index(x, y)])
}

// Set writes p at (x, y) unless the coordinates are outside the grid or the
// cell holds IndestructibleWall.
func (g *Grid) Set(x, y int, p Particle) {
	if !g.cells.InBounds(x, y) {
		return
	}
	idx := g.cells.Index(x, y)
	data := g.cells.Cells()
	if Particle(data[idx]) == IndestructibleWall {
		return
	}
	data[idx] = uint8(p)
}

// Swap exchanges the particles at two positions. Each write goes through Set,
// so a swap involving an IndestructibleWall leaves both cells unchanged.
func (g *Grid) Swap(x1, y1, x2, y2 int) {
	a := g.Get(x1, y1)
	b := g.Get(x2, y2)
	if a == IndestructibleWall || b == IndestructibleWall {
		return
	}
	g.Set(x1, y1, b)
	g.Set(x2, y2, a)
}

// FillSquare writes p into the size*size square whose top-left corner is
// (cx - size/2, cy - size/2). Cells outside the grid and wall cells are
// skipped.
func (g *Grid) FillSquare(cx, cy, size int, p Particle) {
	if size < 1 {
		return
	}
	x0 := cx - size/2
	y0 := cy - size/2
	for y := y0; y < y0+size; y++ {
		for x := x0; x < x0+size; x++ {
			g.Set(x, y, p)
		}
	}
}

// Counts returns the number of cells holding each particle, indexed by tag.
// Unknown tags are not counted.
func (g *Grid) Counts() []int {
	counts := make([]int, particleCount)
	for _, c := range g.cells.Cells() {
		if Particle(c) < particleCount {
			counts[c]++
		}
	}
	return counts
}

// Count returns how many cells hold p.
func (g *Grid) Count(p Particle) int {
	n := 0
	for _, c := range g.cells.Cells() {
		if Particle(c) == p {
			n++
		}
	}
	return n
}
