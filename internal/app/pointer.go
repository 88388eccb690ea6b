package app

import "dsand/internal/core"

// GridPointer converts a cursor position in screen pixels into grid
// coordinates clamped to the grid. inside reports whether the cursor was over
// the grid before clamping.
func GridPointer(sx, sy, scale int, size core.Size) (x, y int, inside bool) {
	if scale <= 0 {
		scale = 1
	}
	inside = sx >= 0 && sy >= 0 && sx < size.W*scale && sy < size.H*scale
	x = clamp(floorDiv(sx, scale), 0, size.W-1)
	y = clamp(floorDiv(sy, scale), 0, size.H-1)
	return x, y, inside
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
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
