package app

import (
	"fmt"

	"dsand/internal/sims/sand"
)

// StatusLines summarises the session for the HUD: brush state, run state and
// live particle counts.
func StatusLines(brush *sand.Brush, counts []int, paused bool) []string {
	state := "running"
	if paused {
		state = "paused"
	}
	count := func(p sand.Particle) int {
		if int(p) < len(counts) {
			return counts[p]
		}
		return 0
	}
	return []string{
		fmt.Sprintf("Brush %s x%d", brush.Selected(), brush.Size()),
		fmt.Sprintf("State %s", state),
		fmt.Sprintf("Sand %d  Water %d", count(sand.Sand), count(sand.Water)),
		fmt.Sprintf("Oil %d  Fire %d", count(sand.Oil), count(sand.Fire)),
	}
}
