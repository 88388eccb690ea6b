package app

import (
	"testing"

	"dsand/internal/sims/sand"
)

func TestStatusLines(t *testing.T) {
	brush := sand.NewBrush(sand.DefaultConfig().Brush)
	brush.HandleKey(sand.KeyDigit5)
	counts := make([]int, len(sand.Particles()))
	counts[sand.Sand] = 3
	counts[sand.Water] = 4
	counts[sand.Oil] = 5
	counts[sand.Fire] = 6

	lines := StatusLines(brush, counts, true)
	want := []string{
		"Brush fire x5",
		"State paused",
		"Sand 3  Water 4",
		"Oil 5  Fire 6",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, expected %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, expected %q", i, lines[i], want[i])
		}
	}
	if got := StatusLines(brush, nil, false)[2]; got != "Sand 0  Water 0" {
		t.Fatalf("missing counts should read as zero, got %q", got)
	}
}
