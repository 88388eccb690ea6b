//go:build ebiten

package app

import (
	"dsand/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

var brushKeys = map[ebiten.Key]sand.Key{
	ebiten.KeyDigit1:       sand.KeyDigit1,
	ebiten.KeyDigit2:       sand.KeyDigit2,
	ebiten.KeyDigit3:       sand.KeyDigit3,
	ebiten.KeyDigit4:       sand.KeyDigit4,
	ebiten.KeyDigit5:       sand.KeyDigit5,
	ebiten.KeyDigit6:       sand.KeyDigit6,
	ebiten.KeyEqual:        sand.KeyGrow,
	ebiten.KeyBracketRight: sand.KeyGrow,
	ebiten.KeyMinus:        sand.KeyShrink,
	ebiten.KeyBracketLeft:  sand.KeyShrink,
}

func brushKey(k ebiten.Key) sand.Key {
	if bk, ok := brushKeys[k]; ok {
		return bk
	}
	return sand.KeyNone
}
