//go:build ebiten

package ui

import (
	"image/color"

	"dsand/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var eraserColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}

// Overlay outlines the square the brush would paint under the cursor.
type Overlay struct {
	visible bool
}

// NewOverlay returns an overlay that starts visible.
func NewOverlay() *Overlay {
	return &Overlay{visible: true}
}

// Toggle shows or hides the outline.
func (o *Overlay) Toggle() { o.visible = !o.visible }

// Draw strokes the brush footprint around the pointer in the selected
// particle's color. Nothing is drawn while the cursor is off the grid.
func (o *Overlay) Draw(screen *ebiten.Image, p sand.Pointer, inside bool, brush *sand.Brush, scale int) {
	if !o.visible || !inside {
		return
	}
	r := brushRect(p.X, p.Y, brush.Size(), scale)
	clr := color.Color(sand.ColorFor(brush.Selected()))
	if brush.Selected() == sand.Empty {
		clr = eraserColor
	}
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, clr, false)
}
