package sand

import "image/color"

var palette = buildPalette()

func buildPalette() []color.RGBA {
	colors := make([]color.RGBA, particleCount)
	for _, p := range Particles() {
		colors[p] = ColorFor(p)
	}
	return colors
}

// ColorFor returns the display color of a particle.
func ColorFor(p Particle) color.RGBA {
	switch p {
	case Sand:
		return color.RGBA{R: 253, G: 249, B: 0, A: 255}
	case Wall, IndestructibleWall:
		return color.RGBA{R: 130, G: 130, B: 130, A: 255}
	case Water:
		return color.RGBA{R: 0, G: 121, B: 241, A: 255}
	case Fire:
		return color.RGBA{R: 230, G: 41, B: 55, A: 255}
	case Oil:
		return color.RGBA{R: 200, G: 122, B: 255, A: 255}
	default:
		return color.RGBA{A: 255}
	}
}
