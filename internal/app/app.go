//go:build ebiten

package app

import (
	"time"

	"dsand/internal/audio"
	"dsand/internal/render"
	"dsand/internal/sims/sand"
	"dsand/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("dsand.app")

// Game adapts a sand world to the ebiten.Game interface.
type Game struct {
	world   *sand.World
	brush   *sand.Brush
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	cue     audio.IgnitionObserver

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64

	keys    []ebiten.Key
	pointer sand.Pointer
	inside  bool
}

// New constructs a Game for world using the scale, seed and HUD width in cfg.
func New(world *sand.World, brush *sand.Brush, cfg *Config) *Game {
	size := world.Size()
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	hudWidth := cfg.HUD
	if hudWidth < 0 {
		hudWidth = 0
	}
	g := &Game{
		world:    world,
		brush:    brush,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(sand.NewSession(world, brush), hudWidth),
		overlay:  ui.NewOverlay(),
		scale:    scale,
		hudWidth: hudWidth,
		seed:     world.Config().Seed,
	}
	g.hud.SetStatus(func() []string {
		return StatusLines(g.brush, g.world.Grid().Counts(), g.paused)
	})
	return g
}

// SetCue attaches an observer notified after every simulated frame.
func (g *Game) SetCue(cue audio.IgnitionObserver) { g.cue = cue }

// Reset reinitializes the world with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.tickOnce = false
	logger.Infof("reset with seed %d", seed)
}

// Update handles session keys, advances the world and then applies brush
// input for the frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.world.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.overlay.Toggle()
	}

	if !g.paused || g.tickOnce {
		g.world.Step()
		g.tickOnce = false
		if g.cue != nil {
			g.cue.Observe(g.world.LastStep().Ignitions)
		}
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if bk := brushKey(k); bk != sand.KeyNone {
			g.brush.HandleKey(bk)
		}
	}

	cx, cy := ebiten.CursorPosition()
	x, y, inside := GridPointer(cx, cy, g.scale, g.world.Size())
	g.inside = inside
	g.pointer = sand.Pointer{X: x, Y: y, Held: inside && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)}
	g.brush.Apply(g.world.Grid(), g.pointer)

	g.hud.Update(g.gridWidth())
	return nil
}

// Draw renders the world, the brush outline and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.Cells(), g.world.Palette(), g.scale)
	g.overlay.Draw(screen, g.pointer, g.inside, g.brush, g.scale)
	g.hud.Draw(screen, g.gridWidth(), g.scale)
}

// Layout returns the logical screen size: the scaled grid plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.gridWidth() + g.hudWidth, g.world.Size().H * g.scale
}

func (g *Game) gridWidth() int {
	return g.world.Size().W * g.scale
}
