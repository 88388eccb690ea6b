//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strings"

	"dsand/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	statusColor = color.RGBA{R: 180, G: 200, B: 180, A: 255}
)

// HUD renders the control panel to the right of the simulation view: a
// title, a few status lines and one -/+ row per adjustable parameter.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	offsetX    int
	title      string

	params      core.ParameterProvider
	controls    []controlState
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter

	status func() []string
	lines  []string

	pixel *ebiten.Image
}

type controlState struct {
	control core.ParameterControl
	row     controlRow
	value   float64
	has     bool
}

// NewHUD constructs a HUD for sim. A width of zero disables it.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, title: buildTitle(sim)}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.params, _ = sim.(core.ParameterProvider)
	h.intSetter, _ = sim.(core.IntParameterSetter)
	h.floatSetter, _ = sim.(core.FloatParameterSetter)
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls = append(h.controls, controlState{control: ctrl})
		}
	}
	h.layout()
	return h
}

// SetStatus installs a callback producing the status lines shown under the
// title. It is polled once per Update.
func (h *HUD) SetStatus(fn func() []string) {
	if h == nil {
		return
	}
	h.status = fn
}

// Update refreshes status and parameter values and handles clicks on the
// -/+ buttons. offsetX is the panel's left edge in screen pixels.
func (h *HUD) Update(offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	h.offsetX = offsetX
	if h.status != nil {
		lines := h.status()
		relayout := len(lines) != len(h.lines)
		h.lines = lines
		if relayout {
			h.layout()
		}
	}
	h.refresh()
	h.handleInput()
}

// Draw paints the panel at offsetX on screen.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)
	h.drawText()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:] + " Controls"
}

func (h *HUD) layout() {
	rows := layoutRows(len(h.controls), h.width, controlsTop(len(h.lines)))
	for i := range rows {
		h.controls[i].row = rows[i]
	}
}

func (h *HUD) refresh() {
	if h.params == nil {
		return
	}
	snapshot := h.params.Parameters()
	for i := range h.controls {
		state := &h.controls[i]
		state.has = false
		if param, ok := snapshot.Lookup(state.control.Key); ok {
			state.value, state.has = parseValue(state.control, param.Value)
		}
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	px := mx - h.offsetX
	if px < 0 {
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		switch {
		case pointInRect(px, my, state.row.minus):
			h.adjust(state, -1)
			return
		case pointInRect(px, my, state.row.plus):
			h.adjust(state, 1)
			return
		}
	}
}

func (h *HUD) adjust(state *controlState, direction int) {
	if !h.canAdjust(state, direction) {
		return
	}
	target, _ := nudge(state.control, state.value, direction)
	applied := false
	switch state.control.Type {
	case core.ParamTypeInt:
		applied = h.intSetter.SetIntParameter(state.control.Key, int(target))
	case core.ParamTypeFloat:
		applied = h.floatSetter.SetFloatParameter(state.control.Key, target)
	}
	if applied {
		state.value = target
	}
}

func (h *HUD) canAdjust(state *controlState, direction int) bool {
	if !state.has {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return false
		}
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return false
		}
	default:
		return false
	}
	_, ok := nudge(state.control, state.value, direction)
	return ok
}

func (h *HUD) drawText() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	for i, line := range h.lines {
		text.Draw(h.panel, line, face, panelPadding, y+(i+1)*statusHeight, statusColor)
	}
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, controlsTop(len(h.lines))+labelBaseline, dimColor)
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		baseline := state.row.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, baseline, labelColor)

		value, valueColor := "--", dimColor
		if state.has {
			value, valueColor = formatValue(state.control, state.value), labelColor
		}
		width := text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, state.row.minus.Min.X-buttonGap-width, baseline, valueColor)

		h.drawButton(state.row.minus, "-", h.canAdjust(state, -1))
		h.drawButton(state.row.plus, "+", h.canAdjust(state, 1))
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
