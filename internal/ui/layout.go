package ui

import (
	"image"
	"math"
	"strconv"

	"dsand/internal/core"
)

const (
	panelPadding   = 12
	lineHeight     = 36
	statusHeight   = 16
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
)

// controlRow is where one control and its -/+ buttons sit on the panel.
type controlRow struct {
	top   int
	minus image.Rectangle
	plus  image.Rectangle
}

// controlsTop returns the y offset of the first control once the title and
// statusLines lines of status text are drawn.
func controlsTop(statusLines int) int {
	return panelPadding + headerBaseline + 14 + statusLines*statusHeight
}

func layoutRows(n, width, top int) []controlRow {
	if n <= 0 || width <= 0 {
		return nil
	}
	rows := make([]controlRow, n)
	for i := range rows {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		rows[i] = controlRow{top: rowTop, minus: minus, plus: plus}
	}
	return rows
}

func stepFor(ctrl core.ParameterControl) float64 {
	if ctrl.Type == core.ParamTypeInt {
		if s := math.Round(ctrl.Step); s > 0 {
			return s
		}
		return 1
	}
	if ctrl.Step > 0 {
		return ctrl.Step
	}
	return 0.05
}

// nudge moves current one step in direction, clamped to the control's bounds.
// ok is false when the value would not change.
func nudge(ctrl core.ParameterControl, current float64, direction int) (target float64, ok bool) {
	if direction == 0 {
		return current, false
	}
	target = current + float64(direction)*stepFor(ctrl)
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	if ctrl.Type == core.ParamTypeInt {
		target = math.Round(target)
	}
	return target, math.Abs(target-current) > 1e-9
}

func parseValue(ctrl core.ParameterControl, raw string) (float64, bool) {
	switch ctrl.Type {
	case core.ParamTypeInt:
		v, err := strconv.Atoi(raw)
		return float64(v), err == nil
	case core.ParamTypeFloat:
		v, err := strconv.ParseFloat(raw, 64)
		return v, err == nil
	}
	return 0, false
}

func formatValue(ctrl core.ParameterControl, v float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(v)))
	}
	step := stepFor(ctrl)
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

func pointInRect(x, y int, r image.Rectangle) bool {
	return image.Pt(x, y).In(r)
}

// brushRect returns the screen rectangle covered by a square brush of size
// cells whose top-left grid cell is cx-size/2, cy-size/2.
func brushRect(cx, cy, size, scale int) image.Rectangle {
	if scale <= 0 {
		scale = 1
	}
	x0 := (cx - size/2) * scale
	y0 := (cy - size/2) * scale
	return image.Rect(x0, y0, x0+size*scale, y0+size*scale)
}
