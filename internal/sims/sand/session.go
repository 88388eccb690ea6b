package sand

import "dsand/internal/core"

const paramBrushSize = "brush_size"

// Session pairs a world with the brush painting into it so the HUD can show
// and adjust both. Everything else is the embedded World.
type Session struct {
	*World
	brush *Brush
}

// NewSession binds brush to world.
func NewSession(world *World, brush *Brush) *Session {
	return &Session{World: world, brush: brush}
}

// Brush returns the session brush.
func (s *Session) Brush() *Brush { return s.brush }

// Parameters extends the world's tunables with the brush size.
func (s *Session) Parameters() core.ParameterSnapshot {
	snap := s.World.Parameters()
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name:   "Brush",
		Params: []core.Parameter{intParam(paramBrushSize, "Brush size", s.brush.Size())},
	})
	return snap
}

// ParameterControls puts the brush size control first, then the world's.
func (s *Session) ParameterControls() []core.ParameterControl {
	brush := core.ParameterControl{
		Key:    paramBrushSize,
		Label:  "Brush size",
		Type:   core.ParamTypeInt,
		Step:   float64(s.brush.step),
		Min:    1,
		Max:    float64(s.brush.Max()),
		HasMin: true,
		HasMax: true,
	}
	return append([]core.ParameterControl{brush}, s.World.ParameterControls()...)
}

// SetIntParameter resizes the brush.
func (s *Session) SetIntParameter(key string, value int) bool {
	if key != paramBrushSize {
		return false
	}
	s.brush.SetSize(value)
	return true
}
