package sand

// Key is a front-end independent key identifier understood by Brush.
type Key int

const (
	KeyNone Key = iota
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
	KeyGrow
	KeyShrink
)

var keyParticles = map[Key]Particle{
	KeyDigit1: Sand,
	KeyDigit2: Water,
	KeyDigit3: Wall,
	KeyDigit4: Empty,
	KeyDigit5: Fire,
	KeyDigit6: Oil,
}

// Pointer is the cursor in grid coordinates, already scaled and clamped by
// the front end, plus whether the primary button is held.
type Pointer struct {
	X, Y int
	Held bool
}

// Brush holds the session painting state: the selected particle and the
// square brush size.
type Brush struct {
	selected Particle
	size     int
	max      int
	step     int
}

// NewBrush returns a Sand brush sized from cfg.
func NewBrush(cfg BrushConfig) *Brush {
	b := &Brush{selected: Sand, max: cfg.Max, step: cfg.Step}
	if b.max < 1 || b.max > MaxBrush {
		b.max = MaxBrush
	}
	if b.step < 1 {
		b.step = 2
	}
	b.size = b.clamp(cfg.Size)
	return b
}

// Selected returns the particle the brush paints.
func (b *Brush) Selected() Particle { return b.selected }

// Size returns the brush edge length.
func (b *Brush) Size() int { return b.size }

// Max returns the largest permitted brush size.
func (b *Brush) Max() int { return b.max }

// SelectType switches the painted particle for digit keys 1-6 and reports
// whether k was one of them.
func (b *Brush) SelectType(k Key) bool {
	p, ok := keyParticles[k]
	if !ok {
		return false
	}
	b.selected = p
	return true
}

// SetSize sets the brush size, clamped to [1, max], and returns the result.
func (b *Brush) SetSize(size int) int {
	b.size = b.clamp(size)
	return b.size
}

// ResizeBrush grows or shrinks the brush by one step, clamped to [1, max].
func (b *Brush) ResizeBrush(k Key) bool {
	switch k {
	case KeyGrow:
		b.size = b.clamp(b.size + b.step)
	case KeyShrink:
		b.size = b.clamp(b.size - b.step)
	default:
		return false
	}
	return true
}

// HandleKey applies k as either a selection or a resize.
func (b *Brush) HandleKey(k Key) bool {
	return b.SelectType(k) || b.ResizeBrush(k)
}

// Apply paints a filled square at the pointer while the button is held.
func (b *Brush) Apply(g *Grid, p Pointer) {
	if !p.Held {
		return
	}
	g.FillSquare(p.X, p.Y, b.size, b.selected)
}

func (b *Brush) clamp(size int) int {
	if size < 1 {
		return 1
	}
	if size > b.max {
		return b.max
	}
	return size
}
