package sand

// Particle is the tag stored in every grid cell. Cells of the same kind
// behave identically; there is no per-particle state.
type Particle uint8

const (
	Empty Particle = iota
	Sand
	Wall
	Water
	IndestructibleWall
	Oil
	Fire

	particleCount
)

var particleNames = [particleCount]string{
	Empty:              "empty",
	Sand:               "sand",
	Wall:               "wall",
	Water:              "water",
	IndestructibleWall: "bedrock",
	Oil:                "oil",
	Fire:               "fire",
}

// Particles lists every particle kind in declaration order.
func Particles() []Particle {
	all := make([]Particle, 0, particleCount)
	for p := Empty; p < particleCount; p++ {
		all = append(all, p)
	}
	return all
}

// String returns the lowercase display name.
func (p Particle) String() string {
	if p >= particleCount {
		return "unknown"
	}
	return particleNames[p]
}

// ParseParticle maps a display name back to its Particle.
func ParseParticle(name string) (Particle, bool) {
	for p := Empty; p < particleCount; p++ {
		if particleNames[p] == name {
			return p, true
		}
	}
	return Empty, false
}

// Valid reports whether p is a known particle kind.
func (p Particle) Valid() bool { return p < particleCount }
