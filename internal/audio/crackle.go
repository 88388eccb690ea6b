package audio

import "math/rand/v2"

// Crackle is a decaying stream of sparse random clicks, the sound of oil
// catching.
type Crackle struct {
	rng     *rand.Rand
	env     float64
	decay   float64
	density float64
}

// NewCrackle returns a crackle whose envelope is multiplied by decay on every
// sample. density is the chance that a given sample carries a click.
func NewCrackle(rng *rand.Rand, decay, density float64) *Crackle {
	return &Crackle{rng: rng, env: 1, decay: decay, density: density}
}

// Stream fills samples with mono clicks copied to both channels.
func (c *Crackle) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v := 0.0
		if c.rng.Float64() < c.density {
			v = (c.rng.Float64()*2 - 1) * c.env
		}
		samples[i][0] = v
		samples[i][1] = v
		c.env *= c.decay
	}
	return len(samples), true
}

// Err always returns nil.
func (c *Crackle) Err() error { return nil }
