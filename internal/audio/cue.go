package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/juju/loggo"
	"gopkg.in/errgo.v1"
)

var logger = loggo.GetLogger("dsand.audio")

// DefaultCooldown is the minimum number of frames between two crackles.
const DefaultCooldown = 6

const (
	sampleRate    = beep.SampleRate(44100)
	crackleLength = 60 * time.Millisecond
)

// IgnitionObserver hears how many oil cells ignited in each simulated frame.
type IgnitionObserver interface {
	Observe(ignitions int) bool
}

// Cue turns per-frame ignition counts into short crackles, at most one every
// cooldown frames. Until Init succeeds the cue only tracks its cooldown.
type Cue struct {
	cooldown int
	wait     int
	rng      *rand.Rand
	mixer    *beep.Mixer
	play     func(beep.Streamer)
}

// NewCue returns a silent cue that fires at most once every cooldown frames.
func NewCue(cooldown int, seed int64) *Cue {
	if cooldown < 1 {
		cooldown = 1
	}
	return &Cue{
		cooldown: cooldown,
		rng:      rand.New(rand.NewPCG(uint64(seed), 0)),
		mixer:    &beep.Mixer{},
	}
}

// Init opens the speaker and starts the mixer.
func (c *Cue) Init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return errgo.Notef(err, "cannot open speaker")
	}
	speaker.Play(c.mixer)
	c.play = func(s beep.Streamer) {
		speaker.Lock()
		c.mixer.Add(s)
		speaker.Unlock()
	}
	logger.Infof("audio cue ready at %d Hz", sampleRate)
	return nil
}

// Observe is called once per simulated frame with that frame's ignition
// count and reports whether a crackle was started.
func (c *Cue) Observe(ignitions int) bool {
	if c.wait > 0 {
		c.wait--
	}
	if ignitions <= 0 || c.wait > 0 {
		return false
	}
	c.wait = c.cooldown
	if c.play != nil {
		c.play(c.crackle(ignitions))
	}
	return true
}

// Close silences anything still playing.
func (c *Cue) Close() {
	if c.play == nil {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.play = nil
}

func (c *Cue) crackle(ignitions int) beep.Streamer {
	noise := NewCrackle(c.rng, 0.9995, 0.08)
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(crackleLength), noise),
		Base:     2,
		Volume:   Loudness(ignitions),
	}
}

// Loudness maps an ignition count to a beep volume exponent: a lone catch is
// quiet and large fronts approach full scale.
func Loudness(ignitions int) float64 {
	if ignitions < 1 {
		return -3
	}
	v := -3 + 0.5*math.Log2(float64(ignitions))
	if v > 0 {
		return 0
	}
	return v
}
