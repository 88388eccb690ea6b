package app

import (
	"flag"
	"strconv"
	"strings"

	"gopkg.in/errgo.v1"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one raw key=value entry.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Config represents the command-line parameters shared by the front ends.
type Config struct {
	Sim     string
	Scale   int
	TPS     int
	Seed    int64
	Scene   string
	HUD     int
	Sound   bool
	Log     string
	LogFile string
	Set     KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:   "sand",
		Scale: 2,
		TPS:   165,
		Seed:  42,
		Scene: "empty",
		HUD:   220,
		Log:   "<root>=INFO",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.Scene, "scene", c.Scene, "initial scene (empty, pools, terrain)")
	fs.IntVar(&c.HUD, "hud", c.HUD, "width of the control panel in pixels (0 hides it)")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play a crackle when oil ignites")
	fs.StringVar(&c.Log, "log", c.Log, "logging configuration, e.g. <root>=DEBUG")
	fs.StringVar(&c.LogFile, "logfile", c.LogFile, "write logs to this file instead of stderr")
	fs.Var(&c.Set, "set", "simulation override in key=value form (repeatable)")
}

// Overrides merges the seed, scene and every -set entry into the key/value
// map handed to the simulation factory. Later -set entries win.
func (c *Config) Overrides() (map[string]string, error) {
	out := map[string]string{
		"seed":  strconv.FormatInt(c.Seed, 10),
		"scene": c.Scene,
	}
	for _, kv := range c.Set {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errgo.Newf("invalid override %q: want key=value", kv)
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}
