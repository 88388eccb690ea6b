//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"dsand/internal/app"
	"dsand/internal/audio"
	"dsand/internal/core"
	"dsand/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/juju/loggo"
	"gopkg.in/errgo.v1"
)

var logger = loggo.GetLogger("dsand")

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		logger.Errorf("%v", err)
		fmt.Fprintln(os.Stderr, "dsand:", err)
		os.Exit(1)
	}
}

func run(cfg *app.Config) error {
	logs, err := app.SetupLogging(cfg.Log, cfg.LogFile, false)
	if err != nil {
		return errgo.Mask(err)
	}
	defer logs.Close()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		return errgo.Newf("unknown sim %q (have %v)", cfg.Sim, core.SimNames())
	}
	if err := sand.ValidateScene(cfg.Scene); err != nil {
		return errgo.Mask(err)
	}
	overrides, err := cfg.Overrides()
	if err != nil {
		return errgo.Mask(err)
	}
	world, ok := factory(overrides).(*sand.World)
	if !ok {
		return errgo.Newf("sim %q has no interactive front end", cfg.Sim)
	}
	world.Reset(cfg.Seed)
	brush := sand.NewBrush(world.Config().Brush)

	game := app.New(world, brush, cfg)
	if cfg.Sound {
		cue := audio.NewCue(audio.DefaultCooldown, world.Config().Seed)
		if err := cue.Init(); err != nil {
			logger.Warningf("sound disabled: %v", err)
		} else {
			defer cue.Close()
			game.SetCue(cue)
		}
	}

	size := world.Size()
	ebiten.SetWindowTitle("dSand 2")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+max(cfg.HUD, 0), size.H*cfg.Scale)
	logger.Infof("starting %dx%d %s world, scene %q", size.W, size.H, world.Name(), world.Config().Scene)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return errgo.Notef(err, "game loop failed")
	}
	return nil
}
