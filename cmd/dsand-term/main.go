package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"dsand/internal/app"
	"dsand/internal/audio"
	"dsand/internal/sims/sand"
	"dsand/internal/term"

	"github.com/gdamore/tcell/v2"
	"github.com/juju/loggo"
	"gopkg.in/errgo.v1"
)

var logger = loggo.GetLogger("dsand")

func main() {
	cfg := app.NewConfig()
	cfg.TPS = 30
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		logger.Errorf("%v", err)
		fmt.Fprintln(os.Stderr, "dsand-term:", err)
		os.Exit(1)
	}
}

func run(cfg *app.Config) error {
	logs, err := app.SetupLogging(cfg.Log, cfg.LogFile, true)
	if err != nil {
		return errgo.Mask(err)
	}
	defer logs.Close()

	if cfg.Sim != "sand" {
		return errgo.Newf("the terminal front end only runs the sand sim, not %q", cfg.Sim)
	}
	if err := sand.ValidateScene(cfg.Scene); err != nil {
		return errgo.Mask(err)
	}
	overrides, err := cfg.Overrides()
	if err != nil {
		return errgo.Mask(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errgo.Notef(err, "cannot create screen")
	}
	if err := screen.Init(); err != nil {
		return errgo.Notef(err, "cannot initialise screen")
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	w, h := term.GridSize(screen.Size())
	if _, ok := overrides["w"]; !ok {
		overrides["w"] = strconv.Itoa(w)
	}
	if _, ok := overrides["h"]; !ok {
		overrides["h"] = strconv.Itoa(h)
	}
	world := sand.NewWorld(sand.FromMap(overrides), nil)
	world.Reset(world.Config().Seed)
	brush := sand.NewBrush(world.Config().Brush)
	fe := term.New(screen, world, brush, cfg.TPS)

	if cfg.Sound {
		cue := audio.NewCue(audio.DefaultCooldown, world.Config().Seed)
		if err := cue.Init(); err != nil {
			logger.Warningf("sound disabled: %v", err)
		} else {
			defer cue.Close()
			fe.SetCue(cue)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	size := world.Size()
	logger.Infof("starting %dx%d terminal world, scene %q", size.W, size.H, world.Config().Scene)
	if err := fe.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return errgo.Mask(err)
	}
	return nil
}
