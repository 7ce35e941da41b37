package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *debugFlag {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(); err != nil {
		slog.Error("random walkers failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(*configFlag, isFlagSet("config"))
	if err != nil {
		return err
	}
	applyFlags(&cfg)
	seed := cfg.seed()

	if *cpuProfileFlag != "" {
		profile, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			return err
		}
		defer profile.Stop()
		slog.InfoContext(ctx, "recording CPU profile", "path", *cpuProfileFlag)
	}

	g, err := newGame(cfg, seed)
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "simulation ready",
		"width", cfg.Window.Width, "height", cfg.Window.Height,
		"walkers", cfg.Simulation.Walkers, "seed", seed)

	if *headlessFlag {
		if *ticksFlag < 0 {
			return errNegativeTicks
		}
		return runHeadless(ctx, g.world, *ticksFlag)
	}

	g.debug = *debugFlag
	if *enableAudioFlag {
		g.enableAudio()
	}
	ebiten.SetTPS(tickRate)
	ebiten.SetWindowSize(cfg.Window.Width*cfg.Window.Scale, cfg.Window.Height*cfg.Window.Scale)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("running window: %w", errors.Join(errSetupFailed, err))
	}
	return nil
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
