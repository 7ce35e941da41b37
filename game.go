package main

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// audioPlayerBufferLatency keeps shot clicks close to the frame that fired them.
const audioPlayerBufferLatency = 40 * time.Millisecond

// Game adapts the world to ebiten's update and draw callbacks.
type Game struct {
	world   *world
	stepper *fixedStepper
	now     func() time.Time

	lastUpdate      time.Time
	lastSimDuration time.Duration
	lastShots       uint64
	debug           bool

	audioCtx    *audio.Context
	audioStream *shotAudioStream
	audioPlayer *audio.Player
}

// newGame builds the world described by cfg.
func newGame(cfg simConfig, seed int64) (*Game, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	wd, err := newWorld(float64(cfg.Window.Width), float64(cfg.Window.Height), cfg.Simulation.Walkers, seed)
	if err != nil {
		return nil, err
	}
	for _, wk := range wd.walkers {
		slog.Debug("walker created", "walker", wk.ID().String(), "x", wk.Position().X, "y", wk.Position().Y)
	}
	return &Game{
		world:   wd,
		stepper: newFixedStepper(tickDuration, maxCatchUpSteps),
		now:     time.Now,
	}, nil
}

// enableAudio attaches the shot click player. Failure leaves the game silent.
func (g *Game) enableAudio() {
	g.audioCtx = audio.NewContext(shotSampleRate)
	g.audioStream = newShotAudioStream()
	player, err := g.audioCtx.NewPlayer(g.audioStream)
	if err != nil {
		slog.Warn("audio player creation failed", "err", err)
		g.audioStream = nil
		return
	}
	g.audioPlayer = player
	g.audioPlayer.SetBufferSize(audioPlayerBufferLatency)
	g.audioPlayer.Play()
}

// Update runs as many fixed ticks as the elapsed wall-clock time calls for.
func (g *Game) Update() error {
	now := g.now()
	if g.lastUpdate.IsZero() {
		g.lastUpdate = now
	}
	elapsed := now.Sub(g.lastUpdate)
	g.lastUpdate = now

	steps := g.stepper.advance(elapsed)
	simStart := time.Now()
	for i := 0; i < steps; i++ {
		g.world.step(tickDT)
	}
	g.lastSimDuration = time.Since(simStart)

	if shots := g.world.shots(); shots != g.lastShots {
		if g.audioStream != nil {
			g.audioStream.Trigger()
		}
		g.lastShots = shots
	}
	return nil
}
