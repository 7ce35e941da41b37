package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Simulation constants. Speeds are in arena units per second.
const (
	walkerSpeed      = 100.0
	walkerRadius     = 15.0
	arrivalThreshold = 3.0
	projectileSpeed  = 500.0
	projectileRadius = 5.0
	outlineWidth     = 1
	tickRate         = 60
	tickDT           = 1.0 / tickRate
	tickDuration     = time.Second / tickRate
	maxCatchUpSteps  = 8
	defaultWidth     = 800
	defaultHeight    = 600
	defaultTitle     = "Random Walkers"
	defaultConfig    = "conf.toml"
	shotSampleRate   = 48000
	shotToneHz       = 880.0
	shotDecay        = 0.9993
	shotSilence      = 1e-3
	pcm16MaxValue    = 32767
)

var projectileRestPosition = Vec2{X: -5, Y: -5}

// errSetupFailed marks every failure that happens before the simulation starts.
var errSetupFailed = errors.New("setup failed")

var errNegativeTicks = fmt.Errorf("ticks must not be negative: %w", errSetupFailed)

// simConfig is the file-backed configuration. Field tags cover both the TOML
// and YAML forms.
type simConfig struct {
	Window     windowConfig     `toml:"window" yaml:"window"`
	Simulation simulationConfig `toml:"simulation" yaml:"simulation"`
}

type windowConfig struct {
	Title  string `toml:"title" yaml:"title"`
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	Scale  int    `toml:"scale" yaml:"scale"`
}

type simulationConfig struct {
	Walkers int   `toml:"walkers" yaml:"walkers"`
	Seed    int64 `toml:"seed" yaml:"seed"`
}

func defaultSimConfig() simConfig {
	return simConfig{
		Window: windowConfig{
			Title:  defaultTitle,
			Width:  defaultWidth,
			Height: defaultHeight,
			Scale:  1,
		},
		Simulation: simulationConfig{Walkers: 1},
	}
}

// loadConfig reads path over the defaults. A missing file is only an error
// when required is set.
func loadConfig(path string, required bool) (simConfig, error) {
	cfg := defaultSimConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading %q: %w", path, errors.Join(errSetupFailed, err))
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &cfg)
	default:
		err = toml.Unmarshal(raw, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("decoding %q: %w", path, errors.Join(errSetupFailed, err))
	}
	return cfg, nil
}

func (c simConfig) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive: %w", c.Window.Width, c.Window.Height, errSetupFailed)
	}
	if c.Window.Scale < 1 {
		return fmt.Errorf("window scale %d must be at least 1: %w", c.Window.Scale, errSetupFailed)
	}
	if c.Simulation.Walkers < 1 {
		return fmt.Errorf("walker count %d must be at least 1: %w", c.Simulation.Walkers, errSetupFailed)
	}
	return nil
}

// seed returns the configured seed, or a time-based one when unset.
func (c simConfig) seed() int64 {
	if c.Simulation.Seed != 0 {
		return c.Simulation.Seed
	}
	return time.Now().UnixNano()
}
