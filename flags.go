package main

import "flag"

// Command-line flags. Flags that are set explicitly override the config file.
var (
	// configFlag names the TOML or YAML config file.
	configFlag = flag.String("config", defaultConfig, "path to a .toml or .yaml config file")

	// walkersFlag sets how many walkers roam the arena.
	walkersFlag = flag.Int("walkers", 1, "number of walkers")

	// seedFlag seeds the walker generators; 0 picks a time-based seed.
	seedFlag = flag.Int64("seed", 0, "random seed (0 = time based)")

	// headlessFlag runs the simulation without opening a window.
	headlessFlag = flag.Bool("headless", false, "run without a window for -ticks fixed steps")

	ticksFlag = flag.Int("ticks", 600, "number of fixed steps to run in headless mode")

	// debugFlag enables the FPS overlay and debug logging.
	debugFlag = flag.Bool("debug", false, "show FPS and simulation overlay, log at debug level")

	// enableAudioFlag plays a short click for every projectile fired.
	enableAudioFlag = flag.Bool("enable-audio", false, "play a click for every shot")

	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to this path")
)

// applyFlags copies explicitly set flags over cfg.
func applyFlags(cfg *simConfig) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "walkers":
			cfg.Simulation.Walkers = *walkersFlag
		case "seed":
			cfg.Simulation.Seed = *seedFlag
		}
	})
}
