package main

import (
	"context"
	"fmt"
	"log/slog"
)

// headlessLogInterval is how many ticks pass between progress logs.
const headlessLogInterval = tickRate * 10

// runHeadless advances wd by ticks fixed steps without a window and logs a
// per-walker summary at the end.
func runHeadless(ctx context.Context, wd *world, ticks int) error {
	for i := 0; i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		wd.step(tickDT)
		if wd.ticks%headlessLogInterval == 0 {
			slog.DebugContext(ctx, "headless progress", "ticks", wd.ticks, "shots", wd.shots())
		}
	}
	for _, wk := range wd.walkers {
		slog.InfoContext(ctx, "walker summary",
			"walker", wk.ID().String(),
			"x", wk.Position().X,
			"y", wk.Position().Y,
			"shots", wk.Shots(),
			"in_flight", wk.Projectile().Fired())
	}
	if !wd.inBounds() {
		return fmt.Errorf("walker left the %gx%g arena after %d ticks", wd.width, wd.height, wd.ticks)
	}
	slog.InfoContext(ctx, "headless run complete", "ticks", wd.ticks, "shots", wd.shots())
	return nil
}
