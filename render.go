package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Draw renders every walker, its projectile, and the optional debug overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.world.draw(screenCanvas{dst: screen})

	if g.debug {
		debugMsg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nTicks: %d (%d behind)\nWalkers: %d\nShots: %d\nSim: %.2f ms",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.world.ticks, g.stepper.pending(),
			len(g.world.walkers), g.world.shots(), g.lastSimDuration.Seconds()*1000)
		ebitenutil.DebugPrint(screen, debugMsg)
	}
}

// Layout reports the arena size as the logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.world.width), int(g.world.height)
}
