package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

//go:generate go tool mockgen -source=canvas.go -destination=canvas_mock_test.go -package=main

// canvas is the draw primitive walkers and projectiles render through.
type canvas interface {
	Circle(center Vec2, radius float64, filled bool, clr color.Color)
}

// screenCanvas draws onto an ebiten screen image.
type screenCanvas struct {
	dst *ebiten.Image
}

func (c screenCanvas) Circle(center Vec2, radius float64, filled bool, clr color.Color) {
	cx, cy, r := float32(center.X), float32(center.Y), float32(radius)
	if filled {
		vector.DrawFilledCircle(c.dst, cx, cy, r, clr, true)
		return
	}
	vector.StrokeCircle(c.dst, cx, cy, r, outlineWidth, clr, true)
}
