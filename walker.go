package main

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/google/uuid"
)

// Walker wanders the arena toward randomly chosen destinations and keeps one
// projectile in flight at all times.
type Walker struct {
	id          uuid.UUID
	position    Vec2
	destination Vec2
	velocity    Vec2
	speed       float64
	radius      float64
	color       color.RGBA
	projectile  *Projectile
	rng         *rand.Rand
	shots       uint64
}

// newWalker places a walker at the center of the arena. Its destination starts
// at its own position so the first tick picks a fresh one.
func newWalker(width, height float64, rng *rand.Rand) *Walker {
	center := Vec2{X: width / 2, Y: height / 2}
	return &Walker{
		id:          uuid.New(),
		position:    center,
		destination: center,
		speed:       walkerSpeed,
		radius:      walkerRadius,
		color: color.RGBA{
			R: uint8(rng.Float64() * 256),
			G: uint8(rng.Float64() * 256),
			B: uint8(rng.Float64() * 256),
			A: 255,
		},
		projectile: newProjectile(),
		rng:        rng,
	}
}

// Update fires the projectile if it is resting, re-rolls the destination on
// arrival and steps toward the destination.
func (wk *Walker) Update(width, height, dt float64) {
	if !wk.projectile.fired {
		wk.projectile.Fire(wk.position, wk.randomPoint(width, height))
		wk.shots++
	}
	if wk.atDestination() {
		wk.destination = wk.randomPoint(width, height)
	}
	wk.step(dt)
}

// KeepInArena clamps the position into [0,width]x[0,height], per axis.
func (wk *Walker) KeepInArena(width, height float64) {
	wk.position.Y = math.Max(0, math.Min(height, wk.position.Y))
	wk.position.X = math.Max(0, math.Min(width, wk.position.X))
}

func (wk *Walker) atDestination() bool {
	return magnitude(wk.position.sub(wk.destination)) < arrivalThreshold
}

func (wk *Walker) step(dt float64) {
	// Zero length means we are sitting on the destination: stand still.
	direction, _ := normalize(wk.destination.sub(wk.position))
	wk.velocity = direction.scale(wk.speed)
	wk.position = wk.position.add(wk.velocity.scale(dt))
}

func (wk *Walker) randomPoint(width, height float64) Vec2 {
	return Vec2{X: wk.rng.Float64() * width, Y: wk.rng.Float64() * height}
}

// Draw renders the walker outline followed by its projectile.
func (wk *Walker) Draw(c canvas) {
	c.Circle(wk.position, wk.radius, false, wk.color)
	wk.projectile.Draw(c)
}

// ID identifies the walker in logs.
func (wk *Walker) ID() uuid.UUID { return wk.id }

// Position returns the current location.
func (wk *Walker) Position() Vec2 { return wk.position }

// Projectile returns the walker's projectile.
func (wk *Walker) Projectile() *Projectile { return wk.projectile }

// Shots reports how many times the walker has fired.
func (wk *Walker) Shots() uint64 { return wk.shots }
