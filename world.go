package main

import (
	"fmt"
	"math/rand"
)

// world owns every walker in the arena and advances them one tick at a time.
type world struct {
	width, height float64
	walkers       []*Walker
	ticks         uint64
}

// newWorld creates count walkers for a width x height arena. Each walker gets
// its own generator derived from seed so runs are reproducible.
func newWorld(width, height float64, count int, seed int64) (*world, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("arena %gx%g: %w", width, height, errSetupFailed)
	}
	if count < 1 {
		return nil, fmt.Errorf("walker count %d: %w", count, errSetupFailed)
	}
	wd := &world{width: width, height: height, walkers: make([]*Walker, 0, count)}
	for i := 0; i < count; i++ {
		rng := rand.New(rand.NewSource(seed + int64(i)))
		wd.walkers = append(wd.walkers, newWalker(width, height, rng))
	}
	return wd, nil
}

// step runs one fixed tick: update, clamp, then projectile, for each walker in turn.
func (wd *world) step(dt float64) {
	for _, wk := range wd.walkers {
		wk.Update(wd.width, wd.height, dt)
		wk.KeepInArena(wd.width, wd.height)
		wk.Projectile().Update(dt, wd.width, wd.height)
	}
	wd.ticks++
}

// draw renders every walker and its projectile.
func (wd *world) draw(c canvas) {
	for _, wk := range wd.walkers {
		wk.Draw(c)
	}
}

// shots totals the projectiles fired by all walkers.
func (wd *world) shots() uint64 {
	var total uint64
	for _, wk := range wd.walkers {
		total += wk.Shots()
	}
	return total
}

// inBounds reports whether every walker lies inside the arena.
func (wd *world) inBounds() bool {
	for _, wk := range wd.walkers {
		p := wk.Position()
		if p.X < 0 || p.X > wd.width || p.Y < 0 || p.Y > wd.height {
			return false
		}
	}
	return true
}
