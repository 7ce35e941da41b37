package main

import "image/color"

var projectileColor = color.RGBA{255, 255, 255, 255}

// Projectile is a single reusable shot. It rests off-screen until fired, travels
// in a straight line while fired, and drops back to resting once it leaves the
// arena. Velocity and position are stale while resting.
type Projectile struct {
	position Vec2
	velocity Vec2
	radius   float64
	fired    bool
}

// newProjectile returns a resting projectile parked at the off-screen sentinel.
func newProjectile() *Projectile {
	return &Projectile{
		position: projectileRestPosition,
		velocity: Vec2{X: projectileSpeed},
		radius:   projectileRadius,
	}
}

// Fire re-arms the projectile in place at origin, heading toward target.
func (p *Projectile) Fire(origin, target Vec2) {
	direction := target.sub(origin)
	if unit, ok := normalize(direction); ok {
		direction = unit
	}
	p.velocity = direction.scale(projectileSpeed)
	p.position = origin
	p.fired = true
}

// Update advances a fired projectile by one step and rests it once it has left
// the arena. Resting projectiles are left untouched.
func (p *Projectile) Update(dt, width, height float64) {
	if !p.fired {
		return
	}
	p.position = p.position.add(p.velocity.scale(dt))
	if p.offScreen(width, height) {
		p.fired = false
	}
}

func (p *Projectile) offScreen(width, height float64) bool {
	return p.position.Y < 0 || p.position.X > width || p.position.Y > height || p.position.X < 0
}

// Fired reports whether the projectile is in flight.
func (p *Projectile) Fired() bool { return p.fired }

// Position returns the current location.
func (p *Projectile) Position() Vec2 { return p.position }

// Draw renders the projectile as a filled circle.
func (p *Projectile) Draw(c canvas) {
	c.Circle(p.position, p.radius, true, projectileColor)
}
