package main

import "math"

// Vec2 is a 2D value used for positions, velocities and directions.
type Vec2 struct {
	X, Y float64
}

func (a Vec2) add(b Vec2) Vec2      { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) sub(b Vec2) Vec2      { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }

// magnitude returns the Euclidean length of v.
func magnitude(v Vec2) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// normalize returns v scaled to unit length. The second result is false when v
// has zero length, in which case there is no preferred direction and callers
// decide what to fall back to.
func normalize(v Vec2) (Vec2, bool) {
	m := magnitude(v)
	if m > 0 {
		return Vec2{v.X / m, v.Y / m}, true
	}
	return Vec2{}, false
}
