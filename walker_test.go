package main

import (
	"math"
	"math/rand"
	"testing"

	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"
)

// constSource makes every Float64 draw return the same value.
type constSource struct{ v int64 }

func (s constSource) Int63() int64 { return s.v }
func (s constSource) Seed(int64)   {}

// halfRand returns a generator whose Float64 is always 0.5.
func halfRand() *rand.Rand {
	return rand.New(constSource{v: 1 << 62})
}

func near(a, b Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestNewWalker(t *testing.T) {
	wk := newWalker(800, 600, rand.New(rand.NewSource(1)))

	if wk.Position() != (Vec2{400, 300}) {
		t.Errorf("Position = %v, want (400, 300)", wk.Position())
	}
	if wk.destination != wk.position {
		t.Errorf("destination = %v, want starting position", wk.destination)
	}
	if wk.speed != walkerSpeed || wk.radius != walkerRadius {
		t.Errorf("speed, radius = %f, %f, want %f, %f", wk.speed, wk.radius, walkerSpeed, walkerRadius)
	}
	if wk.color.A != 255 {
		t.Errorf("color alpha = %d, want 255", wk.color.A)
	}
	if wk.Projectile().Fired() {
		t.Error("projectile should start resting")
	}
	if wk.Shots() != 0 {
		t.Errorf("Shots = %d, want 0", wk.Shots())
	}
}

func TestWalker_Update_FiresWhenResting(t *testing.T) {
	wk := newWalker(800, 600, rand.New(rand.NewSource(2)))
	start := wk.Position()

	wk.Update(800, 600, tickDT)
	if !wk.Projectile().Fired() {
		t.Fatal("projectile should be in flight after first update")
	}
	if wk.Projectile().Position() != start {
		t.Errorf("projectile fired from %v, want %v", wk.Projectile().Position(), start)
	}
	if wk.Shots() != 1 {
		t.Errorf("Shots = %d, want 1", wk.Shots())
	}

	// Still in flight: no second shot.
	shotVelocity := wk.projectile.velocity
	wk.Update(800, 600, tickDT)
	if wk.Shots() != 1 {
		t.Errorf("Shots = %d, want 1 while projectile is in flight", wk.Shots())
	}
	if wk.projectile.velocity != shotVelocity {
		t.Errorf("in-flight projectile was re-aimed: %v, want %v", wk.projectile.velocity, shotVelocity)
	}
}

func TestWalker_Update_RerollsOnArrival(t *testing.T) {
	wk := newWalker(800, 600, rand.New(rand.NewSource(3)))
	before := wk.Position()
	reached := wk.destination

	wk.Update(800, 600, tickDT)
	if wk.destination == reached {
		t.Fatalf("destination = %v, want a new one", wk.destination)
	}
	if wk.destination.X < 0 || wk.destination.X > 800 || wk.destination.Y < 0 || wk.destination.Y > 600 {
		t.Errorf("destination = %v, want inside arena", wk.destination)
	}
	dir, _ := normalize(wk.destination.sub(before))
	want := before.add(dir.scale(walkerSpeed * tickDT))
	if !near(wk.Position(), want) {
		t.Errorf("Position = %v, want %v", wk.Position(), want)
	}
}

func TestWalker_Update_ArrivalThreshold(t *testing.T) {
	tests := []struct {
		name     string
		offset   float64
		rerolled bool
	}{
		{"at threshold", arrivalThreshold, false},
		{"beyond threshold", arrivalThreshold + 10, false},
		{"inside threshold", arrivalThreshold - 0.01, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wk := newWalker(800, 600, rand.New(rand.NewSource(4)))
			dest := Vec2{400 + tt.offset, 300}
			wk.destination = dest

			wk.Update(800, 600, tickDT)
			if got := wk.destination != dest; got != tt.rerolled {
				t.Errorf("rerolled = %v, want %v", got, tt.rerolled)
			}
			if !tt.rerolled {
				want := Vec2{400 + walkerSpeed*tickDT, 300}
				if !near(wk.Position(), want) {
					t.Errorf("Position = %v, want %v", wk.Position(), want)
				}
			}
		})
	}
}

func TestWalker_Update_NoDirectionStandsStill(t *testing.T) {
	// Every draw lands on the arena center, which is where the walker starts.
	wk := newWalker(800, 600, halfRand())

	wk.Update(800, 600, tickDT)
	if wk.destination != (Vec2{400, 300}) {
		t.Fatalf("destination = %v, want (400, 300)", wk.destination)
	}
	if wk.velocity != (Vec2{}) {
		t.Errorf("velocity = %v, want zero", wk.velocity)
	}
	if wk.Position() != (Vec2{400, 300}) {
		t.Errorf("Position = %v, want (400, 300)", wk.Position())
	}
	if wk.projectile.velocity != (Vec2{}) {
		t.Errorf("projectile velocity = %v, want zero", wk.projectile.velocity)
	}
}

func TestNewWalker_FullColorRange(t *testing.T) {
	// Every draw is 1023/1024, just below 1; it must map to the top channel value.
	wk := newWalker(800, 600, rand.New(constSource{v: 1<<63 - 1<<53}))
	if wk.color.R != 255 || wk.color.G != 255 || wk.color.B != 255 {
		t.Errorf("color = %v, want 255 in every channel", wk.color)
	}
}

func TestWalker_KeepInArena(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"inside", Vec2{10, 20}, Vec2{10, 20}},
		{"past right", Vec2{1000, 20}, Vec2{800, 20}},
		{"past left", Vec2{-1000, 20}, Vec2{0, 20}},
		{"past bottom", Vec2{10, 1000}, Vec2{10, 600}},
		{"past top", Vec2{10, -1000}, Vec2{10, 0}},
		{"corner", Vec2{-5, 601}, Vec2{0, 600}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wk := newWalker(800, 600, rand.New(rand.NewSource(5)))
			wk.position = tt.in
			wk.KeepInArena(800, 600)
			if wk.Position() != tt.want {
				t.Errorf("Position = %v, want %v", wk.Position(), tt.want)
			}
		})
	}
}

func TestWalker_KeepInArena_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.Float64Range(1, 4000).Draw(t, "width")
		height := rapid.Float64Range(1, 4000).Draw(t, "height")
		in := Vec2{
			X: rapid.Float64Range(-1e7, 1e7).Draw(t, "x"),
			Y: rapid.Float64Range(-1e7, 1e7).Draw(t, "y"),
		}
		wk := newWalker(width, height, halfRand())
		wk.position = in
		wk.KeepInArena(width, height)

		p := wk.Position()
		if p.X < 0 || p.X > width || p.Y < 0 || p.Y > height {
			t.Fatalf("KeepInArena(%v) = %v, outside %fx%f", in, p, width, height)
		}
		if in.X >= 0 && in.X <= width && p.X != in.X {
			t.Fatalf("x moved from %f to %f while inside", in.X, p.X)
		}
		if in.Y >= 0 && in.Y <= height && p.Y != in.Y {
			t.Fatalf("y moved from %f to %f while inside", in.Y, p.Y)
		}
	})
}

func TestWalker_Draw(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := NewMockcanvas(ctrl)

	wk := newWalker(800, 600, rand.New(rand.NewSource(6)))
	gomock.InOrder(
		c.EXPECT().Circle(Vec2{400, 300}, walkerRadius, false, wk.color),
		c.EXPECT().Circle(projectileRestPosition, projectileRadius, true, projectileColor),
	)

	wk.Draw(c)
}
