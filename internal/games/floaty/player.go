package floaty

import "github.com/vovakirdan/floaty-cloud/internal/core"

// Player is the floating cloud controlled by the user.
type Player struct {
	X, Y   float64 // Centre of the body
	Radius float64
	Vel    float64 // Vertical velocity, negative = up
}

// Flap replaces the vertical velocity with an upward impulse.
func (p *Player) Flap(impulse float64) {
	p.Vel = impulse
}

// Integrate applies one tick of gravity: velocity first, then position.
func (p *Player) Integrate(gravity float64) {
	p.Vel += gravity
	p.Y += p.Vel
}

// OutOfBounds reports whether the body crosses the top or bottom edge of a
// viewport of the given height.
func (p Player) OutOfBounds(height float64) bool {
	return p.Y+p.Radius > height || p.Y-p.Radius < 0
}

// Center returns the body centre.
func (p Player) Center() core.Vec2 {
	return core.Vec2{X: p.X, Y: p.Y}
}

// Hits reports whether the body touches an obstacle's bounding box.
func (p Player) Hits(o Obstacle) bool {
	return core.CircleIntersectsRect(p.Center(), p.Radius, o.Rect())
}
