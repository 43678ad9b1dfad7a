package entity

import (
	"math"

	"github.com/vovakirdan/starlinks/internal/core"
)

// Player is the ship. One exists per session; it is never destroyed.
type Player struct {
	Body
	Thrusting bool
	LastShot  float64 // Simulated seconds of the last fired projectile
}

// NewPlayer creates a resting ship at pos pointing along +X.
// LastShot starts at -Inf so the first shot is never throttled.
func NewPlayer(pos core.Vec2, radius float64) *Player {
	return &Player{
		Body:     Body{Pos: pos, Radius: radius},
		LastShot: math.Inf(-1),
	}
}

// Heading returns the ship's rotation in radians.
func (p *Player) Heading() float64 {
	return p.Rotation
}

// Update applies thrust (units/s^2 along the heading when Thrusting is set),
// damping and integration, then wraps the ship into the field.
func (p *Player) Update(dt, thrust float64, damping Damping, w, h float64) {
	if p.Thrusting {
		p.Vel = p.Vel.Add(p.Direction().Scale(thrust * dt))
	}

	p.Vel = p.Vel.Scale(damping.Multiplier(dt))
	p.Integrate(dt)
	p.Wrap(w, h)
}

// CanFire reports whether at least cooldown seconds passed since the last shot.
func (p *Player) CanFire(now, cooldown float64) bool {
	return now-p.LastShot >= cooldown-timeEpsilon
}

// Muzzle returns the spawn point offset ahead of the ship along its heading.
func (p *Player) Muzzle(offset float64) core.Vec2 {
	return p.Pos.Add(p.Direction().Scale(offset))
}

// State returns the render snapshot of the ship.
func (p *Player) State() State {
	return State{
		Kind:      KindPlayer,
		Pos:       p.Pos,
		Vel:       p.Vel,
		Rotation:  p.Rotation,
		Radius:    p.Radius,
		Thrusting: p.Thrusting,
	}
}
