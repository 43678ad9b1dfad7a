package entity

import "github.com/vovakirdan/starlinks/internal/core"

// Projectile is a shot fired by the ship. Projectiles do not wrap; they
// leave the field and expire.
type Projectile struct {
	Body
	Lifetime float64 // Seconds left
}

// NewProjectile creates a projectile at origin travelling along rotation.
func NewProjectile(origin core.Vec2, rotation, speed, radius, lifetime float64) Projectile {
	return Projectile{
		Body: Body{
			Pos:      origin,
			Vel:      core.FromAngle(rotation, speed),
			Rotation: rotation,
			Radius:   radius,
		},
		Lifetime: lifetime,
	}
}

// Update counts the lifetime down and, if still alive, integrates position.
// Returns false once the projectile has expired.
func (p *Projectile) Update(dt float64) bool {
	p.Lifetime -= dt
	if p.Lifetime <= timeEpsilon {
		return false
	}
	p.Integrate(dt)
	return true
}

// State returns the render snapshot of the projectile.
func (p *Projectile) State() State {
	return State{
		Kind:     KindProjectile,
		Pos:      p.Pos,
		Vel:      p.Vel,
		Rotation: p.Rotation,
		Radius:   p.Radius,
		Life:     p.Lifetime,
	}
}
