package entity

import "github.com/vovakirdan/starlinks/internal/core"

// Particle is a short-lived visual speck. It has no collision radius.
type Particle struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Life  float64 // 1.0 at birth, dead once it reaches 0
	Color string
	Size  float64
}

// Update integrates the particle and decays its life by decay*dt.
// Returns false once the particle is dead.
func (p *Particle) Update(dt, decay float64) bool {
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.Life -= decay * dt
	return p.Life > timeEpsilon
}

// State returns the render snapshot of the particle.
func (p *Particle) State() State {
	return State{
		Kind: KindParticle,
		Pos:  p.Pos,
		Vel:  p.Vel,
		Life: p.Life,
		Tag:  p.Color,
		Size: p.Size,
	}
}
