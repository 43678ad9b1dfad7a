package entity

import "github.com/vovakirdan/starlinks/internal/core"

// Link is an external reference a target stands for.
type Link struct {
	Tag string // Category, e.g. "github"
	URL string
}

// Target is a drifting portal. Hitting it triggers its link; the target
// itself persists and can be triggered again.
type Target struct {
	Body
	Link
	Spin float64 // Radians per second
}

// NewTarget creates a target for link with the given kinematics.
func NewTarget(link Link, pos, vel core.Vec2, rotation, radius, spin float64) Target {
	return Target{
		Body: Body{
			Pos:      pos,
			Vel:      vel,
			Rotation: rotation,
			Radius:   radius,
		},
		Link: link,
		Spin: spin,
	}
}

// Update drifts and spins the target, then wraps it into the field.
func (t *Target) Update(dt, w, h float64) {
	t.Integrate(dt)
	t.Rotation += t.Spin * dt
	t.Wrap(w, h)
}

// State returns the render snapshot of the target.
func (t *Target) State() State {
	return State{
		Kind:     KindTarget,
		Pos:      t.Pos,
		Vel:      t.Vel,
		Rotation: t.Rotation,
		Radius:   t.Radius,
		Tag:      t.Tag,
		URL:      t.URL,
	}
}
