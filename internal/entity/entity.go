// Package entity defines the simulated bodies of the play-field: the player
// ship, its projectiles, the link targets and effect particles.
//
// The set of kinds is closed. Code that dispatches on Kind is expected to
// handle all four cases.
package entity

import (
	"math"

	"github.com/vovakirdan/starlinks/internal/core"
)

// timeEpsilon absorbs float drift in sums of frame times. Lifetimes at or
// below it count as spent, cooldowns within it count as elapsed.
const timeEpsilon = 1e-9

// Kind tags an entity variant.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindProjectile
	KindTarget
	KindParticle
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindProjectile:
		return "projectile"
	case KindTarget:
		return "target"
	case KindParticle:
		return "particle"
	default:
		return "unknown"
	}
}

// Body is the kinematic state shared by every positional entity.
type Body struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Rotation float64 // Radians, 0 points along +X
	Radius   float64
}

// Integrate advances the position by velocity * dt.
func (b *Body) Integrate(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// Wrap folds the position back into the w x h field.
// Velocity and rotation are untouched.
func (b *Body) Wrap(w, h float64) {
	b.Pos = core.WrapPoint(b.Pos, w, h)
}

// Direction returns the unit vector of the current rotation.
func (b Body) Direction() core.Vec2 {
	return core.FromAngle(b.Rotation, 1)
}

// Overlaps reports whether the two bounding circles intersect.
// Touching circles do not overlap.
func (b Body) Overlaps(o Body) bool {
	return b.Pos.DistanceTo(o.Pos) < b.Radius+o.Radius
}

// DampingMode selects how velocity damping scales with frame time.
type DampingMode string

const (
	// DampingExponential decays velocity by Factor per reference frame,
	// independent of the actual frame rate.
	DampingExponential DampingMode = "exponential"
	// DampingLegacy multiplies velocity by Factor once per frame regardless of dt.
	DampingLegacy DampingMode = "legacy"
)

// Damping describes velocity drag.
type Damping struct {
	Mode         DampingMode
	Factor       float64 // Multiplier applied per reference frame
	ReferenceFPS float64 // Frame rate at which Factor was tuned
}

// Multiplier returns the velocity multiplier for a step of dt seconds.
func (d Damping) Multiplier(dt float64) float64 {
	if d.Factor <= 0 {
		return 1
	}
	if d.Mode == DampingLegacy {
		return d.Factor
	}
	fps := d.ReferenceFPS
	if fps <= 0 {
		fps = 60
	}
	return math.Pow(d.Factor, dt*fps)
}

// State is a read-only copy of one entity, handed to renderers.
// Fields that do not apply to a kind are zero.
type State struct {
	Kind      Kind
	Pos       core.Vec2
	Vel       core.Vec2
	Rotation  float64
	Radius    float64
	Life      float64 // Projectile lifetime in seconds, particle life in [0, 1]
	Thrusting bool
	Tag       string // Target category, particle color tag
	URL       string
	Size      float64
}
