// Package effects implements fire-and-forget particle bursts.
// Particles are purely visual: nothing in the simulation reads them back.
package effects

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/starlinks/internal/core"
	"github.com/vovakirdan/starlinks/internal/entity"
)

// Config holds particle tuning.
type Config struct {
	SpeedMin float64 // Units per second
	SpeedMax float64
	Decay    float64 // Life lost per second
	SizeMin  float64
	SizeMax  float64
}

// DefaultConfig returns the stock particle tuning.
func DefaultConfig() Config {
	return Config{
		SpeedMin: 50,
		SpeedMax: 150,
		Decay:    2,
		SizeMin:  1,
		SizeMax:  4,
	}
}

// System owns the live particle set.
type System struct {
	cfg       Config
	rng       *rand.Rand
	particles []entity.Particle
}

// New creates an empty particle system seeded for reproducible bursts.
func New(cfg Config, seed int64) *System {
	return &System{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Emit spawns count particles at origin, each with full life, a uniformly
// random direction and a speed in [SpeedMin, SpeedMax).
func (s *System) Emit(origin core.Vec2, count int, color string) {
	for i := 0; i < count; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := s.cfg.SpeedMin + s.rng.Float64()*(s.cfg.SpeedMax-s.cfg.SpeedMin)
		size := s.cfg.SizeMin + s.rng.Float64()*(s.cfg.SizeMax-s.cfg.SizeMin)

		s.particles = append(s.particles, entity.Particle{
			Pos:   origin,
			Vel:   core.FromAngle(angle, speed),
			Life:  1,
			Color: color,
			Size:  size,
		})
	}
}

// Update advances every particle and drops the dead ones in place.
func (s *System) Update(dt float64) {
	alive := s.particles[:0]
	for i := range s.particles {
		p := s.particles[i]
		if p.Update(dt, s.cfg.Decay) {
			alive = append(alive, p)
		}
	}
	clear(s.particles[len(alive):])
	s.particles = alive
}

// Len returns the number of live particles.
func (s *System) Len() int {
	return len(s.particles)
}

// States returns render snapshots of the live particles.
func (s *System) States() []entity.State {
	out := make([]entity.State, len(s.particles))
	for i := range s.particles {
		out[i] = s.particles[i].State()
	}
	return out
}

// Reset removes all particles.
func (s *System) Reset() {
	s.particles = s.particles[:0]
}
