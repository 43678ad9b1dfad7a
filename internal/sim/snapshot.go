package sim

import (
	"fmt"
	"hash/fnv"
	"io"
	"math"

	"github.com/vovakirdan/starlinks/internal/entity"
)

// Snapshot is a value copy of the simulation, safe to keep across frames.
type Snapshot struct {
	Frame       uint64
	Clock       float64 // Simulated seconds
	Width       float64
	Height      float64
	State       State
	Player      entity.State
	Projectiles []entity.State
	Targets     []entity.State
	Particles   []entity.State
}

// Hash returns a hash of the snapshot for determinism testing.
// Floats are hashed by bit pattern so any drift shows up.
func (s *Snapshot) Hash() uint64 {
	h := fnv.New64a()

	fmt.Fprintf(h, "F:%d;C:%x;W:%x;H:%x;", s.Frame, math.Float64bits(s.Clock),
		math.Float64bits(s.Width), math.Float64bits(s.Height))

	writeState(h, "P", s.Player)
	for _, st := range s.Projectiles {
		writeState(h, "B", st)
	}
	for _, st := range s.Targets {
		writeState(h, "T", st)
	}
	for _, st := range s.Particles {
		writeState(h, "X", st)
	}

	return h.Sum64()
}

func writeState(h io.Writer, prefix string, st entity.State) {
	fmt.Fprintf(h, "%s:%d:%x:%x:%x:%x:%x:%x:%v:%s,", prefix, st.Kind,
		math.Float64bits(st.Pos.X), math.Float64bits(st.Pos.Y),
		math.Float64bits(st.Vel.X), math.Float64bits(st.Vel.Y),
		math.Float64bits(st.Rotation), math.Float64bits(st.Life),
		st.Thrusting, st.Tag)
}

// Count returns the number of live entities of kind k.
func (s *Snapshot) Count(k entity.Kind) int {
	switch k {
	case entity.KindPlayer:
		return 1
	case entity.KindProjectile:
		return len(s.Projectiles)
	case entity.KindTarget:
		return len(s.Targets)
	case entity.KindParticle:
		return len(s.Particles)
	default:
		return 0
	}
}
