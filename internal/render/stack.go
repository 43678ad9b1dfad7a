package render

import (
	"math"

	"github.com/vovakirdan/starlinks/internal/core"
)

// Affine is a 2D affine transform:
//
//	x' = A*x + C*y + TX
//	y' = B*x + D*y + TY
type Affine struct {
	A, B, C, D, TX, TY float64
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{A: 1, D: 1}
}

// Apply transforms p.
func (m Affine) Apply(p core.Vec2) core.Vec2 {
	return core.V(m.A*p.X+m.C*p.Y+m.TX, m.B*p.X+m.D*p.Y+m.TY)
}

// Rotation returns the rotation angle the transform applies.
func (m Affine) Rotation() float64 {
	return math.Atan2(m.B, m.A)
}

// Stack is a save/restore transform stack that Surface implementations
// embed to get Save, Restore, Translate and Rotate.
type Stack struct {
	cur   Affine
	saved []Affine
	init  bool
}

// Current returns the active transform.
func (s *Stack) Current() Affine {
	if !s.init {
		return Identity()
	}
	return s.cur
}

// Apply transforms p by the active transform.
func (s *Stack) Apply(p core.Vec2) core.Vec2 {
	return s.Current().Apply(p)
}

// Save pushes the active transform.
func (s *Stack) Save() {
	s.saved = append(s.saved, s.Current())
}

// Restore pops the last saved transform. Unbalanced calls are ignored.
func (s *Stack) Restore() {
	if len(s.saved) == 0 {
		return
	}
	s.set(s.saved[len(s.saved)-1])
	s.saved = s.saved[:len(s.saved)-1]
}

// Translate moves the origin by (dx, dy) in the current coordinate space.
func (s *Stack) Translate(dx, dy float64) {
	m := s.Current()
	m.TX += m.A*dx + m.C*dy
	m.TY += m.B*dx + m.D*dy
	s.set(m)
}

// Rotate turns the current coordinate space by rad radians.
func (s *Stack) Rotate(rad float64) {
	m := s.Current()
	sin, cos := math.Sincos(rad)
	s.set(Affine{
		A:  m.A*cos + m.C*sin,
		B:  m.B*cos + m.D*sin,
		C:  -m.A*sin + m.C*cos,
		D:  -m.B*sin + m.D*cos,
		TX: m.TX,
		TY: m.TY,
	})
}

// Reset drops all saved state and returns to identity.
func (s *Stack) Reset() {
	s.saved = s.saved[:0]
	s.set(Identity())
}

// Depth returns the number of saved transforms.
func (s *Stack) Depth() int {
	return len(s.saved)
}

func (s *Stack) set(m Affine) {
	s.cur = m
	s.init = true
}
