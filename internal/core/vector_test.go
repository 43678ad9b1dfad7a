package core

import (
	"math"
	"testing"
)

func TestVecArithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add = %v, expected (4, 2)", got)
	}
	if got := a.Sub(b); got != V(2, 6) {
		t.Errorf("Sub = %v, expected (2, 6)", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale = %v, expected (6, 8)", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot = %v, expected -5", got)
	}
	if got := a.Length(); got != 5 {
		t.Errorf("Length = %v, expected 5", got)
	}

	// Operations must not mutate the receiver
	if a != V(3, 4) {
		t.Errorf("receiver changed to %v", a)
	}
}

func TestNormalize(t *testing.T) {
	n := V(3, 4).Normalize()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("Normalize length = %v, expected 1", n.Length())
	}

	z := Vec2{}.Normalize()
	if !z.IsZero() {
		t.Errorf("zero vector normalized to %v, expected zero", z)
	}
	if math.IsNaN(z.X) || math.IsNaN(z.Y) {
		t.Error("zero vector normalization produced NaN")
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi/2, 10)
	if math.Abs(v.X) > 1e-9 || math.Abs(v.Y-10) > 1e-9 {
		t.Errorf("FromAngle(Pi/2, 10) = %v, expected (0, 10)", v)
	}
	if math.Abs(v.Angle()-math.Pi/2) > 1e-12 {
		t.Errorf("Angle = %v, expected Pi/2", v.Angle())
	}
}

func TestClampLength(t *testing.T) {
	v := V(30, 40).ClampLength(10)
	if math.Abs(v.Length()-10) > 1e-9 {
		t.Errorf("ClampLength length = %v, expected 10", v.Length())
	}
	short := V(1, 1)
	if short.ClampLength(10) != short {
		t.Error("ClampLength should not change short vectors")
	}
}
