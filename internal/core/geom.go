// Package core provides fundamental types and math for the starlinks engine.
// It contains no external dependencies (especially no Bubble Tea or Ebiten)
// to keep simulation logic pure and testable.
package core

import "math"

// Rect is an axis-aligned cell rectangle used by Screen drawing helpers.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// WrapAxis folds v into [0, size) the way a torus edge does: a value that
// crossed one edge reappears at the other. Ordinary crossings take a single
// add or subtract; anything further out falls back to a modulo.
func WrapAxis(v, size float64) float64 {
	if size <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	if v < 0 {
		v += size
	} else if v >= size {
		v -= size
	}

	if v < 0 || v >= size {
		v = math.Mod(v, size)
		if v < 0 {
			v += size
		}
	}

	// -epsilon + size can round up to exactly size
	if v >= size {
		v = 0
	}
	return v
}

// WrapPoint applies WrapAxis to both axes of p.
func WrapPoint(p Vec2, w, h float64) Vec2 {
	return Vec2{X: WrapAxis(p.X, w), Y: WrapAxis(p.Y, h)}
}

// NormalizeAngle maps an angle to (-Pi, Pi].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// AngleDiff returns the signed shortest rotation from `from` to `to`.
func AngleDiff(to, from float64) float64 {
	return NormalizeAngle(to - from)
}
