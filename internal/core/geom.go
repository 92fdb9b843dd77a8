// Package core provides fundamental types and utilities for the dasher.
// It contains no external dependencies (especially no Bubble Tea or Ebiten)
// to keep game logic pure and testable.
package core

// Vec2 is a point or offset in world space (pixels).
type Vec2 struct {
	X, Y float64
}

// Rect represents an axis-aligned bounding box in world space.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// At returns a rectangle with the same size placed at p.
func (r Rect) At(p Vec2) Rect {
	return Rect{X: p.X, Y: p.Y, W: r.W, H: r.H}
}

// Inset shrinks the rectangle by pad on all four sides.
// A negative pad grows it.
func (r Rect) Inset(pad float64) Rect {
	return Rect{
		X: r.X + pad,
		Y: r.Y + pad,
		W: r.W - pad*2,
		H: r.H - pad*2,
	}
}

// Intersects returns true if this rectangle overlaps with another.
// Edges that touch count as overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X > other.Right() || other.X > r.Right() {
		return false
	}
	if r.Y > other.Bottom() || other.Y > r.Bottom() {
		return false
	}
	return true
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
