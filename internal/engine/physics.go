package engine

import "github.com/vovakirdan/dapper-dasher/internal/core"

// IsGrounded reports whether y has reached or passed the floor threshold.
func IsGrounded(y, groundY float64) bool {
	return y >= groundY
}

// Body holds the vertical motion state of an entity that can jump.
type Body struct {
	Velocity float64 // Pixels per second, positive = down
	Airborne bool

	Gravity float64 // Pixels per second squared
	Impulse float64 // Velocity added by a jump, negative = up
}

// NewBody creates a body at rest.
func NewBody(gravity, impulse float64) Body {
	return Body{Gravity: gravity, Impulse: impulse}
}

// Integrate updates the airborne flag and velocity for this frame.
// A grounded body stops; an airborne one accelerates by gravity.
func (b *Body) Integrate(y, groundY, dt float64) {
	if IsGrounded(y, groundY) {
		b.Airborne = false
		b.Velocity = 0
		return
	}
	b.Airborne = true
	b.Velocity += b.Gravity * dt
}

// Jump applies the jump impulse once. It is ignored while airborne.
// Returns whether the jump was accepted.
func (b *Body) Jump() bool {
	if b.Airborne {
		return false
	}
	b.Velocity += b.Impulse
	return true
}

// Move integrates position by the current velocity (explicit Euler).
// There is no clamp: overshooting the floor is corrected by the next Integrate.
func (b *Body) Move(pos *core.Vec2, dt float64) {
	pos.Y += b.Velocity * dt
}

// Step runs a whole physics frame: settle, optional jump, move.
func (b *Body) Step(pos *core.Vec2, groundY, dt float64, jump bool) {
	b.Integrate(pos.Y, groundY, dt)
	if jump {
		b.Jump()
	}
	b.Move(pos, dt)
}
