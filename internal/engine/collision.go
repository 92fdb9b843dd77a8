package engine

import "github.com/vovakirdan/dapper-dasher/internal/core"

// Detector tests the player against every obstacle once per frame.
// A hit is sticky: once set it stays set for the rest of the session.
type Detector struct {
	Padding float64 // Inset applied to each obstacle's hit-box
	hit     bool
}

// NewDetector creates a detector with the given obstacle padding.
func NewDetector(padding float64) *Detector {
	return &Detector{Padding: padding}
}

// HitBox returns the collision rectangle of an obstacle.
func (d *Detector) HitBox(obstacle *AnimatedSprite) core.Rect {
	return obstacle.Bounds().Inset(d.Padding)
}

// Check ORs this frame's overlaps into the sticky flag and returns it.
func (d *Detector) Check(player *AnimatedSprite, obstacles []AnimatedSprite) bool {
	box := player.Bounds()
	for i := range obstacles {
		if box.Intersects(d.HitBox(&obstacles[i])) {
			d.hit = true
		}
	}
	return d.hit
}

// Hit reports whether any collision has been recorded.
func (d *Detector) Hit() bool {
	return d.hit
}

// Reset clears the flag for a new session.
func (d *Detector) Reset() {
	d.hit = false
}
