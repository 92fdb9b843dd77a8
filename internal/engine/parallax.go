package engine

// Layer is one horizontally tiled background strip.
type Layer struct {
	X     float64 // Offset of the first copy, always in (-Width*Scale, 0]
	Speed float64 // Pixels per second scrolled to the left
	Width float64 // Source image width in pixels
	Scale float64 // Draw scale
}

// Span returns the on-screen width of one copy of the layer.
func (l *Layer) Span() float64 {
	return l.Width * l.Scale
}

// Scroll moves the layer left and wraps it once a full copy has passed.
func (l *Layer) Scroll(dt float64) {
	l.X -= l.Speed * dt
	if l.X <= -l.Span() {
		l.X = 0
	}
}

// Offsets returns the x positions of the two copies to draw.
func (l *Layer) Offsets() (first, second float64) {
	return l.X, l.X + l.Span()
}
