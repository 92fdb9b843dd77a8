package engine

import "github.com/vovakirdan/dapper-dasher/internal/core"

// AnimatedSprite is the per-entity animation and placement state.
type AnimatedSprite struct {
	Frame    core.Rect // Current cell inside the sprite sheet
	Pos      core.Vec2 // Top-left corner in world space
	Index    int       // Frame number in row-major order
	Elapsed  float64   // Seconds since the last advance
	Interval float64   // Seconds each cell stays on screen
}

// NewAnimatedSprite creates a sprite showing the first cell of a sheet
// whose cells are frameW x frameH pixels.
func NewAnimatedSprite(frameW, frameH float64, pos core.Vec2, interval float64) AnimatedSprite {
	return AnimatedSprite{
		Frame:    core.NewRect(0, 0, frameW, frameH),
		Pos:      pos,
		Interval: interval,
	}
}

// Bounds returns the sprite's on-screen rectangle.
func (s *AnimatedSprite) Bounds() core.Rect {
	return s.Frame.At(s.Pos)
}

// Sheet describes the grid layout of a sprite sheet and where it loops.
type Sheet struct {
	Rows int
	Cols int

	// RowDivisor turns a frame index into a row number. Zero means Cols,
	// which is the row-major layout; any other value is used verbatim.
	RowDivisor int

	// TerminalRow and TerminalCol name the cell that wraps the index
	// back to 0. That cell itself is never shown.
	TerminalRow int
	TerminalCol int
}

// Cell returns the row and column of frame index i.
func (sh Sheet) Cell(i int) (row, col int) {
	div := sh.RowDivisor
	if div == 0 {
		div = sh.Cols
	}
	return i / div, i % sh.Cols
}

// Frames returns the number of distinct cells shown before the loop restarts.
func (sh Sheet) Frames() int {
	return sh.TerminalRow*sh.Cols + sh.TerminalCol
}

// Animate advances s by dt and flips to the next sheet cell once the frame
// interval has elapsed. At most one cell is advanced per call.
func Animate(s *AnimatedSprite, dt float64, sh Sheet) {
	s.Elapsed += dt
	if s.Elapsed < s.Interval {
		return
	}

	row, col := sh.Cell(s.Index)
	if row == sh.TerminalRow && col == sh.TerminalCol {
		s.Index = 0
		row, col = sh.Cell(0)
	}

	s.Frame.X = float64(col) * s.Frame.W
	s.Frame.Y = float64(row) * s.Frame.H
	s.Index++
	s.Elapsed = 0
}
