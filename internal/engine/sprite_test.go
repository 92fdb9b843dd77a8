package engine

import (
	"testing"

	"github.com/vovakirdan/dapper-dasher/internal/core"
)

func runnerSheet() Sheet {
	return Sheet{Rows: 1, Cols: 6, TerminalRow: 0, TerminalCol: 5}
}

func TestAnimateWaitsForInterval(t *testing.T) {
	s := NewAnimatedSprite(128, 128, core.Vec2{}, 0.1)
	sh := runnerSheet()

	Animate(&s, 0.04, sh)
	Animate(&s, 0.04, sh)
	if s.Index != 0 {
		t.Fatalf("advanced too early, index = %d", s.Index)
	}
	if s.Elapsed <= 0 {
		t.Errorf("elapsed should accumulate, got %v", s.Elapsed)
	}

	Animate(&s, 0.04, sh)
	if s.Index != 1 {
		t.Errorf("index = %d, expected 1 after interval elapsed", s.Index)
	}
	if s.Elapsed != 0 {
		t.Errorf("elapsed = %v, expected reset to 0", s.Elapsed)
	}
}

func TestAnimateSingleRowWraps(t *testing.T) {
	s := NewAnimatedSprite(128, 128, core.Vec2{}, 0.1)
	sh := runnerSheet()

	wantX := []float64{0, 128, 256, 384, 512}
	for i, x := range wantX {
		Animate(&s, 0.1, sh)
		if s.Frame.X != x || s.Frame.Y != 0 {
			t.Fatalf("tick %d: frame = (%v, %v), expected (%v, 0)", i+1, s.Frame.X, s.Frame.Y, x)
		}
	}

	// Sixth interval hits the terminal cell and wraps.
	Animate(&s, 0.1, sh)
	if s.Frame.X != 0 {
		t.Errorf("after 6 intervals frame.X = %v, expected 0", s.Frame.X)
	}
	if s.Index != 1 {
		t.Errorf("after wrap index = %d, expected 1 (reset to 0 then advanced)", s.Index)
	}

	// The loop then repeats.
	Animate(&s, 0.1, sh)
	if s.Frame.X != 128 {
		t.Errorf("after wrap next frame.X = %v, expected 128", s.Frame.X)
	}
}

func TestAnimateGridWrapsAtTerminalCell(t *testing.T) {
	s := NewAnimatedSprite(100, 100, core.Vec2{}, 1.0/16.0)
	sh := Sheet{Rows: 8, Cols: 8, RowDivisor: 8, TerminalRow: 7, TerminalCol: 4}

	if sh.Frames() != 60 {
		t.Fatalf("Frames() = %d, expected 60", sh.Frames())
	}

	for i := 0; i < sh.Frames(); i++ {
		Animate(&s, 1.0/16.0, sh)
	}
	if s.Frame.X != 300 || s.Frame.Y != 700 {
		t.Errorf("last cell = (%v, %v), expected (300, 700)", s.Frame.X, s.Frame.Y)
	}

	Animate(&s, 1.0/16.0, sh)
	if s.Frame.X != 0 || s.Frame.Y != 0 || s.Index != 1 {
		t.Errorf("after wrap frame = (%v, %v) index %d, expected (0, 0) index 1", s.Frame.X, s.Frame.Y, s.Index)
	}
}

func TestAnimateExplicitRowDivisor(t *testing.T) {
	// Dividing the index by the row count instead of the column count
	// walks down the sheet on every frame.
	s := NewAnimatedSprite(128, 128, core.Vec2{}, 0.1)
	sh := Sheet{Rows: 1, Cols: 6, RowDivisor: 1, TerminalRow: 0, TerminalCol: 5}

	Animate(&s, 0.1, sh)
	Animate(&s, 0.1, sh)
	if s.Frame.X != 128 || s.Frame.Y != 128 {
		t.Errorf("frame = (%v, %v), expected (128, 128)", s.Frame.X, s.Frame.Y)
	}
}

func TestSheetCell(t *testing.T) {
	sh := Sheet{Rows: 8, Cols: 8}
	tests := []struct {
		index, row, col int
	}{
		{0, 0, 0},
		{7, 0, 7},
		{8, 1, 0},
		{60, 7, 4},
	}
	for _, tc := range tests {
		row, col := sh.Cell(tc.index)
		if row != tc.row || col != tc.col {
			t.Errorf("Cell(%d) = (%d, %d), expected (%d, %d)", tc.index, row, col, tc.row, tc.col)
		}
	}
}
