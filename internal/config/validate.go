package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Validate rejects configurations the engine cannot run, such as sheet
// geometry that would divide by zero.
func (c DasherConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if err := c.Player.validate("player"); err != nil {
		return err
	}
	if err := c.Obstacles.Sheet.validate("obstacles.sheet"); err != nil {
		return err
	}
	if c.Obstacles.Count <= 0 {
		return fmt.Errorf("%w: obstacles.count must be positive", ErrInvalid)
	}
	if c.Obstacles.Jitter < 0 {
		return fmt.Errorf("%w: obstacles.jitter must not be negative", ErrInvalid)
	}
	if c.Obstacles.Padding < 0 {
		return fmt.Errorf("%w: obstacles.padding must not be negative", ErrInvalid)
	}
	for i, l := range c.Parallax {
		if l.Width <= 0 || l.Scale <= 0 {
			return fmt.Errorf("%w: parallax[%d] needs positive width and scale", ErrInvalid, i)
		}
	}

	seen := make(map[string]bool, len(c.Variants))
	for i, v := range c.Variants {
		if v.ID == "" {
			return fmt.Errorf("%w: variants[%d] has no id", ErrInvalid, i)
		}
		if seen[v.ID] {
			return fmt.Errorf("%w: duplicate variant %q", ErrInvalid, v.ID)
		}
		seen[v.ID] = true
		if v.Obstacles < 0 || v.Width < 0 || v.Height < 0 || v.Spacing < 0 {
			return fmt.Errorf("%w: variant %q has negative overrides", ErrInvalid, v.ID)
		}
	}
	return nil
}

func (s SheetConfig) validate(name string) error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return fmt.Errorf("%w: %s sheet is %dx%d", ErrInvalid, name, s.Rows, s.Cols)
	}
	if s.RowDivisor < 0 {
		return fmt.Errorf("%w: %s.row_divisor must not be negative", ErrInvalid, name)
	}
	if s.TerminalRow < 0 || s.TerminalRow >= s.Rows || s.TerminalCol < 0 || s.TerminalCol >= s.Cols {
		return fmt.Errorf("%w: %s terminal cell (%d, %d) outside the sheet", ErrInvalid, name, s.TerminalRow, s.TerminalCol)
	}
	if s.FrameInterval <= 0 {
		return fmt.Errorf("%w: %s.frame_interval must be positive", ErrInvalid, name)
	}
	if s.FrameWidth <= 0 || s.FrameHeight <= 0 {
		return fmt.Errorf("%w: %s frame size must be positive", ErrInvalid, name)
	}
	return nil
}
