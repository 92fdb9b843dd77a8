package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal) or pixels (window)
	ScreenH  int   // Screen height
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// DeltaTime returns the fixed simulation step in seconds.
func (c RuntimeConfig) DeltaTime() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// Outcome is the terminal result of a session, if any.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeLost
	OutcomeWon
)

// String returns the name used for storage and logs.
func (o Outcome) String() string {
	switch o {
	case OutcomeLost:
		return "lost"
	case OutcomeWon:
		return "won"
	default:
		return "running"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Obstacles cleared
	Outcome  Outcome // Running, lost or won
	Paused   bool    // Whether the game is paused
	Survived float64 // Seconds of simulated play
}

// GameOver reports whether the session reached a terminal outcome.
func (s GameState) GameOver() bool {
	return s.Outcome != OutcomeRunning
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
