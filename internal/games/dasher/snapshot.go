package dasher

import (
	"github.com/vovakirdan/dapper-dasher/internal/core"
	"github.com/vovakirdan/dapper-dasher/internal/engine"
)

// Snapshot is a read-only view of everything a renderer needs for one
// frame. Slices alias the game's state and are only valid until the next
// Step.
type Snapshot struct {
	Player     engine.AnimatedSprite
	Airborne   bool
	Obstacles  []engine.AnimatedSprite
	Layers     []engine.Layer
	FinishLine float64
	HasFinish  bool
	State      core.GameState
}

// Snapshot returns the current draw data.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Player:     g.player,
		Airborne:   g.body.Airborne,
		Obstacles:  g.obstacles,
		Layers:     g.layers,
		FinishLine: g.finishLine,
		HasFinish:  g.cfg.Variant.FinishLine,
		State:      g.State(),
	}
}
