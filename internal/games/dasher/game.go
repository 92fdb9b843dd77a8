// Package dasher implements the Dapper Dasher side-scrolling runner.
// The player jumps over animated nebulae while a parallax city scrolls by;
// touching a nebula loses, passing the finish line (when present) wins.
package dasher

import (
	"math/rand"

	"github.com/vovakirdan/dapper-dasher/internal/config"
	"github.com/vovakirdan/dapper-dasher/internal/core"
	"github.com/vovakirdan/dapper-dasher/internal/engine"
)

// Game implements one session of a Dapper Dasher variant.
type Game struct {
	cfg        config.Resolved
	runtime    core.RuntimeConfig
	dt         float64
	difficulty *config.DifficultyManager

	player      engine.AnimatedSprite
	body        engine.Body
	playerSheet engine.Sheet
	groundY     float64 // Player y when standing on the floor

	obstacles     []engine.AnimatedSprite
	obstacleSheet engine.Sheet
	cleared       []bool // Obstacle has passed the player
	finishLine    float64

	detector *engine.Detector
	layers   []engine.Layer

	outcome   core.Outcome
	paused    bool
	score     int
	survived  float64 // Simulated seconds
	tickCount int
}

// New creates a game for an already resolved variant configuration.
func New(cfg config.Resolved) *Game {
	return &Game{cfg: cfg}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.cfg.Variant.ID
}

// Title returns the variant's display name.
func (g *Game) Title() string {
	if g.cfg.Variant.Title != "" {
		return g.cfg.Variant.Title
	}
	return g.cfg.Window.Title
}

// Config returns the resolved configuration the game was built from.
func (g *Game) Config() config.Resolved {
	return g.cfg
}

// Reconfigure swaps the configuration. It takes effect on the next Reset.
func (g *Game) Reconfigure(cfg config.Resolved) {
	g.cfg = cfg
}

// Reset initializes or restarts the session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.dt = runtime.DeltaTime()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	winW := float64(g.cfg.Window.Width)
	winH := float64(g.cfg.Window.Height)

	// Player stands centred on the floor.
	ps := g.cfg.Player
	g.playerSheet = sheetFor(ps)
	g.groundY = winH - ps.FrameHeight
	g.player = engine.NewAnimatedSprite(ps.FrameWidth, ps.FrameHeight,
		core.Vec2{X: winW/2 - ps.FrameWidth/2, Y: g.groundY}, ps.FrameInterval)
	g.body = engine.NewBody(g.cfg.Physics.Gravity, g.cfg.Physics.JumpImpulse)

	// Obstacles queue up off the right edge.
	oc := g.cfg.Obstacles
	g.obstacleSheet = sheetFor(oc.Sheet)
	rng := rand.New(rand.NewSource(runtime.Seed))
	count := core.Max(oc.Count, 1)
	g.obstacles = make([]engine.AnimatedSprite, count)
	g.cleared = make([]bool, count)
	x := winW
	for i := range g.obstacles {
		if i > 0 {
			x += oc.Spacing + jitter(rng, oc.Jitter)
		}
		g.obstacles[i] = engine.NewAnimatedSprite(oc.Sheet.FrameWidth, oc.Sheet.FrameHeight,
			core.Vec2{X: x, Y: winH - oc.Sheet.FrameHeight}, oc.Sheet.FrameInterval)
	}
	g.finishLine = g.obstacles[count-1].Pos.X

	g.detector = engine.NewDetector(oc.Padding)

	g.layers = g.layers[:0]
	for _, l := range g.cfg.Parallax {
		g.layers = append(g.layers, engine.Layer{Speed: l.Speed, Width: l.Width, Scale: l.Scale})
	}

	g.outcome = core.OutcomeRunning
	g.paused = false
	g.score = 0
	g.survived = 0
	g.tickCount = 0
}

// Step advances the session by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.outcome != core.OutcomeRunning {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := g.dt
	g.tickCount++
	g.survived += dt

	for i := range g.layers {
		g.layers[i].Scroll(dt)
	}

	// Physics, then the running animation while on the ground only.
	g.body.Step(&g.player.Pos, g.groundY, dt, in.Has(core.ActionJump))
	if !g.body.Airborne {
		engine.Animate(&g.player, dt, g.playerSheet)
	}

	velocity := -g.difficulty.Speed(g.cfg.Physics.ScrollSpeed, g.score, g.survived)
	if g.cfg.Variant.FinishLine {
		g.finishLine += velocity * dt
	}

	hit := g.detector.Check(&g.player, g.obstacles)

	for i := range g.obstacles {
		ob := &g.obstacles[i]
		ob.Pos.X += velocity * dt
		engine.Animate(ob, dt, g.obstacleSheet)

		if !g.cleared[i] && ob.Bounds().Right() < g.player.Pos.X {
			g.cleared[i] = true
			g.score++
		}
		if g.cfg.Variant.Recycle && ob.Bounds().Right() < 0 {
			g.recycle(i)
		}
	}

	switch {
	case hit:
		g.outcome = core.OutcomeLost
	case g.cfg.Variant.FinishLine && g.player.Pos.X > g.finishLine:
		g.outcome = core.OutcomeWon
	}

	return core.StepResult{State: g.State()}
}

// recycle moves obstacle i behind the rightmost one.
func (g *Game) recycle(i int) {
	rightmost := g.obstacles[0].Pos.X
	for j := range g.obstacles {
		if g.obstacles[j].Pos.X > rightmost {
			rightmost = g.obstacles[j].Pos.X
		}
	}
	next := rightmost + g.cfg.Obstacles.Spacing
	if edge := float64(g.cfg.Window.Width); next < edge {
		next = edge
	}
	g.obstacles[i].Pos.X = next
	g.cleared[i] = false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Outcome:  g.outcome,
		Paused:   g.paused,
		Survived: g.survived,
	}
}

func sheetFor(s config.SheetConfig) engine.Sheet {
	return engine.Sheet{
		Rows:        s.Rows,
		Cols:        s.Cols,
		RowDivisor:  s.RowDivisor,
		TerminalRow: s.TerminalRow,
		TerminalCol: s.TerminalCol,
	}
}

func jitter(rng *rand.Rand, spread float64) float64 {
	if spread <= 0 {
		return 0
	}
	return rng.Float64() * spread
}
