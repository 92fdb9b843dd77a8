package dasher

import (
	"strings"
	"testing"

	"github.com/vovakirdan/dapper-dasher/internal/config"
	"github.com/vovakirdan/dapper-dasher/internal/core"
	"github.com/vovakirdan/dapper-dasher/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(t *testing.T, id string) *Game {
	t.Helper()
	g, ok := NewVariant(config.DefaultDasherConfig(), id)
	if !ok {
		t.Fatalf("variant %q not found", id)
	}
	g.Reset(testRuntime(1))
	return g
}

func jumpInput() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}

// liftObstacles moves every obstacle far above the player so nothing can hit.
func liftObstacles(g *Game) {
	for i := range g.obstacles {
		g.obstacles[i].Pos.Y = -1000
	}
}

func TestResetPlacement(t *testing.T) {
	g := newTestGame(t, "dasher")

	if g.player.Pos.X != 192 || g.player.Pos.Y != 252 {
		t.Errorf("player at (%v,%v), want (192,252)", g.player.Pos.X, g.player.Pos.Y)
	}
	if len(g.obstacles) != 10 {
		t.Fatalf("got %d obstacles, want 10", len(g.obstacles))
	}
	for i, ob := range g.obstacles {
		wantX := 512 + float64(i)*300
		if ob.Pos.X != wantX || ob.Pos.Y != 280 {
			t.Errorf("obstacle %d at (%v,%v), want (%v,280)", i, ob.Pos.X, ob.Pos.Y, wantX)
		}
	}
	if g.finishLine != g.obstacles[9].Pos.X {
		t.Errorf("finish line = %v, want last obstacle x %v", g.finishLine, g.obstacles[9].Pos.X)
	}
	if g.State().Outcome != core.OutcomeRunning {
		t.Errorf("outcome = %v, want running", g.State().Outcome)
	}
}

func TestResetClearsState(t *testing.T) {
	g := newTestGame(t, "dasher")
	for i := 0; i < 200; i++ {
		g.Step(core.NewInputFrame())
	}
	if !g.State().GameOver() {
		t.Fatal("expected the run to be over after 200 idle frames")
	}

	g.Reset(testRuntime(1))

	if g.score != 0 || g.tickCount != 0 || g.survived != 0 {
		t.Errorf("Reset left score=%d ticks=%d survived=%v", g.score, g.tickCount, g.survived)
	}
	if g.outcome != core.OutcomeRunning || g.paused {
		t.Errorf("Reset left outcome=%v paused=%v", g.outcome, g.paused)
	}
	if g.detector.Hit() {
		t.Error("Reset should clear the collision flag")
	}
}

func TestJumpFromGround(t *testing.T) {
	g := newTestGame(t, "dasher")

	g.Step(jumpInput())

	if g.body.Velocity != -600 {
		t.Errorf("velocity after jump = %v, want -600", g.body.Velocity)
	}
	if g.player.Pos.Y != 242 {
		t.Errorf("y after jump frame = %v, want 242", g.player.Pos.Y)
	}

	// Second request mid-air adds nothing.
	g.Step(jumpInput())
	want := -600 + 1000*g.dt
	if g.body.Velocity != want {
		t.Errorf("velocity after airborne jump = %v, want %v", g.body.Velocity, want)
	}
	if !g.body.Airborne {
		t.Error("player should be airborne")
	}
}

func TestPlayerAnimationFreezesAirborne(t *testing.T) {
	g := newTestGame(t, "dasher")

	g.Step(jumpInput())
	g.Step(core.NewInputFrame())
	frame, index := g.player.Frame, g.player.Index

	for i := 0; i < 20; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.player.Frame != frame || g.player.Index != index {
		t.Errorf("airborne player animated: frame %v->%v index %d->%d",
			frame, g.player.Frame, index, g.player.Index)
	}
}

func TestPlayerAnimatesOnGround(t *testing.T) {
	g := newTestGame(t, "dasher")
	liftObstacles(g)

	// 1/12 s at 60 Hz is five frames.
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.player.Index != 1 {
		t.Errorf("Index = %d after one interval, want 1", g.player.Index)
	}
}

func TestCollisionLoses(t *testing.T) {
	g := newTestGame(t, "dasher")

	frames := 0
	for !g.State().GameOver() && frames < 200 {
		g.Step(core.NewInputFrame())
		frames++
	}
	if g.State().Outcome != core.OutcomeLost {
		t.Fatalf("outcome = %v, want lost", g.State().Outcome)
	}
	// Hit-box point reaches the player's right edge (x=320) after 242px.
	if frames < 70 || frames > 76 {
		t.Errorf("collision after %d frames, want about 73", frames)
	}
}

func TestTerminalStepIsNoop(t *testing.T) {
	g := newTestGame(t, "dasher")
	for !g.State().GameOver() {
		g.Step(core.NewInputFrame())
	}

	pos := g.player.Pos
	ticks := g.tickCount
	obX := g.obstacles[0].Pos.X
	for i := 0; i < 10; i++ {
		g.Step(jumpInput())
	}

	if g.player.Pos != pos || g.tickCount != ticks || g.obstacles[0].Pos.X != obX {
		t.Error("Step after game over should not change state")
	}
	if g.State().Outcome != core.OutcomeLost {
		t.Errorf("outcome changed to %v", g.State().Outcome)
	}
}

func TestFinishLineWins(t *testing.T) {
	g := newTestGame(t, "dasher")
	liftObstacles(g)

	for i := 0; i < 2000 && !g.State().GameOver(); i++ {
		g.Step(core.NewInputFrame())
	}

	st := g.State()
	if st.Outcome != core.OutcomeWon {
		t.Fatalf("outcome = %v, want won", st.Outcome)
	}
	if st.Score != 9 {
		t.Errorf("score at finish = %d, want 9", st.Score)
	}
	if g.player.Pos.X <= g.finishLine {
		t.Errorf("finish line %v not behind player %v", g.finishLine, g.player.Pos.X)
	}
}

func TestNoFinishLineKeepsRunning(t *testing.T) {
	g := newTestGame(t, "dasher-pair")
	liftObstacles(g)

	for i := 0; i < 2000; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.State().Outcome != core.OutcomeRunning {
		t.Errorf("outcome = %v, want running", g.State().Outcome)
	}
	if g.State().Score != 2 {
		t.Errorf("score = %d, want 2", g.State().Score)
	}
}

func TestEndlessRecyclesObstacle(t *testing.T) {
	g := newTestGame(t, "dasher-endless")
	liftObstacles(g)

	for i := 0; i < 400; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.State().Score != 2 {
		t.Errorf("score = %d, want 2", g.State().Score)
	}
	if g.obstacles[0].Pos.X < -100 {
		t.Errorf("obstacle at %v was not recycled", g.obstacles[0].Pos.X)
	}
}

func TestJitterIsSeeded(t *testing.T) {
	cfg := config.DefaultDasherConfig()
	cfg.Obstacles.Jitter = 100

	positions := func(seed int64) []float64 {
		g, _ := NewVariant(cfg, "dasher")
		g.Reset(testRuntime(seed))
		xs := make([]float64, len(g.obstacles))
		for i, ob := range g.obstacles {
			xs[i] = ob.Pos.X
		}
		return xs
	}

	a, b, c := positions(7), positions(7), positions(8)
	same := true
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seed 7 gave different positions at %d: %v vs %v", i, a[i], b[i])
		}
		if a[i] != c[i] {
			same = false
		}
		if i > 0 {
			gap := a[i] - a[i-1]
			if gap < 300 || gap >= 400 {
				t.Errorf("gap %d = %v, want [300,400)", i, gap)
			}
		}
	}
	if same {
		t.Error("different seeds produced identical layouts")
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, "dasher")
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	x := g.obstacles[0].Pos.X
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.obstacles[0].Pos.X != x || g.tickCount != 0 {
		t.Error("paused game advanced")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("expected unpaused")
	}
	if g.tickCount != 1 {
		t.Errorf("tickCount = %d, want 1", g.tickCount)
	}
}

func TestParallaxScrolls(t *testing.T) {
	g := newTestGame(t, "dasher")
	liftObstacles(g)

	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}
	if len(g.layers) != 3 {
		t.Fatalf("got %d layers, want 3", len(g.layers))
	}
	for i, l := range g.layers {
		if l.X >= 0 {
			t.Errorf("layer %d did not scroll: X=%v", i, l.X)
		}
	}
	if !(g.layers[0].X > g.layers[2].X) {
		t.Errorf("far layer should trail the foreground: %v vs %v", g.layers[0].X, g.layers[2].X)
	}
}

func findText(s *core.Screen, text string) (x, y int, ok bool) {
	for row := 0; row < s.Height(); row++ {
		if i := strings.Index(s.Row(row), text); i >= 0 {
			return len([]rune(s.Row(row)[:i])), row, true
		}
	}
	return 0, 0, false
}

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game)
		text  string
		color core.Color
	}{
		{
			name:  "hud",
			setup: func(g *Game) {},
			text:  "Score: 0",
			color: core.ColorDefault,
		},
		{
			name: "game over",
			setup: func(g *Game) {
				for !g.State().GameOver() {
					g.Step(core.NewInputFrame())
				}
			},
			text:  TextGameOver,
			color: core.ColorRed,
		},
		{
			name: "win",
			setup: func(g *Game) {
				liftObstacles(g)
				for !g.State().GameOver() {
					g.Step(core.NewInputFrame())
				}
			},
			text:  TextYouWin,
			color: core.ColorGreen,
		},
		{
			name: "paused",
			setup: func(g *Game) {
				in := core.NewInputFrame()
				in.Set(core.ActionPause)
				g.Step(in)
			},
			text:  "PAUSED",
			color: core.ColorYellow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, "dasher")
			tt.setup(g)

			screen := core.NewScreen(80, 24)
			g.Render(screen)

			x, y, ok := findText(screen, tt.text)
			if !ok {
				t.Fatalf("%q not rendered:\n%s", tt.text, screen.String())
			}
			if c := screen.GetCell(x, y).Color; c != tt.color {
				t.Errorf("%q color = %v, want %v", tt.text, c, tt.color)
			}
		})
	}
}

func TestRenderHidesEntitiesAfterLoss(t *testing.T) {
	g := newTestGame(t, "dasher")
	for !g.State().GameOver() {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if strings.ContainsRune(screen.String(), PlayerBody) {
		t.Error("player should not be drawn after a collision")
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := newTestGame(t, "dasher")
	screen := core.NewScreen(10, 2)
	g.Render(screen)
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t, "dasher")
	g.Step(jumpInput())
	g.Step(core.NewInputFrame())

	snap := g.Snapshot()
	if !snap.Airborne {
		t.Error("snapshot should report airborne player")
	}
	if len(snap.Obstacles) != 10 || len(snap.Layers) != 3 {
		t.Errorf("snapshot has %d obstacles, %d layers", len(snap.Obstacles), len(snap.Layers))
	}
	if !snap.HasFinish || snap.FinishLine != g.finishLine {
		t.Errorf("snapshot finish = %v/%v", snap.HasFinish, snap.FinishLine)
	}
	if snap.State != g.State() {
		t.Error("snapshot state mismatch")
	}
}

func TestRegisterVariants(t *testing.T) {
	cfg := config.DefaultDasherConfig()
	ids := RegisterVariants(cfg)
	t.Cleanup(func() {
		for _, id := range ids {
			registry.Unregister(id)
		}
	})

	want := []string{"dasher", "dasher-endless", "dasher-pair", "dasher-gauntlet"}
	if len(ids) != len(want) {
		t.Fatalf("registered %v, want %v", ids, want)
	}
	for i, id := range want {
		if ids[i] != id {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], id)
		}
		if !registry.Exists(id) {
			t.Errorf("%q not in registry", id)
		}
	}

	game, err := registry.Create("dasher-gauntlet")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	g := game.(*Game)
	g.Reset(testRuntime(1))
	if g.cfg.Window.Width != 800 || g.cfg.Window.Height != 450 {
		t.Errorf("gauntlet window = %dx%d, want 800x450", g.cfg.Window.Width, g.cfg.Window.Height)
	}
	if len(g.obstacles) != 6 {
		t.Errorf("gauntlet has %d obstacles, want 6", len(g.obstacles))
	}
	if g.Title() != "Dapper Dasher: Gauntlet" {
		t.Errorf("Title() = %q", g.Title())
	}
}
