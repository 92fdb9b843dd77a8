package dasher

import (
	"fmt"

	"github.com/vovakirdan/dapper-dasher/internal/core"
	"github.com/vovakirdan/dapper-dasher/internal/engine"
)

// Glyphs for the terminal rendition.
const (
	PlayerBody = '█'
	PlayerHead = '▄'
	PlayerLeg1 = '╱'
	PlayerLeg2 = '╲'
	GroundChar = '═'
	FinishChar = '▌'
)

// Status messages, shared with the window renderer.
const (
	TextGameOver = "Game Over!"
	TextYouWin   = "You Win!"
)

var (
	nebulaGlyphs = []rune{'@', '%', '&', '#'}
	layerGlyphs  = []rune{'░', '▒', '▓'}
	layerColors  = []core.Color{core.ColorGray, core.ColorBlue, core.ColorCyan}
)

// viewport maps world pixels onto screen cells. Row 0 is the HUD and the
// last row is the ground line; the world occupies everything in between.
type viewport struct {
	sx, sy float64
	top    int
	ground int
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	rows := core.Max(dst.Height()-2, 1)
	return viewport{
		sx:     float64(dst.Width()) / worldW,
		sy:     float64(rows) / worldH,
		top:    1,
		ground: dst.Height() - 1,
	}
}

func (v viewport) col(x float64) int { return int(x * v.sx) }
func (v viewport) row(y float64) int { return v.top + int(y*v.sy) }

// cells converts a world rectangle to a cell rectangle at least 1x1.
func (v viewport) cells(r core.Rect) (x, y, w, h int) {
	x, y = v.col(r.X), v.row(r.Y)
	w = core.Max(v.col(r.Right())-x, 1)
	h = core.Max(v.row(r.Bottom())-y, 1)
	if y+h > v.ground {
		h = core.Max(v.ground-y, 1)
	}
	return x, y, w, h
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() < 3 {
		return
	}

	vp := newViewport(dst, float64(g.cfg.Window.Width), float64(g.cfg.Window.Height))

	for i := range g.layers {
		g.drawLayer(dst, vp, i)
	}
	dst.DrawHLine(0, vp.ground, dst.Width(), GroundChar, core.ColorDefault)

	// Moving entities disappear once the run is decided.
	if g.outcome == core.OutcomeRunning {
		if g.cfg.Variant.FinishLine {
			g.drawFinish(dst, vp)
		}
		for i := range g.obstacles {
			g.drawObstacle(dst, vp, &g.obstacles[i])
		}
		g.drawPlayer(dst, vp)
	}

	g.drawHUD(dst)

	switch {
	case g.outcome == core.OutcomeLost:
		drawMessage(dst, TextGameOver, core.ColorRed, g.restartHint())
	case g.outcome == core.OutcomeWon:
		drawMessage(dst, TextYouWin, core.ColorGreen, g.restartHint())
	case g.paused:
		drawMessage(dst, "PAUSED", core.ColorYellow, "Press P to resume")
	}
}

func (g *Game) restartHint() string {
	return fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))

	right := fmt.Sprintf(" %.1fs ", g.survived)
	if g.difficulty != nil && g.difficulty.IsEnabled() {
		speed := g.difficulty.Speed(g.cfg.Physics.ScrollSpeed, g.score, g.survived)
		right = fmt.Sprintf(" Spd: %.0f %s", speed, right)
	}
	dst.DrawText(dst.Width()-len([]rune(right))-2, 0, right)
}

// drawLayer draws a parallax layer as a band of buildings. Farther layers
// are taller and scroll slower, so nearer ones overdraw them.
func (g *Game) drawLayer(dst *core.Screen, vp viewport, i int) {
	layer := g.layers[i]
	glyph := layerGlyphs[i%len(layerGlyphs)]
	color := layerColors[i%len(layerColors)]
	period := 5 + 2*(len(g.layers)-i)
	maxH := core.Max((vp.ground-vp.top)/(i+2), 1)
	shift := int(-layer.X * vp.sx)

	for x := 0; x < dst.Width(); x++ {
		c := x + shift
		if c%period == period-1 {
			continue
		}
		h := 1 + (c/period*7+i*3)%maxH
		for dy := 1; dy <= h; dy++ {
			dst.SetColored(x, vp.ground-dy, glyph, color)
		}
	}
}

func (g *Game) drawPlayer(dst *core.Screen, vp viewport) {
	x, y, w, h := vp.cells(g.player.Bounds())

	dst.FillRect(x, y, w, h, PlayerBody, core.ColorCyan)
	dst.DrawHLine(x, y, w, PlayerHead, core.ColorCyan)
	if h < 2 {
		return
	}

	legs := y + h - 1
	dst.DrawHLine(x, legs, w, ' ', core.ColorDefault)
	switch {
	case g.body.Airborne:
		dst.SetColored(x, legs, PlayerLeg2, core.ColorCyan)
		dst.SetColored(x+w-1, legs, PlayerLeg1, core.ColorCyan)
	case playerStride(g.player)%2 == 0:
		dst.SetColored(x, legs, PlayerLeg1, core.ColorCyan)
		dst.SetColored(x+w-1, legs, PlayerLeg2, core.ColorCyan)
	default:
		dst.SetColored(x+w/2, legs, PlayerLeg1, core.ColorCyan)
		dst.SetColored(x+w-1, legs, PlayerLeg2, core.ColorCyan)
	}
}

// playerStride is the sheet column currently shown.
func playerStride(s engine.AnimatedSprite) int {
	if s.Frame.W <= 0 {
		return 0
	}
	return int(s.Frame.X / s.Frame.W)
}

func (g *Game) drawObstacle(dst *core.Screen, vp viewport, ob *engine.AnimatedSprite) {
	// Draw the padded hit-box, which is what the player has to avoid.
	x, y, w, h := vp.cells(g.detector.HitBox(ob))
	if x >= dst.Width() || x+w < 0 {
		return
	}
	glyph := nebulaGlyphs[ob.Index%len(nebulaGlyphs)]
	dst.FillRect(x, y, w, h, glyph, core.ColorMagenta)
}

func (g *Game) drawFinish(dst *core.Screen, vp viewport) {
	x := vp.col(g.finishLine)
	if x < 0 || x >= dst.Width() {
		return
	}
	for y := vp.top; y < vp.ground; y++ {
		dst.SetColored(x, y, FinishChar, core.ColorGreen)
	}
}

// drawMessage draws a boxed, coloured title with a subtitle in the centre.
func drawMessage(dst *core.Screen, title string, color core.Color, subtitle string) {
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, color)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
