// Package window runs Dapper Dasher in a desktop window with Ebitengine.
package window

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/dapper-dasher/internal/config"
	"github.com/vovakirdan/dapper-dasher/internal/core"
	"github.com/vovakirdan/dapper-dasher/internal/engine"
	"github.com/vovakirdan/dapper-dasher/internal/games/dasher"
	"github.com/vovakirdan/dapper-dasher/internal/platform"
	"github.com/vovakirdan/dapper-dasher/internal/storage"
)

const (
	statusFontSize = 36
	hudFontSize    = 16
)

// Options configures a window session.
type Options struct {
	Config    config.DasherConfig
	VariantID string
	AssetsDir string
	WatchPath string // Config file to hot-reload, empty disables
	Preset    config.DifficultyPreset
	Runtime   core.RuntimeConfig
	Store     *storage.Store
	Logger    *log.Logger
}

// Game adapts a dasher session to ebiten.Game.
type Game struct {
	session  *dasher.Game
	variant  config.VariantConfig
	runtime  core.RuntimeConfig
	assets   *Assets
	recorder *platform.Recorder
	logger   *log.Logger
	watcher  *config.Watcher
	pending  *config.DasherConfig // Reloaded config waiting for a restart
	reseed   bool                 // Fresh seed on every restart

	statusFace *text.GoTextFace
	hudFace    *text.GoTextFace
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	variant, ok := opts.Config.Variant(opts.VariantID)
	if !ok {
		return fmt.Errorf("window: unknown variant %q", opts.VariantID)
	}

	assets, err := LoadAssets(opts.AssetsDir, opts.Config)
	if err != nil {
		return err
	}
	defer assets.Deallocate()
	logger.Info("assets loaded", "dir", opts.AssetsDir, "layers", len(assets.Layers))

	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("window: load font: %w", err)
	}

	g := &Game{
		variant:    variant,
		runtime:    opts.Runtime,
		reseed:     opts.Runtime.Seed == 0,
		assets:     assets,
		recorder:   platform.NewRecorder(opts.Store, logger),
		logger:     logger,
		statusFace: &text.GoTextFace{Source: source, Size: statusFontSize},
		hudFace:    &text.GoTextFace{Source: source, Size: hudFontSize},
	}
	g.session = dasher.New(g.resolve(opts.Config))

	if opts.WatchPath != "" {
		w, err := config.NewWatcher(opts.WatchPath, opts.Preset)
		if err != nil {
			logger.Warn("config watch disabled", "path", opts.WatchPath, "error", err)
		} else {
			g.watcher = w
			defer w.Close()
			logger.Info("watching config", "path", opts.WatchPath)
		}
	}

	g.restart()

	win := g.session.Config().Window
	ebiten.SetWindowSize(win.Width, win.Height)
	ebiten.SetWindowTitle(win.Title)
	ebiten.SetTPS(opts.Runtime.TickRate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// resolve calibrates cfg against the loaded textures and picks the variant.
func (g *Game) resolve(cfg config.DasherConfig) config.Resolved {
	cfg = platform.Calibrate(cfg, g.assets.Sizes())
	if v, ok := cfg.Variant(g.variant.ID); ok {
		g.variant = v
	}
	return cfg.Resolve(g.variant)
}

func (g *Game) restart() {
	if g.pending != nil {
		g.session.Reconfigure(g.resolve(*g.pending))
		g.pending = nil
		win := g.session.Config().Window
		ebiten.SetWindowSize(win.Width, win.Height)
		g.logger.Info("config reloaded", "variant", g.variant.ID)
	}
	if g.reseed {
		g.runtime.Seed = time.Now().UnixNano()
	}
	g.session.Reset(g.runtime)
	g.recorder.Begin()
}

// pollWatcher picks up reloaded configs without blocking the frame.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case cfg := <-g.watcher.Configs:
		g.pending = &cfg
		g.logger.Info("config change detected, applies on restart")
	case err := <-g.watcher.Errors:
		g.logger.Warn("config reload failed", "error", err)
	default:
	}
}

// Update advances the simulation by one tick.
func (g *Game) Update() error {
	g.pollWatcher()

	state := g.session.State()
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.recorder.Quit(g.session.ID(), state)
		return ebiten.Termination
	}
	if state.GameOver() {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.restart()
		}
		return nil
	}

	result := g.session.Step(readInput(inpututil.IsKeyJustPressed))
	g.recorder.Finish(g.session.ID(), result.State)
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	snap := g.session.Snapshot()
	g.drawLayers(screen, snap.Layers)

	win := g.session.Config().Window
	switch snap.State.Outcome {
	case core.OutcomeLost:
		g.drawStatus(screen, dasher.TextGameOver, colornames.Red, win)
	case core.OutcomeWon:
		g.drawStatus(screen, dasher.TextYouWin, colornames.Green, win)
	default:
		for i := range snap.Obstacles {
			drawSprite(screen, g.assets.Obstacle, &snap.Obstacles[i])
		}
		drawSprite(screen, g.assets.Player, &snap.Player)
	}

	g.drawHUD(screen, snap.State)
}

func (g *Game) drawLayers(screen *ebiten.Image, layers []engine.Layer) {
	for i, layer := range layers {
		if i >= len(g.assets.Layers) {
			return
		}
		first, second := layer.Offsets()
		for _, x := range []float64{first, second} {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(layer.Scale, layer.Scale)
			op.GeoM.Translate(x, 0)
			screen.DrawImage(g.assets.Layers[i], op)
		}
	}
}

// drawSprite draws the sheet cell selected by the sprite's frame.
func drawSprite(screen, sheet *ebiten.Image, s *engine.AnimatedSprite) {
	src := image.Rect(
		int(s.Frame.X), int(s.Frame.Y),
		int(s.Frame.Right()), int(s.Frame.Bottom()),
	)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(s.Pos.X, s.Pos.Y)
	screen.DrawImage(sheet.SubImage(src).(*ebiten.Image), op)
}

func (g *Game) drawStatus(screen *ebiten.Image, msg string, clr color.Color, win config.WindowConfig) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(win.Width)/3, float64(win.Height)/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, msg, g.statusFace, op)
}

func (g *Game) drawHUD(screen *ebiten.Image, st core.GameState) {
	hud := fmt.Sprintf("Score: %d", st.Score)
	switch {
	case st.Paused:
		hud += "   PAUSED"
	case st.GameOver():
		hud += "   R: restart   Esc: quit"
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 6)
	op.ColorScale.ScaleWithColor(colornames.Black)
	text.Draw(screen, hud, g.hudFace, op)
}

// Layout fixes the logical screen to the variant's window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	win := g.session.Config().Window
	return win.Width, win.Height
}
