package platform

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/dapper-dasher/internal/config"
)

func TestCalibrate(t *testing.T) {
	cfg := config.DefaultDasherConfig()
	sizes := TextureSizes{
		Player:   image.Pt(768, 128),
		Obstacle: image.Pt(800, 800),
		Layers:   []image.Point{image.Pt(256, 192), image.Pt(300, 192)},
	}

	got := Calibrate(cfg, sizes)

	if got.Player.FrameWidth != 128 || got.Player.FrameHeight != 128 {
		t.Errorf("player frame = %vx%v, want 128x128", got.Player.FrameWidth, got.Player.FrameHeight)
	}
	if got.Obstacles.Sheet.FrameWidth != 100 || got.Obstacles.Sheet.FrameHeight != 100 {
		t.Errorf("obstacle frame = %vx%v, want 100x100",
			got.Obstacles.Sheet.FrameWidth, got.Obstacles.Sheet.FrameHeight)
	}
	if got.Parallax[1].Width != 300 {
		t.Errorf("layer 1 width = %v, want 300", got.Parallax[1].Width)
	}
	// No size known for the third layer: config value stays.
	if got.Parallax[2].Width != cfg.Parallax[2].Width {
		t.Errorf("layer 2 width = %v, want %v", got.Parallax[2].Width, cfg.Parallax[2].Width)
	}
	// The input config is not modified.
	if cfg.Parallax[1].Width != 256 {
		t.Errorf("Calibrate mutated its input: %v", cfg.Parallax[1].Width)
	}
}

func TestCalibrateIgnoresEmptySizes(t *testing.T) {
	cfg := config.DefaultDasherConfig()
	got := Calibrate(cfg, TextureSizes{})
	if got.Player != cfg.Player || got.Obstacles != cfg.Obstacles {
		t.Error("zero sizes should leave frames unchanged")
	}
}

func TestTexturePaths(t *testing.T) {
	cfg := config.DefaultDasherConfig()
	player, obstacle, layers := TexturePaths("assets", cfg)

	if player != filepath.Join("assets", "scarfy.png") {
		t.Errorf("player = %q", player)
	}
	if obstacle != filepath.Join("assets", "12_nebula_spritesheet.png") {
		t.Errorf("obstacle = %q", obstacle)
	}
	if len(layers) != 3 || layers[2] != filepath.Join("assets", "foreground.png") {
		t.Errorf("layers = %v", layers)
	}
}
