package platform

import (
	"image"
	"path/filepath"

	"github.com/vovakirdan/dapper-dasher/internal/config"
)

// TextureSizes holds the pixel dimensions of every loaded texture.
type TextureSizes struct {
	Player   image.Point
	Obstacle image.Point
	Layers   []image.Point
}

// TexturePaths lists the texture files cfg refers to, resolved against dir.
func TexturePaths(dir string, cfg config.DasherConfig) (player, obstacle string, layers []string) {
	player = filepath.Join(dir, cfg.Player.Texture)
	obstacle = filepath.Join(dir, cfg.Obstacles.Sheet.Texture)
	for _, l := range cfg.Parallax {
		layers = append(layers, filepath.Join(dir, l.Texture))
	}
	return player, obstacle, layers
}

// Calibrate derives frame and layer sizes from the real textures so the
// simulation matches what is drawn. Frame size is texture size divided by
// the sheet's grid.
func Calibrate(cfg config.DasherConfig, sizes TextureSizes) config.DasherConfig {
	cfg.Player = calibrateSheet(cfg.Player, sizes.Player)
	cfg.Obstacles.Sheet = calibrateSheet(cfg.Obstacles.Sheet, sizes.Obstacle)

	layers := make([]config.LayerConfig, len(cfg.Parallax))
	copy(layers, cfg.Parallax)
	for i := range layers {
		if i < len(sizes.Layers) && sizes.Layers[i].X > 0 {
			layers[i].Width = float64(sizes.Layers[i].X)
			layers[i].Height = float64(sizes.Layers[i].Y)
		}
	}
	cfg.Parallax = layers
	return cfg
}

func calibrateSheet(s config.SheetConfig, size image.Point) config.SheetConfig {
	if size.X <= 0 || size.Y <= 0 || s.Cols <= 0 || s.Rows <= 0 {
		return s
	}
	s.FrameWidth = float64(size.X) / float64(s.Cols)
	s.FrameHeight = float64(size.Y) / float64(s.Rows)
	return s
}
