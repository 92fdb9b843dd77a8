package window

import (
	"fmt"
	"image"
	_ "image/png" // PNG decoder for sprite sheets
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/dapper-dasher/internal/config"
	"github.com/vovakirdan/dapper-dasher/internal/platform"
)

// Assets holds every texture a session draws.
type Assets struct {
	Player   *ebiten.Image
	Obstacle *ebiten.Image
	Layers   []*ebiten.Image
}

// LoadAssets reads the textures named in cfg from dir. Any failure is
// returned; the caller treats it as fatal.
func LoadAssets(dir string, cfg config.DasherConfig) (*Assets, error) {
	playerPath, obstaclePath, layerPaths := platform.TexturePaths(dir, cfg)

	a := &Assets{}
	var err error
	if a.Player, err = loadImage(playerPath); err != nil {
		return nil, err
	}
	if a.Obstacle, err = loadImage(obstaclePath); err != nil {
		a.Deallocate()
		return nil, err
	}
	for _, p := range layerPaths {
		img, err := loadImage(p)
		if err != nil {
			a.Deallocate()
			return nil, err
		}
		a.Layers = append(a.Layers, img)
	}
	return a, nil
}

// Sizes reports texture dimensions for platform.Calibrate.
func (a *Assets) Sizes() platform.TextureSizes {
	sizes := platform.TextureSizes{
		Player:   a.Player.Bounds().Size(),
		Obstacle: a.Obstacle.Bounds().Size(),
	}
	for _, l := range a.Layers {
		sizes.Layers = append(sizes.Layers, l.Bounds().Size())
	}
	return sizes
}

// Deallocate releases GPU memory held by the textures.
func (a *Assets) Deallocate() {
	for _, img := range append([]*ebiten.Image{a.Player, a.Obstacle}, a.Layers...) {
		if img != nil {
			img.Deallocate()
		}
	}
}

func loadImage(path string) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("window: open texture: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("window: decode texture %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}
