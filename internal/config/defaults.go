package config

import (
	_ "embed"
)

//go:embed defaults/dasher.yaml
var defaultDasherYAML []byte

// DefaultDasherConfig returns the hard-coded fallback configuration.
// It mirrors defaults/dasher.yaml.
func DefaultDasherConfig() DasherConfig {
	return DasherConfig{
		Window: WindowConfig{
			Title:  "Dapper Dasher",
			Width:  512,
			Height: 380,
		},
		Physics: PhysicsConfig{
			Gravity:     1000,
			JumpImpulse: -600,
			ScrollSpeed: 200,
		},
		Player: SheetConfig{
			Texture:       "scarfy.png",
			Rows:          1,
			Cols:          6,
			TerminalRow:   0,
			TerminalCol:   5,
			FrameWidth:    128,
			FrameHeight:   128,
			FrameInterval: 1.0 / 12.0,
		},
		Obstacles: ObstacleConfig{
			Sheet: SheetConfig{
				Texture:       "12_nebula_spritesheet.png",
				Rows:          8,
				Cols:          8,
				TerminalRow:   7,
				TerminalCol:   4,
				FrameWidth:    100,
				FrameHeight:   100,
				FrameInterval: 1.0 / 16.0,
			},
			Count:   10,
			Spacing: 300,
			Padding: 50,
		},
		Parallax: []LayerConfig{
			{Texture: "far-buildings.png", Width: 256, Height: 192, Speed: 20, Scale: 2},
			{Texture: "back-buildings.png", Width: 256, Height: 192, Speed: 40, Scale: 2},
			{Texture: "foreground.png", Width: 352, Height: 192, Speed: 80, Scale: 2},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 60,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
		Variants: []VariantConfig{
			{ID: "dasher", Title: "Dapper Dasher", Obstacles: 10, FinishLine: true},
			{ID: "dasher-endless", Title: "Dapper Dasher: Endless", Obstacles: 1, Recycle: true},
			{ID: "dasher-pair", Title: "Dapper Dasher: Pair", Obstacles: 2},
			{ID: "dasher-gauntlet", Title: "Dapper Dasher: Gauntlet", Obstacles: 6, Spacing: 260, Width: 800, Height: 450, Recycle: true},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDasherYAML
}
