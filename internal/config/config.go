// Package config provides YAML-based game configuration loading and
// difficulty management for the dasher.
package config

// DasherConfig contains all configuration for the runner and its variants.
type DasherConfig struct {
	Window     WindowConfig     `yaml:"window"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     SheetConfig      `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Parallax   []LayerConfig    `yaml:"parallax"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Variants   []VariantConfig  `yaml:"variants"`
}

// WindowConfig defines the world size in pixels and the window title.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// PhysicsConfig defines motion constants in pixels and seconds.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Downward acceleration
	JumpImpulse float64 `yaml:"jump_impulse"` // Negative = up
	ScrollSpeed float64 `yaml:"scroll_speed"` // Obstacle speed to the left
}

// SheetConfig describes one sprite sheet and how it animates.
type SheetConfig struct {
	Texture       string  `yaml:"texture"`
	Rows          int     `yaml:"rows"`
	Cols          int     `yaml:"cols"`
	RowDivisor    int     `yaml:"row_divisor"` // 0 = cols
	TerminalRow   int     `yaml:"terminal_row"`
	TerminalCol   int     `yaml:"terminal_col"`
	FrameWidth    float64 `yaml:"frame_width"`
	FrameHeight   float64 `yaml:"frame_height"`
	FrameInterval float64 `yaml:"frame_interval"` // Seconds per cell
}

// ObstacleConfig defines the obstacle sheet and layout.
type ObstacleConfig struct {
	Sheet   SheetConfig `yaml:"sheet"`
	Count   int         `yaml:"count"`
	Spacing float64     `yaml:"spacing"` // Pixels between consecutive obstacles
	Padding float64     `yaml:"padding"` // Hit-box inset on all sides
	Jitter  float64     `yaml:"jitter"`  // Random extra spacing, 0 = fixed layout
}

// LayerConfig defines one parallax background layer.
type LayerConfig struct {
	Texture string  `yaml:"texture"`
	Width   float64 `yaml:"width"`  // Source width in pixels
	Height  float64 `yaml:"height"` // Source height in pixels
	Speed   float64 `yaml:"speed"`  // Pixels per second
	Scale   float64 `yaml:"scale"`
}

// VariantConfig overrides the base config for one playable variant.
// Zero values inherit from the base.
type VariantConfig struct {
	ID         string  `yaml:"id"`
	Title      string  `yaml:"title"`
	Obstacles  int     `yaml:"obstacles"`
	Spacing    float64 `yaml:"spacing"`
	FinishLine bool    `yaml:"finish_line"`
	Recycle    bool    `yaml:"recycle"` // Respawn obstacles that leave the screen
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
}

// Resolved is the effective configuration for one variant.
type Resolved struct {
	DasherConfig
	Variant VariantConfig
}

// Resolve applies a variant's overrides on top of the base config.
func (c DasherConfig) Resolve(v VariantConfig) Resolved {
	r := Resolved{DasherConfig: c, Variant: v}
	if v.Obstacles > 0 {
		r.Obstacles.Count = v.Obstacles
	}
	if v.Spacing > 0 {
		r.Obstacles.Spacing = v.Spacing
	}
	if v.Width > 0 {
		r.Window.Width = v.Width
	}
	if v.Height > 0 {
		r.Window.Height = v.Height
	}
	r.Parallax = append([]LayerConfig(nil), c.Parallax...)
	return r
}

// Variant looks up a variant by ID.
func (c DasherConfig) Variant(id string) (VariantConfig, bool) {
	for _, v := range c.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return VariantConfig{}, false
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "score", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // Score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to scroll speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty or unknown values
// return "" so the config file decides.
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *DasherConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
