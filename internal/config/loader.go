package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the user and local directories.
const FileName = "dasher.yaml"

// Load loads the dasher configuration.
// Search order: customPath -> ~/.dasher/configs/dasher.yaml -> ./configs/dasher.yaml -> embedded default
func Load(customPath string) (DasherConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(FileName); userCfgPath != "" {
		if cfg, err := LoadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := LoadFile(filepath.Join("configs", FileName)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultDasherYAML)
	if err != nil {
		return DefaultDasherConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads, parses and validates one YAML file.
func LoadFile(path string) (DasherConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DasherConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so a file only needs
// the keys it changes, then validates the result.
func Parse(data []byte) (DasherConfig, error) {
	cfg := DefaultDasherConfig()
	// Lists replace rather than merge.
	cfg.Variants = nil
	cfg.Parallax = nil

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(cfg.Variants) == 0 {
		cfg.Variants = DefaultDasherConfig().Variants
	}
	if cfg.Parallax == nil {
		cfg.Parallax = DefaultDasherConfig().Parallax
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// UserConfigPath returns the path to a user config file, or empty if home is unavailable.
func UserConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dasher", "configs", filename)
}

// Source returns the file Load would try first: customPath if set, else the
// first candidate that exists. Empty means the embedded default is used.
func Source(customPath string) string {
	if customPath != "" {
		return customPath
	}
	candidates := []string{UserConfigPath(FileName), filepath.Join("configs", FileName)}
	for _, p := range candidates {
		if p == "" {
			continue
		}
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}
