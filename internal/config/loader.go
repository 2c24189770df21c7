package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is the project-relative config location.
const LocalPath = "configs/fruity.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.fruity/config.yaml -> ./configs/fruity.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (FruityConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FruityConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return FruityConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(LocalPath); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultFruityYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data over the hardcoded defaults and validates the result.
func parse(data []byte) (FruityConfig, error) {
	cfg := DefaultConfig()
	// A file that lists its own catalog replaces the default one rather than merging
	cfg.Board.Catalog = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FruityConfig{}, err
	}
	if len(cfg.Board.Catalog) == 0 {
		cfg.Board.Catalog = DefaultConfig().Board.Catalog
	}
	if err := cfg.Validate(); err != nil {
		return FruityConfig{}, err
	}
	return cfg, nil
}

// Validate checks values that would make the game unplayable.
func (c FruityConfig) Validate() error {
	if c.Timing.TickInterval <= 0 {
		return fmt.Errorf("timing.tick_interval must be positive, got %s", c.Timing.TickInterval)
	}
	if c.Timing.SettleDelay < 0 {
		return fmt.Errorf("timing.settle_delay must not be negative, got %s", c.Timing.SettleDelay)
	}
	switch c.Leaderboard.Backend {
	case "", "sqlite", "file", "memory":
	default:
		return fmt.Errorf("leaderboard.backend %q is not one of sqlite, file, memory", c.Leaderboard.Backend)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fruity", filename)
}
