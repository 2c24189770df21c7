// Package config provides YAML-based configuration loading for Fruity Match.
package config

import "time"

// FruityConfig contains all configuration for the game and its hosts.
type FruityConfig struct {
	Timing      TimingConfig      `yaml:"timing"`
	Board       BoardConfig       `yaml:"board"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	Server      ServerConfig      `yaml:"server"`
}

// TimingConfig defines the countdown and mismatch pacing.
type TimingConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"` // One countdown second
	SettleDelay  time.Duration `yaml:"settle_delay"`  // How long a mismatch stays face up
}

// BoardConfig defines the fruit catalog and how fruits are drawn.
type BoardConfig struct {
	Catalog []string          `yaml:"catalog"`
	Emoji   map[string]string `yaml:"emoji"` // Fruit name -> glyph shown on a face-up tile
}

// LeaderboardConfig defines where the leaderboard is persisted.
type LeaderboardConfig struct {
	Backend string `yaml:"backend"` // "sqlite", "file" or "memory"
	Path    string `yaml:"path"`    // Database file or directory, depending on backend
	Key     string `yaml:"key"`
}

// ServerConfig defines the listen addresses for `fruity serve`.
type ServerConfig struct {
	SSHAddr     string        `yaml:"ssh_addr"`
	HTTPAddr    string        `yaml:"http_addr"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Glyph returns the display glyph for a fruit, or the fruit name itself.
func (b BoardConfig) Glyph(fruit string) string {
	if g, ok := b.Emoji[fruit]; ok && g != "" {
		return g
	}
	return fruit
}
