package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/fruity.yaml
var defaultFruityYAML []byte

// DefaultConfig returns the hardcoded configuration used when no YAML parses.
func DefaultConfig() FruityConfig {
	return FruityConfig{
		Timing: TimingConfig{
			TickInterval: time.Second,
			SettleDelay:  time.Second,
		},
		Board: BoardConfig{
			Catalog: []string{
				"apple", "banana", "orange", "strawberry", "grape",
				"watermelon", "pineapple", "cherry", "pear", "kiwi",
				"mango", "blueberry", "peach", "lemon", "coconut",
			},
			Emoji: map[string]string{
				"apple": "🍎", "banana": "🍌", "orange": "🍊", "strawberry": "🍓",
				"grape": "🍇", "watermelon": "🍉", "pineapple": "🍍", "cherry": "🍒",
				"pear": "🍐", "kiwi": "🥝", "mango": "🥭", "blueberry": "🫐",
				"peach": "🍑", "lemon": "🍋", "coconut": "🥥",
			},
		},
		Leaderboard: LeaderboardConfig{
			Backend: "sqlite",
			Path:    "~/.fruity/fruity.db",
			Key:     "fruityMatchLeaderboard",
		},
		Server: ServerConfig{
			SSHAddr:     ":23235",
			HTTPAddr:    ":8080",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFruityYAML
}
