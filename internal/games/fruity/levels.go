// Package fruity implements the Fruity Match memory game: level rules, board
// generation, flip resolution and the session state machine.
// It has no UI dependencies; the platform layer drives it through Controller
// commands and reads it through snapshots.
package fruity

import (
	"errors"
	"fmt"
	"time"
)

// MaxLevel is the last level of the campaign.
const MaxLevel = 10

// ErrInvalidLevel is returned when a level outside [1, MaxLevel] is requested.
var ErrInvalidLevel = errors.New("fruity: invalid level")

// Difficulty is the display label for a level's time bracket.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// LevelConfig holds the rules derived from a level number.
type LevelConfig struct {
	Level      int
	GridSize   int // Board is GridSize x GridSize
	GroupSize  int // Tiles per matching group, also the resolution threshold
	TimeLimit  int // Seconds
	Difficulty Difficulty
}

// ResolveLevel returns the rules for the given level (1-10).
func ResolveLevel(level int) (LevelConfig, error) {
	if level < 1 || level > MaxLevel {
		return LevelConfig{}, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}

	cfg := LevelConfig{Level: level}

	if level <= 5 {
		cfg.GridSize = 2
		cfg.GroupSize = 2
	} else {
		cfg.GridSize = 3
		cfg.GroupSize = 3
	}

	switch {
	case level <= 3:
		cfg.TimeLimit = 90
		cfg.Difficulty = DifficultyEasy
	case level <= 6:
		cfg.TimeLimit = 60
		cfg.Difficulty = DifficultyMedium
	default:
		cfg.TimeLimit = 45
		cfg.Difficulty = DifficultyHard
	}

	return cfg, nil
}

// TotalTiles returns the number of cells on the board.
func (c LevelConfig) TotalTiles() int {
	return c.GridSize * c.GridSize
}

// TotalGroups returns how many matching groups the board holds.
func (c LevelConfig) TotalGroups() int {
	return c.TotalTiles() / c.GroupSize
}

// TimeLimitDuration returns the time limit as a duration.
func (c LevelConfig) TimeLimitDuration() time.Duration {
	return time.Duration(c.TimeLimit) * time.Second
}

// Describe returns a one-line summary such as "2x2 grid, match 2 tiles, 90 seconds".
func (c LevelConfig) Describe() string {
	return fmt.Sprintf("%dx%d grid, match %d tiles, %d seconds", c.GridSize, c.GridSize, c.GroupSize, c.TimeLimit)
}

// Hint returns the how-to-play line shown on the start screen.
func (c LevelConfig) Hint() string {
	if c.GroupSize == 2 {
		return "Flip two tiles at a time to find matching fruit pairs."
	}
	return "Flip three tiles at a time to find matching fruit triplets."
}

// NextLevelInfo describes the level after the given one.
// Returns an empty string after the final level.
func NextLevelInfo(level int) string {
	next, err := ResolveLevel(level + 1)
	if err != nil {
		return ""
	}
	return "Next Level: " + next.Describe()
}

// Levels returns the rules for every level in order.
func Levels() []LevelConfig {
	levels := make([]LevelConfig, 0, MaxLevel)
	for i := 1; i <= MaxLevel; i++ {
		cfg, _ := ResolveLevel(i)
		levels = append(levels, cfg)
	}
	return levels
}
