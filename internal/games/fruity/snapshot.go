package fruity

import "github.com/daylonsoh/fruity-match-game/internal/leaderboard"

// Snapshot is a point-in-time copy of a session for rendering.
// Nothing in it aliases controller memory.
type Snapshot struct {
	SessionState
	Config      LevelConfig
	Board       Board
	Leaderboard leaderboard.Board
	Qualifies   bool   // Whether the current score would make the leaderboard
	Generation  uint64 // Changes whenever a board is replaced or play stops
}

// Snapshot returns the current session state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := c.state
	state.FlippedTiles = c.flippedTilesLocked()

	snap := Snapshot{
		SessionState: state,
		Config:       c.rules,
		Board:        c.board.Clone(),
		Generation:   c.generation,
	}
	if c.lb != nil {
		snap.Leaderboard = c.lb.Board()
		snap.Qualifies = c.lb.Qualifies(c.state.Score)
	} else {
		snap.Leaderboard = leaderboard.Board{}
		snap.Qualifies = true
	}
	return snap
}

// State returns the current phase.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.State
}
