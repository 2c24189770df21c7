package fruity

// LevelScore returns the points awarded for clearing a level.
// Never negative.
func LevelScore(timeLeft, mistakes int) int {
	return max(0, timeLeft*10-mistakes*5)
}

// StarRating grades a cleared level from 1 to 3 stars.
func StarRating(timeLeft, mistakes int) int {
	switch {
	case mistakes == 0 && timeLeft > 15:
		return 3
	case mistakes <= 2 && timeLeft > 5:
		return 2
	default:
		return 1
	}
}

// sameFruit reports whether every tile shows the same fruit.
func sameFruit(tiles []Tile) bool {
	if len(tiles) == 0 {
		return false
	}
	first := tiles[0].Fruit
	for _, t := range tiles[1:] {
		if t.Fruit != first {
			return false
		}
	}
	return true
}

// flippedTilesLocked returns copies of the currently flipped tiles in flip order.
func (c *Controller) flippedTilesLocked() []Tile {
	tiles := make([]Tile, 0, len(c.flipped))
	for _, id := range c.flipped {
		if idx := c.board.Index(id); idx >= 0 {
			tiles = append(tiles, c.board[idx])
		}
	}
	return tiles
}

// resolveFlipsLocked evaluates the flipped set once it reaches the group size.
// A match is applied immediately; a mismatch is reverted after the settle delay.
func (c *Controller) resolveFlipsLocked() {
	tiles := c.flippedTilesLocked()

	if sameFruit(tiles) {
		for _, t := range tiles {
			c.board[c.board.Index(t.ID)].Matched = true
		}
		c.state.MatchedGroups++
		c.flipped = nil
		c.emitLocked(EventTileMatched, tiles[0].ID)
		c.logger.Debug("group matched", "level", c.state.CurrentLevel, "fruit", tiles[0].Fruit,
			"matched", c.state.MatchedGroups, "total", c.state.TotalGroups)

		c.checkLevelCompleteLocked()
		return
	}

	c.state.Mistakes++
	c.emitLocked(EventTileMismatched, tiles[len(tiles)-1].ID)

	ids := make([]TileID, len(c.flipped))
	copy(ids, c.flipped)
	gen := c.generation
	c.settleTimer = c.clock.AfterFunc(c.settleDelay, func() {
		c.settle(gen, ids)
	})
}

// settle flips mismatched tiles back. A callback from an older generation
// belongs to a discarded board and does nothing.
func (c *Controller) settle(gen uint64, ids []TileID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation || c.state.State != StatePlaying {
		return
	}

	for _, id := range ids {
		if idx := c.board.Index(id); idx >= 0 && !c.board[idx].Matched {
			c.board[idx].Flipped = false
		}
	}
	c.flipped = nil
	c.settleTimer = nil
}

// checkLevelCompleteLocked moves to levelComplete once every group is matched.
func (c *Controller) checkLevelCompleteLocked() {
	if c.state.TotalGroups == 0 || c.state.MatchedGroups != c.state.TotalGroups {
		return
	}

	c.state.LevelScore = LevelScore(c.state.TimeLeft, c.state.Mistakes)
	c.state.Stars = StarRating(c.state.TimeLeft, c.state.Mistakes)
	c.state.Score += c.state.LevelScore

	c.leavePlayingLocked()
	c.state.State = StateLevelComplete
	c.emitLocked(EventLevelCompleted, 0)
	c.logger.Info("level complete", "level", c.state.CurrentLevel, "points", c.state.LevelScore,
		"score", c.state.Score, "mistakes", c.state.Mistakes, "timeLeft", c.state.TimeLeft)
}
