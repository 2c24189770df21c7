package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/daylonsoh/fruity-match-game/internal/core"
	"github.com/daylonsoh/fruity-match-game/internal/games/fruity"
	"github.com/daylonsoh/fruity-match-game/internal/leaderboard"
	"github.com/daylonsoh/fruity-match-game/internal/platform/tui"
	"github.com/daylonsoh/fruity-match-game/internal/storage"
)

var (
	flagLevel   int
	flagRefresh int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Fruity Match in this terminal",
	Long: `Start a local game session.

Controls:
  Arrows/hjkl   - Move the tile cursor (or pick a level on the start screen)
  Enter/Space   - Flip tile / confirm
  Mouse click   - Flip the tile under the pointer
  R             - Retry the level after time runs out
  L             - Show the leaderboard
  Esc           - Back to the menu / skip name entry
  Q/Ctrl+C      - Quit

Examples:
  fruity play
  fruity play --level 6
  fruity play --seed 42 --store memory`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 1, fmt.Sprintf("Level to start on (1-%d)", fruity.MaxLevel))
	playCmd.Flags().IntVar(&flagRefresh, "refresh", 10, "Screen refreshes per second")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if _, err := fruity.ResolveLevel(flagLevel); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("fruity", true)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, backend, err := openLeaderboard(cfg.Leaderboard, logger)
	if err != nil {
		// Continue with an in-memory board; the game still works
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		backend = storage.NewMemoryStore()
		store = leaderboard.NewStore(backend, leaderboard.WithLogger(logger))
	}
	defer backend.Close()

	rc := core.DefaultConfig()
	rc.ScreenW = width
	rc.ScreenH = height
	rc.Seed = flagSeed
	rc.StartLevel = flagLevel
	if flagRefresh > 0 {
		rc.RefreshRate = flagRefresh
	}

	return tui.Run(tui.GameOptions{
		Config:      cfg,
		Runtime:     rc,
		Leaderboard: store,
		Logger:      logger,
	})
}
