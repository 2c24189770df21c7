package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top 10 scores from completed ten-level runs.

Examples:
  fruity scores
  fruity scores --store file --db ./scores
  fruity scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Erase every leaderboard entry")
}

func runScores(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("fruity", false)
	if err != nil {
		return err
	}
	defer closeLog()

	store, backend, err := openLeaderboard(cfg.Leaderboard, logger)
	if err != nil {
		return err
	}
	defer backend.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		if err := store.Clear(); err != nil {
			return fmt.Errorf("cannot clear leaderboard: %w", err)
		}
		fmt.Fprintln(out, "Leaderboard cleared.")
		return nil
	}

	board := store.Board()

	fmt.Fprintln(out, "Fruity Match - Leaderboard")
	fmt.Fprintln(out)

	if len(board) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'fruity play' and clear all ten levels to set the first score!")
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-4s  %-10s  %-8s  %s\n", "Rank", "Name", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-8s  %s\n", "----", "----", "-----", "----")

	for i, e := range board {
		fmt.Fprintf(out, "  %-4d  %-10s  %-8d  %s\n", i+1, e.Name, e.Score, e.Date)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d\n", board[0].Score)
	return nil
}
