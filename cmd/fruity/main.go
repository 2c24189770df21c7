// fruity is a terminal memory game: flip tiles to find matching fruit
// across ten timed levels.
//
// Usage:
//
//	fruity play              - Play locally in this terminal
//	fruity levels            - List the ten levels and their rules
//	fruity scores            - Show the leaderboard
//	fruity serve             - Serve the game over SSH and the leaderboard over HTTP
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: ~/.fruity/config.yaml)
//	--seed <value>      - Set RNG seed for reproducible boards
//	--store <backend>   - Leaderboard backend: sqlite, file or memory
//	--db <path>         - Leaderboard database file or directory
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagStore    string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fruity",
	Short: "Fruity Match - a memory game in your terminal",
	Long: `Fruity Match is a tile-matching memory game. Flip tiles to find
pairs (levels 1-5) or triplets (levels 6-10) of the same fruit before
the clock runs out. Clear all ten levels to earn a leaderboard spot.

Available commands:
  play     - Play in this terminal
  levels   - Show the level table
  scores   - View or clear the leaderboard
  serve    - Start the SSH and HTTP servers

Examples:
  fruity play
  fruity play --level 6
  fruity scores
  fruity serve --ssh :23235 --http :8080`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "Leaderboard backend: sqlite, file or memory (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Leaderboard database path (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
