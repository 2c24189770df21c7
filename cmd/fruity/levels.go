package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daylonsoh/fruity-match-game/internal/games/fruity"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels and their rules",
	Long:  `Shows grid size, group size, time limit and difficulty for every level.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	levels := fruity.Levels()

	fmt.Fprintln(out, "Levels:")
	fmt.Fprintln(out)

	// Print header
	fmt.Fprintf(out, "  %-5s  %-4s  %-5s  %-4s  %s\n", "Level", "Grid", "Match", "Time", "Difficulty")
	fmt.Fprintf(out, "  %-5s  %-4s  %-5s  %-4s  %s\n", "-----", "----", "-----", "----", "----------")

	for _, l := range levels {
		grid := fmt.Sprintf("%dx%d", l.GridSize, l.GridSize)
		fmt.Fprintf(out, "  %-5d  %-4s  %-5d  %-4s  %s\n",
			l.Level, grid, l.GroupSize, fmt.Sprintf("%ds", l.TimeLimit), l.Difficulty)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'fruity play --level <n>' to start on a level.")
}
