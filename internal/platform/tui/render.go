package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/daylonsoh/fruity-match-game/internal/core"
	"github.com/daylonsoh/fruity-match-game/internal/games/fruity"
)

// Board layout. The header above the board is always boardTop lines tall so
// mouse coordinates map straight onto tiles.
const (
	boardLeft  = 2
	boardTop   = 3 // Title, status line, blank
	tileInnerW = 6
	tileW      = tileInnerW + 2 // Plus border
	tileH      = 3
	tileGap    = 1
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	goodStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	badStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	starStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3)

	tileBase = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Width(tileInnerW).
			Align(lipgloss.Center)
	tileHidden  = tileBase.BorderForeground(lipgloss.Color("240")).Foreground(lipgloss.Color("244"))
	tileFlipped = tileBase.BorderForeground(lipgloss.Color("214"))
	tileMatched = tileBase.BorderForeground(lipgloss.Color("42")).Faint(true)
)

// boardGrid returns the on-screen layout of a board of the given size.
func boardGrid(size int) core.Grid {
	return core.Grid{
		Origin: core.Point{X: boardLeft, Y: boardTop},
		Size:   size,
		CellW:  tileW,
		CellH:  tileH,
		Gap:    tileGap,
	}
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if lipgloss.Width(text) >= width {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// stars renders a 1-3 star rating.
func stars(n int) string {
	n = core.Clamp(n, 0, 3)
	return starStyle.Render(strings.Repeat("★", n) + strings.Repeat("☆", 3-n))
}

// renderHeader renders the fixed-height block above the board.
func renderHeader(snap fruity.Snapshot, username string) string {
	title := titleStyle.Render("FRUITY MATCH")
	if username != "" {
		title += dimStyle.Render("  " + username)
	}

	status := fmt.Sprintf("Level %d (%s)  Time %ds  Score %d  Matches %d/%d  Mistakes %d",
		snap.CurrentLevel, snap.Config.Difficulty, snap.TimeLeft, snap.Score,
		snap.MatchedGroups, snap.TotalGroups, snap.Mistakes)
	if snap.TimeLeft <= 10 {
		status = badStyle.Render(status)
	} else {
		status = statusStyle.Render(status)
	}

	return title + "\n" + status + "\n"
}

// renderBoard draws the tile grid, highlighting the tile under the cursor.
func renderBoard(snap fruity.Snapshot, cursor core.Cursor, glyph func(string) string) string {
	size := snap.Config.GridSize
	rows := make([]string, 0, size*2)

	for r := 0; r < size; r++ {
		cells := make([]string, 0, size*2)
		for c := 0; c < size; c++ {
			idx := r*size + c
			if idx >= len(snap.Board) {
				break
			}
			if c > 0 {
				cells = append(cells, strings.Repeat(" ", tileGap))
			}
			cells = append(cells, renderTile(snap.Board[idx], idx == cursor.Index(), glyph))
		}
		if r > 0 {
			rows = append(rows, "")
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.NewStyle().MarginLeft(boardLeft).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func renderTile(tile fruity.Tile, selected bool, glyph func(string) string) string {
	style := tileHidden
	content := "?"
	switch {
	case tile.Matched:
		style = tileMatched
		content = glyph(tile.Fruit)
	case tile.Flipped:
		style = tileFlipped
		content = glyph(tile.Fruit)
	}

	if selected {
		style = style.BorderStyle(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("229"))
	}
	return style.Render(content)
}

// renderStart renders the title screen with the level picker.
func renderStart(snap fruity.Snapshot, width int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("F R U I T Y   M A T C H"), width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Find the matching fruit before time runs out!", width))
	b.WriteString("\n\n")

	picker := fmt.Sprintf("◀  Level %d  ▶", snap.CurrentLevel)
	body := lipgloss.JoinVertical(lipgloss.Center,
		goodStyle.Render(picker),
		"",
		snap.Config.Describe(),
		dimStyle.Render(fmt.Sprintf("Difficulty: %s", snap.Config.Difficulty)),
		"",
		snap.Config.Hint(),
	)
	b.WriteString(centerText(panelStyle.Render(body), width))
	b.WriteString("\n")

	if len(snap.Leaderboard) > 0 {
		best := snap.Leaderboard[0]
		b.WriteString("\n")
		b.WriteString(centerText(dimStyle.Render(fmt.Sprintf("Best: %s %d", best.Name, best.Score)), width))
		b.WriteString("\n")
	}

	return b.String()
}

// renderLevelComplete renders the summary after clearing a level.
func renderLevelComplete(snap fruity.Snapshot, width int) string {
	next := fruity.NextLevelInfo(snap.CurrentLevel)
	if next == "" {
		next = "That was the final level!"
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		goodStyle.Render(fmt.Sprintf("Level %d Complete!", snap.CurrentLevel)),
		"",
		stars(snap.Stars),
		"",
		fmt.Sprintf("Time left: %ds   Mistakes: %d", snap.TimeLeft, snap.Mistakes),
		fmt.Sprintf("Level score: +%d", snap.LevelScore),
		fmt.Sprintf("Total score: %d", snap.Score),
		"",
		dimStyle.Render(next),
	)
	return "\n" + centerText(panelStyle.Render(body), width) + "\n"
}

// renderGameOver renders the time-up screen.
func renderGameOver(snap fruity.Snapshot, width int) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		badStyle.Render("Time's Up!"),
		"",
		fmt.Sprintf("Level %d", snap.CurrentLevel),
		fmt.Sprintf("Matched %d of %d groups", snap.MatchedGroups, snap.TotalGroups),
		fmt.Sprintf("Score: %d", snap.Score),
	)
	return "\n" + centerText(panelStyle.Render(body), width) + "\n"
}

// renderEnterName renders the name entry form shown after the last level.
func renderEnterName(snap fruity.Snapshot, input, errMsg string, width int) string {
	lines := []string{
		goodStyle.Render("Congratulations!"),
		"You completed all levels.",
		"",
		fmt.Sprintf("Final score: %d", snap.Score),
		"",
	}
	if snap.Qualifies {
		lines = append(lines, "Enter your name for the leaderboard:")
	} else {
		lines = append(lines, dimStyle.Render("Not a top score this time. Enter your name anyway:"))
	}
	lines = append(lines, "", input)
	if errMsg != "" {
		lines = append(lines, "", badStyle.Render(errMsg))
	}

	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return "\n" + centerText(panelStyle.Render(body), width) + "\n"
}
