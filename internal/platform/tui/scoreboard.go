package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/daylonsoh/fruity-match-game/internal/leaderboard"
)

// Scoreboard layout constants
const (
	tableMinHeight = 5
	tableMaxHeight = leaderboard.Capacity + 1 // Rows plus header
)

// newLeaderboardTable creates a table with the leaderboard columns.
func newLeaderboardTable(height int) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Name", Width: leaderboard.MaxNameLength + 2},
		{Title: "Score", Width: 8},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(min(max(height-12, tableMinHeight), tableMaxHeight)), // Leave room for title and help
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// leaderboardRows converts entries to table rows.
func leaderboardRows(b leaderboard.Board) []table.Row {
	rows := make([]table.Row, len(b))
	for i, e := range b {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			e.Name,
			fmt.Sprintf("%d", e.Score),
			e.Date,
		}
	}
	return rows
}

// setLeaderboard loads b into t and puts the cursor on the highlighted rank.
func setLeaderboard(t *table.Model, b leaderboard.Board, highlightRank int) {
	t.SetRows(leaderboardRows(b))
	if highlightRank > 0 && highlightRank <= len(b) {
		t.SetCursor(highlightRank - 1)
	} else {
		t.GotoTop()
	}
}

// renderLeaderboard renders the leaderboard screen.
func renderLeaderboard(t table.Model, b leaderboard.Board, highlightRank, width int) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(centerText(titleStyle.Render("LEADERBOARD"), width))
	sb.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(b) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		sb.WriteString(centerText(tableStyle.Render(emptyStyle.Render("No scores recorded yet.\nClear all ten levels to set one!")), width))
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(centerText(tableStyle.Render(t.View()), width))
	sb.WriteString("\n")

	if highlightRank > 0 {
		sb.WriteString("\n")
		sb.WriteString(centerText(goodStyle.Render(fmt.Sprintf("You placed #%d!", highlightRank)), width))
		sb.WriteString("\n")
	}
	return sb.String()
}
