package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/daylonsoh/fruity-match-game/internal/core"
	"github.com/daylonsoh/fruity-match-game/internal/games/fruity"
)

// KeyMap defines the key bindings for every game screen.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Confirm     key.Binding
	Back        key.Binding
	Retry       key.Binding
	Leaderboard key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/l", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Leaderboard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "leaderboard"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Retry):
		return core.ActionRestart
	case key.Matches(msg, k.Leaderboard):
		return core.ActionLeaderboard
	}
	return core.ActionNone
}

// screenHelp is the subset of bindings shown on one screen.
type screenHelp []key.Binding

// ShortHelp returns key bindings for the short help view.
func (h screenHelp) ShortHelp() []key.Binding {
	return h
}

// FullHelp returns key bindings for the full help view.
func (h screenHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h}
}

// helpFor returns the bindings that do something in the given state.
func (k KeyMap) helpFor(state fruity.State) screenHelp {
	confirm := func(desc string) key.Binding {
		b := k.Confirm
		b.SetHelp("enter", desc)
		return b
	}

	switch state {
	case fruity.StateStart:
		left, right := k.Left, k.Right
		left.SetHelp("←", "prev level")
		right.SetHelp("→", "next level")
		return screenHelp{left, right, confirm("start"), k.Leaderboard, k.Quit}
	case fruity.StatePlaying:
		return screenHelp{k.Up, k.Down, k.Left, k.Right, confirm("flip"), k.Leaderboard, k.Quit}
	case fruity.StateLevelComplete:
		return screenHelp{confirm("next level"), k.Back, k.Leaderboard, k.Quit}
	case fruity.StateGameOver:
		return screenHelp{k.Retry, k.Back, k.Leaderboard, k.Quit}
	case fruity.StateEnterName:
		skip := k.Back
		skip.SetHelp("esc", "skip")
		return screenHelp{confirm("save"), skip}
	case fruity.StateLeaderboard:
		return screenHelp{k.Up, k.Down, k.Back, k.Quit}
	}
	return screenHelp{k.Quit}
}
