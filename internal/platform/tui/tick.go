// Package tui provides the Bubble Tea host for Fruity Match.
// It handles the terminal UI loop, input mapping, and SSH sessions; all game
// rules live in the fruity package and are reached through the Controller.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/daylonsoh/fruity-match-game/internal/games/fruity"
)

// TickMsg is sent to trigger a redraw from a fresh snapshot.
type TickMsg time.Time

// EventMsg carries a controller event into the update loop.
type EventMsg fruity.Event

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(refreshRate int) tea.Cmd {
	if refreshRate <= 0 {
		refreshRate = 10
	}
	interval := time.Second / time.Duration(refreshRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// waitForEvent blocks until the sink yields an event or is closed.
func waitForEvent(sink *fruity.ChannelSink) tea.Cmd {
	return func() tea.Msg {
		select {
		case evt := <-sink.Events():
			return EventMsg(evt)
		case <-sink.Done():
			return nil
		}
	}
}
