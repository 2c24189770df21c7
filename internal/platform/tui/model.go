package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/daylonsoh/fruity-match-game/internal/config"
	"github.com/daylonsoh/fruity-match-game/internal/core"
	"github.com/daylonsoh/fruity-match-game/internal/games/fruity"
	"github.com/daylonsoh/fruity-match-game/internal/leaderboard"
)

// GameOptions wires one play session.
type GameOptions struct {
	Config      config.FruityConfig
	Runtime     core.RuntimeConfig
	Leaderboard fruity.Leaderboard
	Logger      *log.Logger
	Sink        fruity.Sink // Optional extra event subscriber
}

// Model is the Bubble Tea model for a Fruity Match session.
// It owns a Controller and renders from its snapshots.
type Model struct {
	ctrl   *fruity.Controller
	events *fruity.ChannelSink
	logger *log.Logger
	board  config.BoardConfig
	config core.RuntimeConfig

	keys   KeyMap
	help   help.Model
	name   textinput.Model
	table  table.Model
	cursor core.Cursor

	snap     fruity.Snapshot
	flash    string
	nameErr  string
	width    int
	height   int
	quitting bool
}

// NewModel creates a session in the start state.
func NewModel(opts GameOptions) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	events := fruity.NewChannelSink(64)
	var sink fruity.Sink = events
	if opts.Sink != nil {
		sink = fruity.MultiSink{events, opts.Sink}
	}

	ctrl := fruity.NewController(fruity.Options{
		Generator:    fruity.NewGenerator(cfg.Seed, opts.Config.Board.Catalog),
		Leaderboard:  opts.Leaderboard,
		Sink:         sink,
		Logger:       logger,
		TickInterval: opts.Config.Timing.TickInterval,
		SettleDelay:  opts.Config.Timing.SettleDelay,
	})
	if cfg.StartLevel > 1 {
		if err := ctrl.SelectLevel(cfg.StartLevel); err != nil {
			logger.Warn("ignoring start level", "level", cfg.StartLevel, "error", err)
		}
	}

	name := textinput.New()
	name.Placeholder = "your name"
	name.CharLimit = leaderboard.MaxNameLength
	name.Width = leaderboard.MaxNameLength + 2

	m := Model{
		ctrl:   ctrl,
		events: events,
		logger: logger,
		board:  opts.Config.Board,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		name:   name,
		table:  newLeaderboardTable(cfg.ScreenH),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
	m.refresh()
	return m
}

// Init starts the redraw loop and the event listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.RefreshRate), waitForEvent(m.events))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.table = newLeaderboardTable(msg.Height)
		setLeaderboard(&m.table, m.snap.Leaderboard, m.snap.HighlightRank)
		return m, nil

	case TickMsg:
		m.refresh()
		return m, tickCmd(m.config.RefreshRate)

	case EventMsg:
		m.handleEvent(fruity.Event(msg))
		m.refresh()
		return m, waitForEvent(m.events)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.snap.State == fruity.StateEnterName {
		return m.handleNameKey(msg)
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.Close()
		return m, tea.Quit
	case core.ActionLeaderboard:
		m.ctrl.ShowLeaderboard()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.snap.State {
	case fruity.StateStart:
		switch action {
		case core.ActionLeft, core.ActionDown:
			m.selectLevel(m.snap.CurrentLevel - 1)
		case core.ActionRight, core.ActionUp:
			m.selectLevel(m.snap.CurrentLevel + 1)
		case core.ActionConfirm:
			m.report(m.ctrl.StartLevel(m.snap.CurrentLevel))
		}

	case fruity.StatePlaying:
		if dx, dy := action.Delta(); dx != 0 || dy != 0 {
			m.cursor.Move(dx, dy)
		} else if action == core.ActionConfirm {
			m.flipAt(m.cursor.Index())
		}

	case fruity.StateLevelComplete:
		switch action {
		case core.ActionConfirm:
			m.report(m.ctrl.NextLevel())
		case core.ActionBack:
			m.ctrl.BackToMenu()
		}

	case fruity.StateGameOver:
		switch action {
		case core.ActionRestart, core.ActionConfirm:
			m.report(m.ctrl.RetryLevel())
		case core.ActionBack:
			m.ctrl.BackToMenu()
		}

	case fruity.StateLeaderboard:
		switch action {
		case core.ActionBack:
			m.ctrl.BackToMenu()
		case core.ActionUp, core.ActionDown:
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
		}
	}

	m.refresh()
	return m, cmd
}

// handleNameKey routes keys to the name input while it is shown.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		m.Close()
		return m, tea.Quit

	case tea.KeyEnter:
		if err := m.ctrl.SubmitName(m.name.Value()); err != nil {
			m.nameErr = "Name must be 1-10 characters without spaces"
			return m, nil
		}
		m.refresh()
		return m, nil

	case tea.KeyEsc:
		m.ctrl.SkipNameEntry()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	m.nameErr = ""
	return m, cmd
}

// handleMouse flips the tile under a left click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.snap.State != fruity.StatePlaying ||
		msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	size := m.snap.Config.GridSize
	idx := boardGrid(size).HitTest(msg.X, msg.Y)
	if idx < 0 {
		return m, nil
	}
	m.cursor.Pos = core.Point{X: idx % size, Y: idx / size}
	m.flipAt(idx)
	m.refresh()
	return m, nil
}

// handleEvent turns controller feedback into a status line.
func (m *Model) handleEvent(evt fruity.Event) {
	m.logger.Debug("event", "type", evt.Type, "tile", evt.TileID, "level", evt.Level, "score", evt.Score)

	switch evt.Type {
	case fruity.EventTileFlipped, fruity.EventButtonActivated:
		m.flash = ""
	case fruity.EventTileMatched:
		m.flash = goodStyle.Render("Match!")
	case fruity.EventTileMismatched:
		m.flash = badStyle.Render("No match")
	}
}

func (m *Model) selectLevel(level int) {
	if level < 1 || level > fruity.MaxLevel {
		return
	}
	m.report(m.ctrl.SelectLevel(level))
}

func (m *Model) flipAt(idx int) {
	if idx < 0 || idx >= len(m.snap.Board) {
		return
	}
	m.ctrl.TileClick(m.snap.Board[idx].ID)
}

// report shows a command error on the status line.
func (m *Model) report(err error) {
	if err == nil {
		return
	}
	m.logger.Error("command failed", "state", m.snap.State, "error", err)
	m.flash = badStyle.Render(err.Error())
}

// refresh pulls a new snapshot and syncs view-only state with it.
func (m *Model) refresh() {
	prev := m.snap
	m.snap = m.ctrl.Snapshot()

	if m.snap.State == fruity.StatePlaying && m.snap.Generation != prev.Generation {
		m.cursor.Reset(m.snap.Config.GridSize)
	}
	if m.snap.State == fruity.StateLeaderboard && prev.State != fruity.StateLeaderboard {
		setLeaderboard(&m.table, m.snap.Leaderboard, m.snap.HighlightRank)
	}

	switch {
	case m.snap.State == fruity.StateEnterName && !m.name.Focused():
		m.name.Reset()
		m.name.Focus()
		m.nameErr = ""
	case m.snap.State != fruity.StateEnterName && m.name.Focused():
		m.name.Blur()
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.snap.State {
	case fruity.StateStart:
		body = renderStart(m.snap, m.width)
	case fruity.StatePlaying:
		body = renderHeader(m.snap, m.config.Username) + "\n" +
			renderBoard(m.snap, m.cursor, m.board.Glyph) + "\n\n  " + m.flash
	case fruity.StateLevelComplete:
		body = renderLevelComplete(m.snap, m.width)
	case fruity.StateGameOver:
		body = renderGameOver(m.snap, m.width)
	case fruity.StateEnterName:
		body = renderEnterName(m.snap, m.name.View(), m.nameErr, m.width)
	case fruity.StateLeaderboard:
		body = renderLeaderboard(m.table, m.snap.Leaderboard, m.snap.HighlightRank, m.width)
	}

	if m.snap.State != fruity.StatePlaying && m.flash != "" {
		body += "\n" + centerText(m.flash, m.width)
	}
	return body + "\n\n" + dimStyle.Render(m.help.View(m.keys.helpFor(m.snap.State)))
}

// Snapshot returns the last snapshot the model rendered from.
func (m Model) Snapshot() fruity.Snapshot {
	return m.snap
}

// Close stops the session's timers and event listener.
func (m Model) Close() {
	m.ctrl.Close()
	m.events.Close()
}

// Run starts the Bubble Tea program for a local session.
func Run(opts GameOptions) error {
	model := NewModel(opts)
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Click tiles with the mouse
	)

	_, err := p.Run()
	return err
}
