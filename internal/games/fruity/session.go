package fruity

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/daylonsoh/fruity-match-game/internal/leaderboard"
)

// ErrInvalidName is returned by SubmitName for an empty or over-long name.
var ErrInvalidName = errors.New("fruity: invalid player name")

// Default timings.
const (
	DefaultTickInterval = time.Second
	DefaultSettleDelay  = time.Second
)

// State is a phase of the session state machine.
type State string

const (
	StateStart         State = "start"
	StatePlaying       State = "playing"
	StateLevelComplete State = "levelComplete"
	StateGameOver      State = "gameOver"
	StateLeaderboard   State = "leaderboard"
	StateEnterName     State = "enterName"
)

// SessionState is everything the presentation layer needs to render a session.
type SessionState struct {
	State         State
	CurrentLevel  int
	TimeLeft      int
	Score         int
	FlippedTiles  []Tile
	MatchedGroups int
	TotalGroups   int
	Mistakes      int
	PlayerName    string
	GameCompleted bool

	LevelScore    int // Points from the last cleared level
	Stars         int // Rating of the last cleared level
	HighlightRank int // 1-based rank of the last submitted entry, 0 if none
}

// Leaderboard is the subset of leaderboard.Store the controller uses.
type Leaderboard interface {
	Board() leaderboard.Board
	Qualifies(score int) bool
	Add(name string, score int) (leaderboard.Board, int, error)
}

// Options configures a Controller. Zero values fall back to defaults.
type Options struct {
	Generator    *Generator
	Clock        Clock
	Leaderboard  Leaderboard
	Sink         Sink
	Logger       *log.Logger
	TickInterval time.Duration
	SettleDelay  time.Duration
}

// Controller owns one game session. Commands are the only way to mutate it;
// commands that do not apply to the current state are ignored.
// It is safe for concurrent use: commands and timer callbacks are serialized.
type Controller struct {
	mu sync.Mutex

	gen          *Generator
	clock        Clock
	lb           Leaderboard
	sink         Sink
	logger       *log.Logger
	tickInterval time.Duration
	settleDelay  time.Duration

	state   SessionState
	rules   LevelConfig
	board   Board
	flipped []TileID

	// generation increases whenever a level starts or play stops, so
	// callbacks scheduled for an older board can detect they are stale.
	generation  uint64
	tickTimer   Timer
	settleTimer Timer
}

// NewController creates a controller in the start state.
func NewController(opts Options) *Controller {
	c := &Controller{
		gen:          opts.Generator,
		clock:        opts.Clock,
		lb:           opts.Leaderboard,
		sink:         opts.Sink,
		logger:       opts.Logger,
		tickInterval: opts.TickInterval,
		settleDelay:  opts.SettleDelay,
	}
	if c.gen == nil {
		c.gen = NewGenerator(time.Now().UnixNano(), nil)
	}
	if c.clock == nil {
		c.clock = SystemClock{}
	}
	if c.sink == nil {
		c.sink = nopSink{}
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	if c.tickInterval <= 0 {
		c.tickInterval = DefaultTickInterval
	}
	if c.settleDelay <= 0 {
		c.settleDelay = DefaultSettleDelay
	}

	c.resetLocked()
	return c
}

// resetLocked returns the session to a fresh start screen.
func (c *Controller) resetLocked() {
	c.stopTimersLocked()
	c.generation++
	c.board = nil
	c.flipped = nil
	c.rules, _ = ResolveLevel(1)
	c.state = SessionState{
		State:        StateStart,
		CurrentLevel: 1,
		TimeLeft:     c.rules.TimeLimit,
	}
}

func (c *Controller) stopTimersLocked() {
	if c.tickTimer != nil {
		c.tickTimer.Stop()
		c.tickTimer = nil
	}
	if c.settleTimer != nil {
		c.settleTimer.Stop()
		c.settleTimer = nil
	}
}

// leavePlayingLocked cancels everything scheduled for the current board.
func (c *Controller) leavePlayingLocked() {
	c.stopTimersLocked()
	c.generation++
}

func (c *Controller) emitLocked(t EventType, id TileID) {
	c.sink.Emit(Event{
		Type:   t,
		TileID: id,
		Level:  c.state.CurrentLevel,
		Score:  c.state.Score,
	})
}

func (c *Controller) ignored(cmd string) {
	c.logger.Debug("command ignored", "command", cmd, "state", c.state.State)
}

// startLevelLocked replaces the board and enters playing. The new board is
// generated before anything is touched, so a failure leaves the session as it was.
func (c *Controller) startLevelLocked(level int) error {
	rules, err := ResolveLevel(level)
	if err != nil {
		return err
	}
	board, err := c.gen.Generate(level)
	if err != nil {
		return fmt.Errorf("fruity: start level %d: %w", level, err)
	}

	c.leavePlayingLocked()
	c.rules = rules
	c.board = board
	c.flipped = nil

	c.state.State = StatePlaying
	c.state.CurrentLevel = level
	c.state.TimeLeft = rules.TimeLimit
	c.state.MatchedGroups = 0
	c.state.TotalGroups = rules.TotalGroups()
	c.state.Mistakes = 0
	c.state.LevelScore = 0
	c.state.Stars = 0

	c.scheduleTickLocked()
	c.logger.Info("level started", "level", level, "grid", rules.GridSize,
		"group", rules.GroupSize, "time", rules.TimeLimit)
	return nil
}

func (c *Controller) scheduleTickLocked() {
	gen := c.generation
	c.tickTimer = c.clock.AfterFunc(c.tickInterval, func() {
		c.tick(gen)
	})
}

// tick counts the timer down by one second.
func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation || c.state.State != StatePlaying || c.state.TimeLeft <= 0 {
		return
	}

	c.state.TimeLeft--
	if c.state.TimeLeft == 0 {
		c.leavePlayingLocked()
		c.state.State = StateGameOver
		c.emitLocked(EventGameOver, 0)
		c.logger.Info("time up", "level", c.state.CurrentLevel, "score", c.state.Score)
		return
	}

	c.scheduleTickLocked()
}

// SelectLevel chooses the level the next StartLevel from the menu will use.
func (c *Controller) SelectLevel(level int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.State != StateStart {
		c.ignored("selectLevel")
		return nil
	}
	rules, err := ResolveLevel(level)
	if err != nil {
		return err
	}
	c.rules = rules
	c.state.CurrentLevel = level
	c.state.TimeLeft = rules.TimeLimit
	c.emitLocked(EventButtonActivated, 0)
	return nil
}

// StartLevel begins the given level from the start screen.
func (c *Controller) StartLevel(level int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.State != StateStart {
		c.ignored("startLevel")
		return nil
	}
	if err := c.startLevelLocked(level); err != nil {
		return err
	}
	c.emitLocked(EventButtonActivated, 0)
	return nil
}

// TileClick flips a tile. Clicks on matched or face-up tiles, clicks while
// a full group is showing, and clicks outside play are ignored.
func (c *Controller) TileClick(id TileID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.State != StatePlaying {
		c.ignored("tileClick")
		return
	}
	idx := c.board.Index(id)
	if idx < 0 {
		return
	}
	tile := &c.board[idx]
	if tile.Matched || tile.Flipped || len(c.flipped) >= c.rules.GroupSize {
		return
	}

	tile.Flipped = true
	c.flipped = append(c.flipped, id)
	c.emitLocked(EventTileFlipped, id)

	if len(c.flipped) == c.rules.GroupSize {
		c.resolveFlipsLocked()
	}
}

// NextLevel advances after a cleared level, or moves to name entry after the last one.
func (c *Controller) NextLevel() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.State != StateLevelComplete {
		c.ignored("nextLevel")
		return nil
	}

	if c.state.CurrentLevel < MaxLevel {
		if err := c.startLevelLocked(c.state.CurrentLevel + 1); err != nil {
			return err
		}
		c.emitLocked(EventButtonActivated, 0)
		return nil
	}

	c.state.GameCompleted = true
	c.state.State = StateEnterName
	c.emitLocked(EventButtonActivated, 0)
	c.logger.Info("game completed", "score", c.state.Score)
	return nil
}

// RetryLevel restarts the current level after running out of time.
// The cumulative score is kept.
func (c *Controller) RetryLevel() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.State != StateGameOver {
		c.ignored("retryLevel")
		return nil
	}
	if err := c.startLevelLocked(c.state.CurrentLevel); err != nil {
		return err
	}
	c.emitLocked(EventButtonActivated, 0)
	return nil
}

// BackToMenu abandons the session and resets score and progress.
func (c *Controller) BackToMenu() {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state.State {
	case StateLevelComplete, StateGameOver, StateLeaderboard:
	default:
		c.ignored("backToMenu")
		return
	}
	c.resetLocked()
	c.emitLocked(EventButtonActivated, 0)
}

// ShowLeaderboard switches to the leaderboard from any state.
func (c *Controller) ShowLeaderboard() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.State == StateLeaderboard {
		return
	}
	if c.state.State == StatePlaying {
		c.leavePlayingLocked()
	}
	c.state.State = StateLeaderboard
	c.emitLocked(EventButtonActivated, 0)
}

// CleanName strips all whitespace from name and checks its length.
func CleanName(name string) (string, error) {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, name)

	if clean == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidName)
	}
	if utf8.RuneCountInString(clean) > leaderboard.MaxNameLength {
		return "", fmt.Errorf("%w: longer than %d characters", ErrInvalidName, leaderboard.MaxNameLength)
	}
	return clean, nil
}

// SubmitName records the finished game's score under name and shows the leaderboard.
// Scores that do not qualify are not inserted. A failed write is logged; the
// in-memory leaderboard still reflects the entry.
func (c *Controller) SubmitName(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.State != StateEnterName {
		c.ignored("submitName")
		return nil
	}
	clean, err := CleanName(name)
	if err != nil {
		return err
	}

	c.state.PlayerName = clean
	rank := 0
	if c.lb != nil && c.lb.Qualifies(c.state.Score) {
		var addErr error
		_, rank, addErr = c.lb.Add(clean, c.state.Score)
		if addErr != nil {
			c.logger.Error("could not save leaderboard", "error", addErr)
		}
	}

	c.state.HighlightRank = rank
	c.state.PlayerName = ""
	c.state.GameCompleted = false
	c.state.State = StateLeaderboard
	c.emitLocked(EventButtonActivated, 0)
	c.logger.Info("score submitted", "name", clean, "score", c.state.Score, "rank", rank)
	return nil
}

// SkipNameEntry returns to the start screen without recording the score.
func (c *Controller) SkipNameEntry() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.State != StateEnterName {
		c.ignored("skipNameEntry")
		return
	}
	c.resetLocked()
	c.emitLocked(EventButtonActivated, 0)
}

// Close cancels any pending timers. The controller must not be used afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.leavePlayingLocked()
}
