package leaderboard

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/daylonsoh/fruity-match-game/internal/storage"
)

// DefaultKey is the logical key the board is stored under.
const DefaultKey = "fruityMatchLeaderboard"

// Store keeps the current board in memory and writes it through to a backend
// on every change. It is the single writer for its key.
type Store struct {
	backend storage.Backend
	key     string
	now     func() time.Time
	logger  *log.Logger

	mu    sync.RWMutex
	board Board
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithClock sets the time source used to date new entries.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger for recovered errors.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore creates a store over backend and loads the persisted board.
func NewStore(backend storage.Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		key:     DefaultKey,
		now:     time.Now,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Load()
	return s
}

// Load reads the persisted board, replacing the cached copy.
// Missing or corrupt data yields an empty board; it never fails.
func (s *Store) Load() Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.board = s.read()
	return s.board.Clone()
}

func (s *Store) read() Board {
	if s.backend == nil {
		return Board{}
	}

	data, err := s.backend.Get(s.key)
	if errors.Is(err, storage.ErrNotFound) {
		return Board{}
	}
	if err != nil {
		s.logger.Warn("could not read leaderboard", "key", s.key, "error", err)
		return Board{}
	}

	b, err := Decode(data)
	if err != nil {
		s.logger.Warn("resetting leaderboard", "key", s.key, "error", err)
		return Board{}
	}
	return b
}

// Board returns a copy of the current board.
func (s *Store) Board() Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.Clone()
}

// Qualifies reports whether score would earn a place on the current board.
func (s *Store) Qualifies(score int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Qualifies(score, s.board)
}

// Add inserts a new entry dated today and persists the board.
// A non-qualifying score leaves the board untouched and returns rank 0.
// The in-memory board is updated even if persisting fails.
func (s *Store) Add(name string, score int) (Board, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !Qualifies(score, s.board) {
		return s.board.Clone(), 0, nil
	}

	board, rank := Insert(s.board, NewEntry(name, score, s.now()))
	s.board = board

	if err := s.save(board); err != nil {
		return board.Clone(), rank, err
	}
	return board.Clone(), rank, nil
}

// Save replaces the persisted board with b.
func (s *Store) Save(b Board) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.board = b.Clone()
	return s.save(s.board)
}

func (s *Store) save(b Board) error {
	if s.backend == nil {
		return nil
	}
	data, err := Encode(b)
	if err != nil {
		return err
	}
	if err := s.backend.Put(s.key, data); err != nil {
		return fmt.Errorf("leaderboard: save: %w", err)
	}
	return nil
}

// Clear removes every entry and deletes the persisted document.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.board = Board{}
	if s.backend == nil {
		return nil
	}
	if err := s.backend.Delete(s.key); err != nil {
		return fmt.Errorf("leaderboard: clear: %w", err)
	}
	return nil
}
