package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/daylonsoh/fruity-match-game/internal/config"
	"github.com/daylonsoh/fruity-match-game/internal/leaderboard"
	"github.com/daylonsoh/fruity-match-game/internal/storage"
)

// loadConfig loads the game config and applies the global flag overrides.
func loadConfig() (config.FruityConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.FruityConfig{}, err
	}
	if flagStore != "" {
		cfg.Leaderboard.Backend = flagStore
	}
	if flagDBPath != "" {
		cfg.Leaderboard.Path = flagDBPath
	} else if cfg.Leaderboard.Backend == "file" && filepath.Ext(cfg.Leaderboard.Path) == ".db" {
		// The default path names a database file; the file backend wants a directory
		cfg.Leaderboard.Path = filepath.Dir(cfg.Leaderboard.Path)
	}
	if err := cfg.Validate(); err != nil {
		return config.FruityConfig{}, err
	}
	return cfg, nil
}

// newLogger builds the process logger. When interactive is set and no log
// file was given, output is discarded so it cannot corrupt the TUI.
func newLogger(prefix string, interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		path, err := storage.ExpandHome(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	case interactive:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// openLeaderboard opens the configured backend and loads the board from it.
// The returned backend must be closed by the caller.
func openLeaderboard(cfg config.LeaderboardConfig, logger *log.Logger) (*leaderboard.Store, storage.Backend, error) {
	backend, err := storage.OpenBackend(cfg.Backend, cfg.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open leaderboard storage: %w", err)
	}
	logger.Debug("leaderboard storage opened", "backend", cfg.Backend, "path", cfg.Path)

	store := leaderboard.NewStore(backend,
		leaderboard.WithKey(cfg.Key),
		leaderboard.WithLogger(logger),
	)
	return store, backend, nil
}
