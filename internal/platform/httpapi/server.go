// Package httpapi serves the level table and leaderboard over HTTP.
// Every endpoint is read-only; play happens in the TUI.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/daylonsoh/fruity-match-game/internal/games/fruity"
	"github.com/daylonsoh/fruity-match-game/internal/leaderboard"
)

// BoardSource provides the current leaderboard.
type BoardSource interface {
	Board() leaderboard.Board
}

// Server bundles the router and its dependencies.
type Server struct {
	addr      string
	board     BoardSource
	logger    *log.Logger
	startTime time.Time
	http      *http.Server
}

// New constructs a Server listening on addr once started.
func New(addr string, board BoardSource, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Server{
		addr:      addr,
		board:     board,
		logger:    logger,
		startTime: time.Now(),
	}
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Routes returns the router with middleware installed.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/health", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/levels", s.handleLevels)
		r.Get("/leaderboard", s.handleLeaderboard)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed")
	})
	return r
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.Info("starting HTTP server", "address", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

type healthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

type levelResponse struct {
	Level      int    `json:"level"`
	GridSize   int    `json:"gridSize"`
	GroupSize  int    `json:"groupSize"`
	TimeLimit  int    `json:"timeLimit"`
	Difficulty string `json:"difficulty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status: "ok",
		Uptime: time.Since(s.startTime).Round(time.Second).String(),
	})
}

func (s *Server) handleLevels(w http.ResponseWriter, r *http.Request) {
	levels := fruity.Levels()
	out := make([]levelResponse, len(levels))
	for i, l := range levels {
		out[i] = levelResponse{
			Level:      l.Level,
			GridSize:   l.GridSize,
			GroupSize:  l.GroupSize,
			TimeLimit:  l.TimeLimit,
			Difficulty: string(l.Difficulty),
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// handleLeaderboard writes the board in its persisted form.
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	var b leaderboard.Board
	if s.board != nil {
		b = s.board.Board()
	}
	data, err := leaderboard.Encode(b)
	if err != nil {
		s.logger.Error("encode leaderboard", "err", err)
		writeError(w, http.StatusInternalServerError, "encode_failed")
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// requestLogger logs one line per request at debug level.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
