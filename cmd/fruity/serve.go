package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/daylonsoh/fruity-match-game/internal/platform/httpapi"
	"github.com/daylonsoh/fruity-match-game/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH game server and HTTP leaderboard",
	Long: `Start an SSH server that lets users connect and play, plus a
read-only HTTP API for the level table and leaderboard.

Each SSH connection gets its own game session. All sessions share one
leaderboard, which the HTTP API also serves.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.fruity/host_key

HTTP endpoints:
  GET /health
  GET /api/levels
  GET /api/leaderboard

Examples:
  fruity serve                          # SSH on :23235, HTTP on :8080
  fruity serve --ssh :2222 --http ""    # SSH only
  fruity serve --host-key ./host_key

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config, :23235)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", `HTTP API address (default from config, :8080; "" in config disables it)`)
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (default from config, 30m)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("fruity-serve", false)
	if err != nil {
		return err
	}
	defer closeLog()

	srvCfg := cfg.Server
	if cmd.Flags().Changed("ssh") {
		srvCfg.SSHAddr = flagSSHAddr
	}
	if cmd.Flags().Changed("http") {
		srvCfg.HTTPAddr = flagHTTPAddr
	}
	if flagHostKey != "" {
		srvCfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		srvCfg.IdleTimeout = flagIdleTimeout
	}
	if srvCfg.SSHAddr == "" {
		return fmt.Errorf("an SSH address is required")
	}

	store, backend, err := openLeaderboard(cfg.Leaderboard, logger)
	if err != nil {
		return err
	}
	defer backend.Close()

	sshCfg := tui.DefaultSSHServerConfig()
	sshCfg.Address = srvCfg.SSHAddr
	sshCfg.HostKeyPath = srvCfg.HostKeyPath
	if srvCfg.IdleTimeout > 0 {
		sshCfg.IdleTimeout = srvCfg.IdleTimeout
	}
	sshCfg.Game = cfg
	sshCfg.Seed = flagSeed

	sshServer, err := tui.NewSSHServer(sshCfg, store, logger.WithPrefix("ssh"))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sshServer.ListenAndServe(ctx)
	})
	if srvCfg.HTTPAddr != "" {
		api := httpapi.New(srvCfg.HTTPAddr, store, logger.WithPrefix("http"))
		g.Go(func() error {
			return api.ListenAndServe(ctx)
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Fruity Match SSH server on %s\n", srvCfg.SSHAddr)
	if srvCfg.HTTPAddr != "" {
		fmt.Fprintf(out, "Leaderboard API on %s\n", srvCfg.HTTPAddr)
	}
	fmt.Fprintln(out, "Press Ctrl+C to stop")

	return g.Wait()
}
