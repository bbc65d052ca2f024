package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappybust/internal/config"
	"github.com/vovakirdan/flappybust/internal/core"
	"github.com/vovakirdan/flappybust/internal/games/flappy"
	"github.com/vovakirdan/flappybust/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMaxSessions int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Flappybust SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a difficulty menu and its
own game. Scores are stored per-server (all users share the same
leaderboard). Sessions run without sound.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.flappybust/host_key

Examples:
  flappybust serve                           # Listen on :23234 with auto-generated key
  flappybust serve --ssh :2222               # Listen on port 2222
  flappybust serve --host-key ./my_host_key  # Use specific host key
  flappybust serve --db ./scores.db          # Use specific database
  flappybust serve --max-sessions 8          # Admit at most 8 players

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagMaxSessions, "max-sessions", tui.DefaultSSHServerConfig().MaxSessions, "Concurrent players allowed (0 = unlimited)")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	logger.SetPrefix("flappybust-ssh")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	var scores tui.ScoreSource
	if store != nil {
		scores = store
	}

	newGame := func(user string, p config.DifficultyPreset) core.Game {
		c := cfg.Clone()
		config.ApplyPreset(&c, p)
		return flappy.New(c, logger.With("user", user), flappy.Services{Scores: scoreStore(store)})
	}

	srvCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		TickRate:    flagFPS,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		MaxSessions: flagMaxSessions,
	}
	server, err := tui.NewSSHServer(srvCfg, newGame, scores, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting Flappybust SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.ListenAndServe(ctx)
}
