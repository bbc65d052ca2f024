package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappybust/internal/config"
	"github.com/vovakirdan/flappybust/internal/core"
	"github.com/vovakirdan/flappybust/internal/games/flappy"
	"github.com/vovakirdan/flappybust/internal/platform/sound"
	"github.com/vovakirdan/flappybust/internal/platform/tui"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play in the terminal",
	Long: `Play in the terminal with a Bubble Tea frontend.

Without --difficulty a menu asks for one and returns after each round.
Logs go to ~/.flappybust/flappybust.log while the game owns the terminal.

Controls:
  Space/Up/W      - Flap (start and restart too)
  Mouse click     - Flap, or press RESTART after game over
  P               - Pause
  Q/Esc           - Quit the round
  Ctrl+S          - Save a text screenshot

Examples:
  flappybust term
  flappybust term --difficulty normal --fps 30
  flappybust term --mute`,
	Args: cobra.NoArgs,
	RunE: runTerm,
}

func init() {
	termCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runTerm(cmd *cobra.Command, _ []string) error {
	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger, err := newLogger(logFile)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	loader, err := startLoader(ctx, logger)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	svc := flappy.Services{Assets: loader, Scores: scoreStore(store), Tints: loader}
	if !flagMute && !cfg.Audio.Muted {
		player := sound.NewPlayer(cfg.Audio.SampleRate, sound.FromLoader(loader), logger)
		if err := player.Start(); err != nil {
			logger.Warn("no audio device, playing muted", "err", err)
		} else {
			defer player.Close()
			svc.Audio = player
		}
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	rt := runtimeConfig(width, height)
	opts := tui.Options{Logger: logger, FixedSeed: flagSeed != 0}

	if flagDifficulty != "" {
		return tui.Run(flappy.New(cfg, logger, svc), rt, opts)
	}

	newGame := func(p config.DifficultyPreset) core.Game {
		c := cfg.Clone()
		config.ApplyPreset(&c, p)
		return flappy.New(c, logger, svc)
	}
	var scores tui.ScoreSource
	if store != nil {
		scores = store
	}
	return tui.RunSession(newGame, scores, rt, opts)
}
