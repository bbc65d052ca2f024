package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappybust/internal/core"
	"github.com/vovakirdan/flappybust/internal/games/flappy"
	"github.com/vovakirdan/flappybust/internal/platform/window"
)

var (
	flagScale      float64
	flagFullscreen bool
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a desktop window",
	Long: `Open a window and play.

Controls:
  Space / Left click  - Flap (start from the ready screen)
  Click RESTART       - Play again after game over (Space works too)
  P                   - Pause
  Esc                 - Quit

Difficulty options:
  fixed  - Classic tuning, no progression (default)
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max

Examples:
  flappybust play
  flappybust play --scale 2 --difficulty hard
  flappybust play --assets ./assets --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Float64Var(&flagScale, "scale", 0, "Window scale factor (0 = config value)")
	playCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
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

	svc := flappy.Services{Assets: loader, Scores: scoreStore(store)}
	if !flagMute && !cfg.Audio.Muted {
		svc.Audio = window.NewAudio(cfg.Audio.SampleRate, loader, logger)
	}

	game := flappy.New(cfg, logger, svc)
	game.Reset(runtimeConfig(core.FieldWidth, core.FieldHeight))

	opts := window.Options{
		Title:      cfg.Window.Title,
		Scale:      cfg.Window.Scale,
		Fullscreen: cfg.Window.Fullscreen || flagFullscreen,
		TickRate:   flagFPS,
	}
	if flagScale > 0 {
		opts.Scale = flagScale
	}
	if opts.Title == "" {
		opts.Title = game.Title()
	}

	logger.Debug("opening window", "scale", opts.Scale, "fps", flagFPS, "difficulty", flagDifficulty)
	return window.Run(window.New(game, loader, logger), opts)
}
