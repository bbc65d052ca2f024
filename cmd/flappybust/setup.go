package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappybust/internal/assets"
	"github.com/vovakirdan/flappybust/internal/config"
	"github.com/vovakirdan/flappybust/internal/core"
	"github.com/vovakirdan/flappybust/internal/games/flappy"
	"github.com/vovakirdan/flappybust/internal/storage"
)

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("bad --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "flappybust",
		Level:           level,
	}), nil
}

// openLogFile opens the log file used while the terminal is taken over by
// the game.
func openLogFile() (*os.File, error) {
	path, err := storage.ExpandPath("~/.flappybust/flappybust.log")
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// loadConfig reads the game config and applies the --difficulty preset.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// openStore opens the score database. Failure is logged and the game runs
// without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// scoreStore hides a nil *storage.Store behind a nil interface.
func scoreStore(store *storage.Store) flappy.ScoreStore {
	if store == nil {
		return nil
	}
	return store
}

// startLoader begins loading the asset tree from --assets in the background.
func startLoader(ctx context.Context, logger *log.Logger) (*assets.Loader, error) {
	manifest, err := assets.DefaultManifest()
	if err != nil {
		return nil, err
	}
	if _, statErr := os.Stat(flagAssets); statErr != nil {
		logger.Warn("asset directory unavailable, using placeholder art", "dir", flagAssets, "err", statErr)
	}
	loader := assets.NewLoader(os.DirFS(flagAssets), manifest, logger)
	loader.Start(ctx)
	return loader, nil
}

// runtimeConfig builds the frontend-independent runtime settings.
func runtimeConfig(w, h int) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: flagFPS,
		Seed:     seed,
	}
}
