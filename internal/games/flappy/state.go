package flappy

import (
	"image/color"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappybust/internal/config"
	"github.com/vovakirdan/flappybust/internal/core"
	"github.com/vovakirdan/flappybust/internal/storage"
)

// GameState is the top-level state machine.
type GameState int

const (
	AssetLoading GameState = iota
	Ready
	Playing
	Over
)

func (s GameState) String() string {
	switch s {
	case AssetLoading:
		return "AssetLoading"
	case Ready:
		return "Ready"
	case Playing:
		return "Playing"
	case Over:
		return "Over"
	default:
		return "Unknown"
	}
}

// Events exchanged between plugins.
type (
	Death                  struct{}
	Collision              struct{}
	GameOverTextDisplayed  struct{}
	ScoreboardDisplayed    struct{}
	MedalDisplayed         struct{}
	InTheHeaven            struct{}
	RestartButtonDisplayed struct{}
)

// Input is the input frame of the current tick.
type Input struct {
	Frame core.InputFrame
}

// JustPressed reports whether any of the actions fired this tick.
func (in *Input) JustPressed(actions ...core.Action) bool {
	for _, a := range actions {
		if in.Frame.Has(a) {
			return true
		}
	}
	return false
}

// Rng is the seeded random source of one game.
type Rng struct {
	*rand.Rand
}

// Settings carries the tuning and the difficulty curve.
type Settings struct {
	config.Config
	Difficulty *config.Curve
}

// Logger is the game's logger resource.
type Logger struct {
	*log.Logger
}

// AssetTracker reports background asset loading.
type AssetTracker interface {
	Done() bool
	Err() error
}

// ScoreStore keeps the run history.
type ScoreStore interface {
	SaveRun(r storage.Run) (int64, error)
	HighScore(gameID string) (int, error)
}

// TintSource reports the dominant colour of a sprite's art.
type TintSource interface {
	Tint(key string) (color.RGBA, bool)
}

// Services holds the optional collaborators supplied by the frontend.
type Services struct {
	Audio  core.AudioBackend
	Assets AssetTracker
	Scores ScoreStore
	Tints  TintSource // terminal colours follow the loaded art when set
}
