// Package flappy implements Flappybust, a Flappy Bird clone built from ECS
// plugins gated by a four-state machine: AssetLoading, Ready, Playing, Over.
package flappy

import (
	"cmp"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/slices"

	"github.com/vovakirdan/flappybust/internal/config"
	"github.com/vovakirdan/flappybust/internal/core"
	"github.com/vovakirdan/flappybust/internal/ecs"
)

// GameID is the score storage key.
const GameID = "flappybust"

// Game wraps the ECS app behind the frontend interface.
type Game struct {
	cfg    config.Config
	logger *log.Logger
	svc    Services

	app     *ecs.App
	runtime core.RuntimeConfig
	paused  bool
}

var _ core.Game = (*Game)(nil)

// New creates a game. A nil logger discards output; zero Services run
// without sound, asset tracking or persistence.
func New(cfg config.Config, logger *log.Logger, svc Services) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{cfg: cfg, logger: logger, svc: svc}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappybust"
}

// plugins returns the game's plugins in build order. Update systems run in
// this order.
func (g *Game) plugins() []ecs.Plugin {
	return []ecs.Plugin{
		dateTimePlugin{},
		loadingPlugin{tracker: g.svc.Assets},
		audioPlugin{backend: g.svc.Audio},
		readyMessagePlugin{},
		backgroundPlugin{},
		basePlugin{},
		birdPlugin{},
		pipePlugin{},
		collisionPlugin{},
		scorePlugin{store: g.svc.Scores},
		gameOverPlugin{},
		flowPlugin{},
	}
}

// PluginNames lists the game's plugins in build order.
func PluginNames() []string {
	g := New(config.Default(), nil, Services{})
	out := make([]string, 0, 12)
	for _, p := range g.plugins() {
		out = append(out, p.Name())
	}
	return out
}

// Reset builds a fresh world. The first Step runs startup systems and
// enters AssetLoading.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.paused = false

	app := ecs.NewApp()
	ecs.SetResource(app.World, Settings{
		Config:     g.cfg,
		Difficulty: config.NewCurve(g.cfg.Difficulty),
	})
	ecs.SetResource(app.World, Rng{rand.New(rand.NewSource(cfg.Seed))})
	ecs.SetResource(app.World, Logger{g.logger})
	ecs.SetResource(app.World, Input{Frame: core.NewInputFrame()})

	ecs.AddState(app, AssetLoading)
	ecs.AddEvent[Death](app)
	ecs.AddEvent[Collision](app)
	ecs.AddEvent[GameOverTextDisplayed](app)
	ecs.AddEvent[ScoreboardDisplayed](app)
	ecs.AddEvent[MedalDisplayed](app)
	ecs.AddEvent[InTheHeaven](app)
	ecs.AddEvent[RestartButtonDisplayed](app)

	app.AddPlugins(g.plugins()...)
	app.OnTransition(func(t ecs.Transition) {
		g.logger.Debug("state transition", "from", t.From, "to", t.To)
	})
	g.app = app
}

// Plugins returns the names of the built plugins.
func (g *Game) Plugins() []string {
	if g.app == nil {
		return nil
	}
	return g.app.Plugins()
}

// World exposes the ECS world for inspection.
func (g *Game) World() *ecs.World {
	return g.app.World
}

// Phase returns the active state.
func (g *Game) Phase() GameState {
	if g.app == nil {
		return AssetLoading
	}
	st, ok := ecs.Resource[ecs.State[GameState]](g.app.World)
	if !ok {
		return AssetLoading
	}
	return st.Get()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.app == nil {
		g.Reset(core.DefaultConfig())
	}
	if in.Has(core.ActionQuit) {
		return core.StepResult{State: g.State(), Quit: true}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	ecs.MustResource[Input](g.app.World).Frame = in
	g.app.Update(g.runtime.TickSeconds())
	return core.StepResult{State: g.State()}
}

// State returns the current score and phase.
func (g *Game) State() core.GameState {
	st := core.GameState{Paused: g.paused}
	if g.app == nil {
		st.Phase = AssetLoading.String()
		return st
	}
	phase := g.Phase()
	sc := ecs.MustResource[Score](g.app.World)
	st.Score = sc.Current
	st.Highest = sc.Highest
	st.Phase = phase.String()
	st.GameOver = phase == Over
	return st
}

// Scene returns every visible sprite and text, back to front. Equal layers
// keep spawn order.
func (g *Game) Scene() []core.Drawable {
	if g.app == nil {
		return nil
	}
	w := g.app.World
	var out []core.Drawable

	for _, e := range ecs.Query[Transform](w) {
		t, _ := ecs.Get[Transform](w, e)
		d := core.Drawable{
			X:        t.Translation.X,
			Y:        t.Translation.Y,
			Z:        t.Translation.Z,
			Rotation: t.Rotation,
			Scale:    t.Scale,
		}
		if s, ok := ecs.Get[Sprite](w, e); ok {
			if !s.Visible {
				continue
			}
			d.Key, d.W, d.H, d.FlipY = s.Key, s.W, s.H, s.FlipY
			out = append(out, d)
			continue
		}
		if txt, ok := ecs.Get[Text](w, e); ok {
			d.Text, d.TextSize, d.Anchor = txt.Value, txt.Size, txt.Anchor
			out = append(out, d)
		}
	}

	slices.SortStableFunc(out, func(a, b core.Drawable) int {
		return cmp.Compare(a.Z, b.Z)
	})
	return out
}
