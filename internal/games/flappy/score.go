package flappy

import (
	"strconv"
	"time"

	"github.com/vovakirdan/flappybust/internal/core"
	"github.com/vovakirdan/flappybust/internal/ecs"
	"github.com/vovakirdan/flappybust/internal/storage"
)

// Score is the current and best score of the session, plus when the current
// round began.
type Score struct {
	Current   int
	Highest   int
	StartTick uint64
	StartTime float64
}

// ScoreText marks the in-play score counter.
type ScoreText struct{}

// ScoreboardText marks the numbers drawn on the game-over scoreboard.
type ScoreboardText struct{}

type scorePlugin struct {
	store ScoreStore
}

type scoreStore struct {
	ScoreStore
}

func (scorePlugin) Name() string { return "score" }

func (p scorePlugin) Build(app *ecs.App) {
	ecs.SetResource(app.World, Score{})
	ecs.SetResource(app.World, scoreStore{p.store})

	app.AddSystems(ecs.Startup, loadHighScore)
	// OnExit(Ready) runs before any plugin's OnEnter(Playing), so pipes spawn
	// against the new round.
	app.AddSystems(ecs.OnExit(Ready), startRound)
	app.AddSystems(ecs.OnEnter(Playing), spawnScoreText)
	app.AddSystemsIf(ecs.Update, ecs.InState(Playing), recordScore, updateScoreText)
	app.AddSystems(ecs.OnEnter(Over), despawnAll[ScoreText], saveRun)
	app.AddSystemsIf(ecs.Update, ecs.InState(Over), showScoreboardTexts)
	app.AddSystems(ecs.OnEnter(Ready), despawnAll[ScoreboardText])
}

func loadHighScore(w *ecs.World) {
	st := ecs.MustResource[scoreStore](w)
	if st.ScoreStore == nil {
		return
	}
	best, err := st.HighScore(GameID)
	if err != nil {
		ecs.MustResource[Logger](w).Warn("could not load high score", "err", err)
		return
	}
	ecs.MustResource[Score](w).Highest = best
}

func startRound(w *ecs.World) {
	sc := ecs.MustResource[Score](w)
	now := ecs.MustResource[ecs.Time](w)
	sc.Current = 0
	sc.StartTick, sc.StartTime = now.Ticks, now.Elapsed
}

func spawnScoreText(w *ecs.World) {
	w.Commands().Spawn(ScoreText{},
		NewTransform(0, 256, 0.2),
		Text{Value: "0", Size: 64, Anchor: core.AnchorTopCenter},
	)
}

func recordScore(w *ecs.World) {
	_, bt, ok := ecs.Single[Transform](w, ecs.With[Bird]())
	if !ok {
		return
	}
	s := ecs.MustResource[Settings](w)
	sc := ecs.MustResource[Score](w)
	for _, e := range ecs.Query[Pipe](w) {
		p, _ := ecs.Get[Pipe](w, e)
		pt, _ := ecs.Get[Transform](w, e)
		if p.Passed || bt.Translation.X+s.Bird.Width/2 <= pt.Translation.X {
			continue
		}
		sc.Current++
		if sc.Current > sc.Highest {
			sc.Highest = sc.Current
		}
		playSound(w, "score")
		p.Passed = true
		break
	}
}

func updateScoreText(w *ecs.World) {
	cur := strconv.Itoa(ecs.MustResource[Score](w).Current)
	ecs.Each(w, func(e ecs.Entity, _ *ScoreText) {
		if t, ok := ecs.Get[Text](w, e); ok {
			t.Value = cur
		}
	})
}

func saveRun(w *ecs.World) {
	st := ecs.MustResource[scoreStore](w)
	sc := ecs.MustResource[Score](w)
	if st.ScoreStore == nil || sc.Current <= 0 {
		return
	}
	run := storage.Run{
		GameID:     GameID,
		Score:      sc.Current,
		Difficulty: string(ecs.MustResource[Settings](w).Config.Difficulty.Preset()),
		Duration:   time.Duration((ecs.MustResource[ecs.Time](w).Elapsed - sc.StartTime) * float64(time.Second)),
	}
	if _, err := st.SaveRun(run); err != nil {
		ecs.MustResource[Logger](w).Warn("could not save run", "score", run.Score, "err", err)
	}
}

func showScoreboardTexts(w *ecs.World) {
	if !ecs.Live[ScoreboardDisplayed](w) || ecs.Count[ScoreboardText](w) > 0 {
		return
	}
	sc := ecs.MustResource[Score](w)
	cmd := w.Commands()
	cmd.Spawn(ScoreboardText{},
		NewTransform(63.8, 67, 0.3),
		Text{Value: strconv.Itoa(sc.Current), Size: 40},
	)
	cmd.Spawn(ScoreboardText{},
		NewTransform(63.8, 18, 0.3),
		Text{Value: strconv.Itoa(sc.Highest), Size: 40},
	)
}
