package flappy

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flappybust/internal/assets"
	"github.com/vovakirdan/flappybust/internal/config"
	"github.com/vovakirdan/flappybust/internal/core"
	"github.com/vovakirdan/flappybust/internal/ecs"
	"github.com/vovakirdan/flappybust/internal/storage"
)

type fakeAudio struct {
	played  []core.Sound
	stopped []core.SinkID
	next    core.SinkID
}

func (a *fakeAudio) Play(s core.Sound) (core.SinkID, error) {
	a.next++
	a.played = append(a.played, s)
	return a.next, nil
}

func (a *fakeAudio) Stop(id core.SinkID) {
	a.stopped = append(a.stopped, id)
}

func (a *fakeAudio) count(key string) int {
	n := 0
	for _, s := range a.played {
		if s.Key == key {
			n++
		}
	}
	return n
}

type fakeTracker struct {
	done bool
	err  error
}

func (f *fakeTracker) Done() bool { return f.done }
func (f *fakeTracker) Err() error { return f.err }

type fakeScores struct {
	best  int
	saved []int
	runs  []storage.Run
}

func (f *fakeScores) SaveRun(r storage.Run) (int64, error) {
	f.saved = append(f.saved, r.Score)
	f.runs = append(f.runs, r)
	return int64(len(f.saved)), nil
}

func (f *fakeScores) HighScore(string) (int, error) {
	return f.best, nil
}

func newGame(t *testing.T, svc Services) *Game {
	t.Helper()
	g := New(config.Default(), nil, svc)
	g.Reset(core.RuntimeConfig{ScreenW: 288, ScreenH: 512, TickRate: 60, Seed: 42})
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func idle(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step(core.NewInputFrame())
	}
}

// runUntil steps with empty input until cond holds, failing after max ticks.
func runUntil(t *testing.T, g *Game, max int, cond func() bool) int {
	t.Helper()
	for i := 0; i < max; i++ {
		if cond() {
			return i
		}
		g.Step(core.NewInputFrame())
	}
	require.FailNow(t, "condition not reached", "after %d ticks in %s", max, g.Phase())
	return 0
}

func toReady(t *testing.T, g *Game) {
	t.Helper()
	runUntil(t, g, 5, func() bool { return g.Phase() == Ready })
}

func toPlaying(t *testing.T, g *Game) {
	t.Helper()
	toReady(t, g)
	g.Step(press(core.ActionFlap))
	g.Step(core.NewInputFrame())
	require.Equal(t, Playing, g.Phase())
}

func toOver(t *testing.T, g *Game) {
	t.Helper()
	toPlaying(t, g)
	runUntil(t, g, 400, func() bool { return g.Phase() == Over })
}

// clearPipes moves every pipe far off the bird's path.
func clearPipes(g *Game) {
	w := g.World()
	ecs.Each(w, func(e ecs.Entity, p *Pipe) {
		t, _ := ecs.Get[Transform](w, e)
		t.Translation.Y = -2000
		if up, ok := ecs.Get[Transform](w, p.Upper); ok {
			up.Translation.Y = 2000
		}
	})
}

func TestPluginOrder(t *testing.T) {
	want := []string{
		"datetime", "asset_loading", "audio", "ready_message", "background",
		"base", "bird", "pipe", "collision", "score", "game_over", "game_flow",
	}
	assert.Equal(t, want, PluginNames())

	g := newGame(t, Services{})
	assert.Equal(t, want, g.Plugins())
}

func TestLoadingWaitsForTracker(t *testing.T) {
	tracker := &fakeTracker{}
	g := newGame(t, Services{Assets: tracker})

	idle(g, 5)
	assert.Equal(t, AssetLoading, g.Phase())
	assert.Equal(t, "AssetLoading", g.State().Phase)

	tracker.err = errors.New("boom")
	idle(g, 5)
	assert.Equal(t, AssetLoading, g.Phase(), "a failed load keeps the game in loading")

	tracker.err = nil
	tracker.done = true
	idle(g, 2)
	assert.Equal(t, Ready, g.Phase())
}

func TestReadySpawnsScenery(t *testing.T) {
	g := newGame(t, Services{})
	toReady(t, g)
	w := g.World()

	assert.Equal(t, 1, ecs.Count[ReadyMessage](w))
	assert.Equal(t, 2, ecs.Count[Background](w))
	assert.Equal(t, 2, ecs.Count[Base](w))
	assert.Equal(t, 1, ecs.Count[Bird](w))
	assert.Zero(t, ecs.Count[Pipe](w))

	_, base, ok := ecs.Single[Base](w)
	require.True(t, ok)
	assert.Equal(t, -144.0, base.Collider)

	_, bird, _ := ecs.Single[Bird](w)
	assert.Contains(t, birdColors, bird.Color)
	assert.Equal(t, -2.5, bird.Velocity)

	_, bt, _ := ecs.Single[Transform](w, ecs.With[Bird]())
	assert.Equal(t, -53.0, bt.Translation.X)
	assert.InDelta(t, degToRad(25), bt.Rotation, 1e-9)
}

func TestBirdHoversInReady(t *testing.T) {
	g := newGame(t, Services{})
	toReady(t, g)
	w := g.World()

	minY, maxY := math.Inf(1), math.Inf(-1)
	for i := 0; i < 120; i++ {
		g.Step(core.NewInputFrame())
		_, bt, _ := ecs.Single[Transform](w, ecs.With[Bird]())
		minY = math.Min(minY, bt.Translation.Y)
		maxY = math.Max(maxY, bt.Translation.Y)
	}
	assert.Equal(t, Ready, g.Phase())
	assert.InDelta(t, 9-3, minY, 0.51)
	assert.InDelta(t, 9+3, maxY, 0.51)
}

func TestScrollingWraps(t *testing.T) {
	g := newGame(t, Services{})
	toReady(t, g)
	w := g.World()
	idle(g, 200)

	ecs.Each(w, func(e ecs.Entity, bg *Background) {
		assert.Greater(t, bg.Offset, -288.0)
		assert.LessOrEqual(t, bg.Offset, 0.0)
		tr, _ := ecs.Get[Transform](w, e)
		if bg.Secondary {
			assert.Equal(t, bg.Offset+288, tr.Translation.X)
		} else {
			assert.Equal(t, bg.Offset, tr.Translation.X)
		}
	})
	ecs.Each(w, func(e ecs.Entity, b *Base) {
		assert.Greater(t, b.Offset, -312.0)
		tr, _ := ecs.Get[Transform](w, e)
		if b.Secondary {
			assert.Equal(t, b.Offset+312, tr.Translation.X)
		}
	})
}

func TestStartSpawnsPipesAndTheme(t *testing.T) {
	audio := &fakeAudio{}
	g := newGame(t, Services{Audio: audio})
	toPlaying(t, g)
	w := g.World()

	assert.Zero(t, ecs.Count[ReadyMessage](w))
	assert.Equal(t, 1, ecs.Count[ScoreText](w))
	require.Equal(t, 2, ecs.Count[Pipe](w))
	assert.Equal(t, 2, ecs.Count[FlippedPipe](w))

	dt := *ecs.MustResource[DateTime](w)
	xs := []float64{}
	ecs.Each(w, func(e ecs.Entity, p *Pipe) {
		lower, _ := ecs.Get[Transform](w, e)
		upper, _ := ecs.Get[Transform](w, p.Upper)
		assert.GreaterOrEqual(t, lower.Translation.Y, -240.0)
		assert.Less(t, lower.Translation.Y, -50.0)
		assert.InDelta(t, 400, upper.Translation.Y-lower.Translation.Y, 1e-9)
		assert.Equal(t, lower.Translation.X, upper.Translation.X)

		sprite, _ := ecs.Get[Sprite](w, e)
		assert.Equal(t, pipeKey(dt), sprite.Key)
		flipped, _ := ecs.Get[Sprite](w, p.Upper)
		assert.True(t, flipped.FlipY)
		xs = append(xs, lower.Translation.X)
	})
	// one tick of movement after spawning at 314 and 489
	assert.Equal(t, []float64{313, 488}, xs)

	require.GreaterOrEqual(t, audio.count("theme"), 1)
	for _, s := range audio.played {
		if s.Key == "theme" {
			assert.True(t, s.Looped)
			assert.Equal(t, 0.2, s.Volume)
		}
	}
}

func TestFlapResetsVelocityAndPlaysSounds(t *testing.T) {
	audio := &fakeAudio{}
	g := newGame(t, Services{Audio: audio})
	toPlaying(t, g)
	w := g.World()
	idle(g, 10)

	g.Step(press(core.ActionFlap))
	_, bird, _ := ecs.Single[Bird](w)
	_, bt, _ := ecs.Single[Transform](w, ecs.With[Bird]())
	assert.Equal(t, -2.5, bird.Velocity)
	assert.InDelta(t, degToRad(25), bt.Rotation, 1e-9)

	g.Step(press(core.ActionFlapRelease))
	g.Step(core.NewInputFrame())
	assert.Equal(t, 1, audio.count("wing"), "the start press does not flap")
	assert.Equal(t, 1, audio.count("swoosh"))
}

func TestRotationClamps(t *testing.T) {
	g := newGame(t, Services{})
	toPlaying(t, g)
	w := g.World()
	clearPipes(g)
	idle(g, 60)

	_, bt, _ := ecs.Single[Transform](w, ecs.With[Bird]())
	assert.GreaterOrEqual(t, bt.Rotation, degToRad(-90))
	assert.Less(t, bt.Rotation, degToRad(25))
}

func TestGroundCollisionEndsRound(t *testing.T) {
	audio := &fakeAudio{}
	g := newGame(t, Services{Audio: audio})
	toOver(t, g)
	w := g.World()

	assert.True(t, g.State().GameOver)
	assert.Equal(t, 1, audio.count("die"))
	assert.Equal(t, 1, audio.count("hit"))
	assert.Zero(t, ecs.Count[ScoreText](w))
	assert.Equal(t, 1, ecs.Count[BirdSoul](w))
	assert.Equal(t, 1, ecs.Count[GameOverText](w))
	assert.Equal(t, 1, ecs.Count[Scoreboard](w))
	assert.Equal(t, 1, ecs.Count[RestartButton](w))
	assert.Zero(t, ecs.Count[Medal](w), "no medal below bronze")

	// the theme sink was stopped on leaving Playing
	assert.NotEmpty(t, audio.stopped)

	idle(g, 5)
	_, bt, _ := ecs.Single[Transform](w, ecs.With[Bird]())
	assert.Equal(t, -132.0, bt.Translation.Y)
}

func TestPipeCollision(t *testing.T) {
	g := newGame(t, Services{})
	toPlaying(t, g)
	w := g.World()

	_, bt, _ := ecs.Single[Transform](w, ecs.With[Bird]())
	ecs.Each(w, func(e ecs.Entity, p *Pipe) {
		pt, _ := ecs.Get[Transform](w, e)
		pt.Translation.X = bt.Translation.X + 1
		pt.Translation.Y = bt.Translation.Y
	})
	g.Step(core.NewInputFrame())
	g.Step(core.NewInputFrame())
	assert.Equal(t, Over, g.Phase())
}

func TestScoringOnePipePerTick(t *testing.T) {
	audio := &fakeAudio{}
	g := newGame(t, Services{Audio: audio})
	toPlaying(t, g)
	w := g.World()
	clearPipes(g)

	ecs.Each(w, func(e ecs.Entity, _ *Pipe) {
		pt, _ := ecs.Get[Transform](w, e)
		pt.Translation.X = -40
	})

	g.Step(press(core.ActionFlap))
	assert.Equal(t, 1, g.State().Score)
	g.Step(core.NewInputFrame())
	assert.Equal(t, 2, g.State().Score)
	g.Step(core.NewInputFrame())
	assert.Equal(t, 2, g.State().Score, "each pipe scores once")
	assert.Equal(t, 2, g.State().Highest)
	g.Step(core.NewInputFrame())
	assert.Equal(t, 2, audio.count("score"))

	_, txt, ok := ecs.Single[Text](w, ecs.With[ScoreText]())
	require.True(t, ok)
	assert.Equal(t, "2", txt.Value)
}

func TestPipesRecycle(t *testing.T) {
	g := newGame(t, Services{})
	toPlaying(t, g)
	w := g.World()
	clearPipes(g)

	first := ecs.Query[Pipe](w)[0]
	pt, _ := ecs.Get[Transform](w, first)
	pt.Translation.X = -169

	g.Step(press(core.ActionFlap))
	assert.False(t, w.Alive(first))
	assert.Equal(t, 2, ecs.Count[Pipe](w))
	assert.Equal(t, 2, ecs.Count[FlippedPipe](w))

	last := ecs.Query[Pipe](w)[1]
	lt, _ := ecs.Get[Transform](w, last)
	assert.Equal(t, 170.0, lt.Translation.X)
}

func TestNightPalette(t *testing.T) {
	g := newGame(t, Services{})
	toReady(t, g)
	w := g.World()

	*ecs.MustResource[DateTime](w) = Night
	spawnBackground(w)
	ecs.Each(w, func(e ecs.Entity, _ *Background) {
		s, _ := ecs.Get[Sprite](w, e)
		assert.Equal(t, "bg_night", s.Key)
	})

	toPlaying(t, g)
	require.Equal(t, 2, ecs.Count[Pipe](w))
	ecs.Each(w, func(e ecs.Entity, p *Pipe) {
		lower, _ := ecs.Get[Sprite](w, e)
		upper, _ := ecs.Get[Sprite](w, p.Upper)
		assert.Equal(t, "pipe_red", lower.Key)
		assert.Equal(t, "pipe_red", upper.Key)
	})
}

func TestHardPresetTightensPipes(t *testing.T) {
	cfg := config.Default()
	config.ApplyPreset(&cfg, config.DifficultyHard)
	g := New(cfg, nil, Services{})
	g.Reset(core.RuntimeConfig{ScreenW: 288, ScreenH: 512, TickRate: 60, Seed: 42})
	toPlaying(t, g)
	w := g.World()

	// level 0.7: speed 1.7, gap 80-14, spacing 175-28
	ecs.Each(w, func(e ecs.Entity, p *Pipe) {
		lower, _ := ecs.Get[Transform](w, e)
		upper, _ := ecs.Get[Transform](w, p.Upper)
		gap := upper.Translation.Y - lower.Translation.Y - 320
		assert.Less(t, gap, 80.0)
		assert.InDelta(t, 66, gap, 1e-9)
	})

	clearPipes(g)
	first := ecs.Query[Pipe](w)[0]
	pt, _ := ecs.Get[Transform](w, first)
	before := pt.Translation.X
	g.Step(press(core.ActionFlap))
	pt, _ = ecs.Get[Transform](w, first)
	delta := before - pt.Translation.X
	assert.Greater(t, delta, 1.0)
	assert.InDelta(t, 1.7, delta, 1e-9)

	p, _ := ecs.Get[Pipe](w, first)
	p.Passed = true
	pt.Translation.X = -169
	g.Step(core.NewInputFrame())
	require.False(t, w.Alive(first))
	last := ecs.Query[Pipe](w)[1]
	lt, _ := ecs.Get[Transform](w, last)
	assert.InDelta(t, 170-28, lt.Translation.X, 1e-9, "respawn moves in by the spacing reduction")
}

func TestGameOverSequenceAndRestart(t *testing.T) {
	audio := &fakeAudio{}
	g := newGame(t, Services{Audio: audio})
	toOver(t, g)
	w := g.World()

	runUntil(t, g, 2000, func() bool { return ecs.Live[RestartButtonDisplayed](w) })

	_, text, _ := ecs.Single[Transform](w, ecs.With[GameOverText]())
	assert.Equal(t, 156.0, text.Translation.Y)
	_, board, _ := ecs.Single[Transform](w, ecs.With[Scoreboard]())
	assert.Equal(t, 57.0, board.Translation.Y)
	assert.Equal(t, 2, ecs.Count[ScoreboardText](w))

	_, soul, _ := ecs.Single[Transform](w, ecs.With[BirdSoul]())
	assert.GreaterOrEqual(t, soul.Translation.Y, 267.0)
	assert.Equal(t, 1, audio.count("heaven"))

	_, button, _ := ecs.Single[Sprite](w, ecs.With[RestartButton]())
	assert.True(t, button.Visible)

	g.Step(press(core.ActionFlap))
	g.Step(core.NewInputFrame())
	assert.Equal(t, Ready, g.Phase())

	assert.Zero(t, ecs.Count[GameOverText](w))
	assert.Zero(t, ecs.Count[Scoreboard](w))
	assert.Zero(t, ecs.Count[RestartButton](w))
	assert.Zero(t, ecs.Count[ScoreboardText](w))
	assert.Zero(t, ecs.Count[BirdSoul](w))
	assert.Zero(t, ecs.Count[Pipe](w))
	assert.Equal(t, 1, ecs.Count[Bird](w))
	assert.Equal(t, 2, ecs.Count[Background](w), "backgrounds are reused")
	assert.Equal(t, 1, ecs.Count[ReadyMessage](w))
	assert.Len(t, audio.stopped, len(audio.played), "every sink is stopped exactly once")

	_, bg, _ := ecs.Single[Sprite](w, ecs.With[Background]())
	assert.Equal(t, backgroundKey(*ecs.MustResource[DateTime](w)), bg.Key)
}

func TestRestartRequiresButton(t *testing.T) {
	g := newGame(t, Services{})
	toOver(t, g)

	g.Step(press(core.ActionFlap))
	g.Step(core.NewInputFrame())
	assert.Equal(t, Over, g.Phase(), "restart is ignored until the button shows")
}

func TestRestartClickArea(t *testing.T) {
	g := newGame(t, Services{})
	toOver(t, g)
	w := g.World()
	runUntil(t, g, 2000, func() bool { return ecs.Live[RestartButtonDisplayed](w) })

	outside := press(core.ActionClick)
	outside.SetCursor(20, 290)
	g.Step(outside)
	g.Step(core.NewInputFrame())
	assert.Equal(t, Over, g.Phase())

	edge := press(core.ActionClick)
	edge.SetCursor(90, 290)
	g.Step(edge)
	g.Step(core.NewInputFrame())
	assert.Equal(t, Over, g.Phase(), "edges are outside")

	inside := press(core.ActionClick)
	inside.SetCursor(145, 290)
	g.Step(inside)
	g.Step(core.NewInputFrame())
	assert.Equal(t, Ready, g.Phase())
}

func TestMedalShrinksAndDings(t *testing.T) {
	audio := &fakeAudio{}
	g := newGame(t, Services{Audio: audio})
	toPlaying(t, g)
	w := g.World()
	clearPipes(g)
	ecs.MustResource[Score](w).Current = 25

	runUntil(t, g, 400, func() bool { return g.Phase() == Over })
	e, medal, ok := ecs.Single[Medal](w)
	require.True(t, ok)
	assert.Equal(t, "medal_silver", medal.Kind)

	mt, _ := ecs.Get[Transform](w, e)
	assert.Equal(t, 25.0, mt.Scale)
	ms, _ := ecs.Get[Sprite](w, e)
	assert.False(t, ms.Visible)

	runUntil(t, g, 1000, func() bool { return ecs.Live[MedalDisplayed](w) })
	assert.True(t, ms.Visible)
	assert.Equal(t, 1.0, mt.Scale)
	assert.Equal(t, 1, audio.count("ding"))
}

func TestMedalFor(t *testing.T) {
	m := config.Default().Medals
	tests := []struct {
		score int
		want  string
	}{
		{0, ""},
		{9, ""},
		{10, "medal_bronze"},
		{19, "medal_bronze"},
		{20, "medal_silver"},
		{30, "medal_gold"},
		{39, "medal_gold"},
		{40, "medal_platinum"},
		{400, "medal_platinum"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, medalFor(m, tc.score), "score %d", tc.score)
	}
}

func TestHighScorePersistence(t *testing.T) {
	store := &fakeScores{best: 7}
	g := newGame(t, Services{Scores: store})
	toPlaying(t, g)
	assert.Equal(t, 7, g.State().Highest)

	clearPipes(g)
	ecs.MustResource[Score](g.World()).Current = 3
	runUntil(t, g, 400, func() bool { return g.Phase() == Over })
	assert.Equal(t, []int{3}, store.saved)
	require.Len(t, store.runs, 1)
	assert.Equal(t, GameID, store.runs[0].GameID)
	assert.Equal(t, "fixed", store.runs[0].Difficulty)
	assert.Greater(t, int64(store.runs[0].Duration), int64(0))

	g2 := newGame(t, Services{Scores: store})
	toOver(t, g2)
	assert.Equal(t, []int{3}, store.saved, "zero scores are not saved")
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newGame(t, Services{})
	toPlaying(t, g)
	w := g.World()
	ticks := ecs.MustResource[ecs.Time](w).Ticks

	res := g.Step(press(core.ActionPause))
	assert.True(t, res.State.Paused)
	idle(g, 10)
	assert.Equal(t, ticks, ecs.MustResource[ecs.Time](w).Ticks)

	g.Step(press(core.ActionPause))
	assert.False(t, g.State().Paused)
	assert.Equal(t, ticks+1, ecs.MustResource[ecs.Time](w).Ticks)
}

func TestQuit(t *testing.T) {
	g := newGame(t, Services{})
	assert.True(t, g.Step(press(core.ActionQuit)).Quit)
}

func TestDeterminism(t *testing.T) {
	script := func(i int) core.InputFrame {
		if i%18 == 0 {
			return press(core.ActionFlap)
		}
		return core.NewInputFrame()
	}
	run := func() ([]core.Drawable, core.GameState) {
		g := newGame(t, Services{})
		for i := 0; i < 600; i++ {
			g.Step(script(i))
		}
		return g.Scene(), g.State()
	}

	scene1, state1 := run()
	scene2, state2 := run()
	assert.Equal(t, state1, state2)
	assert.Equal(t, scene1, scene2)
}

func TestSceneIsSortedAndVisibleOnly(t *testing.T) {
	g := newGame(t, Services{})
	toOver(t, g)

	scene := g.Scene()
	require.NotEmpty(t, scene)
	for i := 1; i < len(scene); i++ {
		assert.LessOrEqual(t, scene[i-1].Z, scene[i].Z)
	}
	for _, d := range scene {
		assert.NotEqual(t, "restart_button", d.Key, "hidden sprites are not drawn")
		assert.NotEqual(t, "bird_soul", d.Key)
	}
}

func TestSpriteSizesMatchManifest(t *testing.T) {
	m, err := assets.DefaultManifest()
	require.NoError(t, err)
	for key, size := range spriteSizes {
		w, h, err := m.Size(key)
		require.NoError(t, err, key)
		assert.Equal(t, size[0], float64(w), key)
		assert.Equal(t, size[1], float64(h), key)
	}
}

type fakeTints map[string]color.RGBA

func (f fakeTints) Tint(key string) (color.RGBA, bool) {
	c, ok := f[key]
	return c, ok
}

// cellColors returns the colors drawn with rune r.
func cellColors(s *core.Screen, r rune) map[core.Color]bool {
	out := make(map[core.Color]bool)
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune == r {
				out[c.Color] = true
			}
		}
	}
	return out
}

func TestRenderUsesArtTints(t *testing.T) {
	screen := core.NewScreen(72, 40)

	plain := newGame(t, Services{})
	toReady(t, plain)
	plain.Render(screen)
	assert.Equal(t, map[core.Color]bool{core.ColorBrown: true}, cellColors(screen, '▒'))

	tinted := newGame(t, Services{Tints: fakeTints{
		"base":     {R: 230, G: 220, B: 150, A: 255},
		"bg_day":   {R: 250, A: 255},
		"bg_night": {R: 250, A: 255},
	}})
	toReady(t, tinted)
	tinted.Render(screen)
	assert.Equal(t, map[core.Color]bool{core.ColorWhite: true}, cellColors(screen, '▒'),
		"base follows its art")
	assert.False(t, cellColors(screen, ' ')[core.ColorRed], "background fills keep their palette")
}

func TestRender(t *testing.T) {
	g := newGame(t, Services{})
	screen := core.NewScreen(72, 40)

	g.Render(screen)
	assert.Contains(t, screen.String(), "LOADING")

	toReady(t, g)
	g.Render(screen)
	out := screen.String()
	assert.Contains(t, out, "GET READY")
	assert.Contains(t, out, "▒")
	assert.Contains(t, out, "●")

	g.Step(press(core.ActionPause))
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")
}
