package flappy

import (
	"github.com/vovakirdan/flappybust/internal/config"
	"github.com/vovakirdan/flappybust/internal/ecs"
)

// Pipe is the lower pipe of a pair. Upper is its flipped partner.
type Pipe struct {
	Upper  ecs.Entity
	Passed bool
}

// FlippedPipe marks the upper pipe of a pair.
type FlippedPipe struct{}

// Despawn threshold and respawn position of a pair, in world x.
const (
	pipeDespawnX = -170
	pipeRespawnX = 144 + 26
	pipeFirstX   = 288 + 26
)

type pipePlugin struct{}

func (pipePlugin) Name() string { return "pipe" }

func (pipePlugin) Build(app *ecs.App) {
	app.AddSystems(ecs.OnEnter(Ready), despawnAll[Pipe], despawnAll[FlippedPipe])
	app.AddSystems(ecs.OnEnter(Playing), spawnInitialPipes)
	app.AddSystemsIf(ecs.Update, ecs.InState(Playing), movePipes)
}

func pipeKey(dt DateTime) string {
	if dt == Night {
		return "pipe_red"
	}
	return "pipe_green"
}

// roundProgress measures the round for the difficulty curve.
func roundProgress(w *ecs.World) config.Progress {
	var p config.Progress
	if sc, ok := ecs.Resource[Score](w); ok {
		p.Score = sc.Current
		p.Ticks = int(ecs.MustResource[ecs.Time](w).Ticks - sc.StartTick)
	}
	return p
}

func spawnInitialPipes(w *ecs.World) {
	s := ecs.MustResource[Settings](w)
	spacing := s.Difficulty.Spacing(s.Pipes.Spacing, s.Pipes.Width*2, roundProgress(w))
	for i := 0; i < s.Pipes.InitialPairs; i++ {
		spawnPipePair(w, pipeFirstX+spacing*float64(i))
	}
}

func spawnPipePair(w *ecs.World, x float64) {
	s := ecs.MustResource[Settings](w)
	rng := ecs.MustResource[Rng](w)
	key := pipeKey(*ecs.MustResource[DateTime](w))
	gap := s.Difficulty.Gap(s.Pipes.Gap, s.Bird.Height*2, roundProgress(w))

	y := s.Pipes.MinY + rng.Float64()*(s.Pipes.MaxY-s.Pipes.MinY)

	lower := NewSprite(key)
	lower.W, lower.H = s.Pipes.Width, s.Pipes.Height
	upper := lower
	upper.FlipY = true

	cmd := w.Commands()
	top := cmd.Spawn(FlippedPipe{}, NewTransform(x, y+gap+s.Pipes.Height, 0.1), upper)
	cmd.Spawn(Pipe{Upper: top}, NewTransform(x, y, 0.1), lower)
}

func movePipes(w *ecs.World) {
	s := ecs.MustResource[Settings](w)
	progress := roundProgress(w)
	speed := s.Difficulty.Speed(s.Pipes.Speed, progress)
	spacing := s.Difficulty.Spacing(s.Pipes.Spacing, s.Pipes.Width*2, progress)

	ecs.Each(w, func(e ecs.Entity, p *Pipe) {
		t, _ := ecs.Get[Transform](w, e)
		t.Translate(-speed, 0)
		if up, ok := ecs.Get[Transform](w, p.Upper); ok {
			up.Translate(-speed, 0)
		}
		if t.Translation.X <= pipeDespawnX {
			spawnPipePair(w, pipeRespawnX-(s.Pipes.Spacing-spacing))
			w.Commands().Despawn(e)
			w.Commands().Despawn(p.Upper)
		}
	})
}
