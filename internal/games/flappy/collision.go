package flappy

import (
	"github.com/vovakirdan/flappybust/internal/core"
	"github.com/vovakirdan/flappybust/internal/ecs"
)

type collisionPlugin struct{}

func (collisionPlugin) Name() string { return "collision" }

func (collisionPlugin) Build(app *ecs.App) {
	app.AddSystemsIf(ecs.Update, ecs.InAnyState(Playing, Over), checkCollision)
	app.AddSystemsIf(ecs.Update, ecs.InState(Playing), onCollision)
}

func birdBox(w *ecs.World, e ecs.Entity) core.AABB {
	s := ecs.MustResource[Settings](w)
	t, _ := ecs.Get[Transform](w, e)
	return core.BoxAt(t.Translation.X, t.Translation.Y, s.Bird.Width, s.Bird.Height)
}

func checkCollision(w *ecs.World) {
	s := ecs.MustResource[Settings](w)
	ground := groundCollider(w)
	playing := ecs.CurrentState[GameState](w) == Playing

	ecs.Each(w, func(e ecs.Entity, _ *Bird) {
		t, _ := ecs.Get[Transform](w, e)
		if t.Translation.Y-s.Bird.Height/2 <= ground {
			t.Translation.Y = ground + s.Bird.Height/2
			ecs.Send(w, Death{})
			ecs.Send(w, Collision{})
		}
		if !playing {
			return
		}

		bird := birdBox(w, e)
		for _, pe := range ecs.Query[Sprite](w, ecs.With[Transform](), pipeFilter) {
			pt, _ := ecs.Get[Transform](w, pe)
			box := core.BoxAt(pt.Translation.X, pt.Translation.Y, s.Pipes.Width, s.Pipes.Height)
			if bird.Intersects(box) {
				ecs.Send(w, Collision{})
				return
			}
		}
	})
}

// pipeFilter keeps both halves of every pipe pair.
func pipeFilter(w *ecs.World, e ecs.Entity) bool {
	return ecs.Has[Pipe](w, e) || ecs.Has[FlippedPipe](w, e)
}

func onCollision(w *ecs.World) {
	if !ecs.Live[Collision](w) {
		return
	}
	playSound(w, "die")
	playSound(w, "hit")
	ecs.SetNextState(w, Over)
}
