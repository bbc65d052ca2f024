package flappy

import (
	"math"

	"github.com/vovakirdan/flappybust/internal/ecs"
)

// ReadyMessage marks the "get ready" banner.
type ReadyMessage struct{}

type readyMessagePlugin struct{}

func (readyMessagePlugin) Name() string { return "ready_message" }

func (readyMessagePlugin) Build(app *ecs.App) {
	app.AddSystems(ecs.OnEnter(Ready), spawnReadyMessage)
	app.AddSystems(ecs.OnEnter(Playing), despawnAll[ReadyMessage])
}

func spawnReadyMessage(w *ecs.World) {
	w.Commands().Spawn(ReadyMessage{}, NewTransform(0, 73.5, 0.1), NewSprite("ready_message"))
}

// Background is one half of the looping sky.
type Background struct {
	Secondary bool
	Offset    float64
}

type backgroundPlugin struct{}

func (backgroundPlugin) Name() string { return "background" }

func (backgroundPlugin) Build(app *ecs.App) {
	app.AddSystems(ecs.OnEnter(Ready), spawnBackground)
	app.AddSystemsIf(ecs.Update, ecs.NotInState(Over), scrollBackground)
}

func backgroundKey(dt DateTime) string {
	if dt == Night {
		return "bg_night"
	}
	return "bg_day"
}

func spawnBackground(w *ecs.World) {
	key := backgroundKey(*ecs.MustResource[DateTime](w))
	if ecs.Count[Background](w) > 0 {
		ecs.Each(w, func(e ecs.Entity, _ *Background) {
			if s, ok := ecs.Get[Sprite](w, e); ok {
				s.Key = key
			}
		})
		return
	}
	w.Commands().Spawn(Background{}, NewTransform(0, 0, 0), NewSprite(key))
	w.Commands().Spawn(Background{Secondary: true}, NewTransform(0, 0, 0), NewSprite(key))
}

func scrollBackground(w *ecs.World) {
	s := ecs.MustResource[Settings](w)
	width, _ := spriteSize("bg_day")
	ecs.Each(w, func(e ecs.Entity, bg *Background) {
		bg.Offset = math.Mod(bg.Offset-s.Scroll.BackgroundSpeed, width)
		t, _ := ecs.Get[Transform](w, e)
		t.Translation.X = bg.Offset
		if bg.Secondary {
			t.Translation.X += width
		}
	})
}

// Base is one half of the scrolling ground. Collider is the y of its top
// edge.
type Base struct {
	Secondary bool
	Offset    float64
	Collider  float64
}

type basePlugin struct{}

func (basePlugin) Name() string { return "base" }

func (basePlugin) Build(app *ecs.App) {
	app.AddSystems(ecs.OnEnter(Ready), despawnAll[Base], spawnBase)
	app.AddSystemsIf(ecs.Update, ecs.NotInState(Over), scrollBase)
}

func spawnBase(w *ecs.World) {
	s := ecs.MustResource[Settings](w)
	y := s.Scroll.BaseHeight/2 - 256
	collider := y + s.Scroll.BaseHeight/2
	for i, secondary := range []bool{false, true} {
		sprite := NewSprite("base")
		sprite.W, sprite.H = s.Scroll.BaseWidth, s.Scroll.BaseHeight
		w.Commands().Spawn(
			Base{Secondary: secondary, Collider: collider},
			NewTransform(float64(i)*s.Scroll.BaseWidth, y, 0.4),
			sprite,
		)
	}
}

func scrollBase(w *ecs.World) {
	s := ecs.MustResource[Settings](w)
	ecs.Each(w, func(e ecs.Entity, b *Base) {
		b.Offset = math.Mod(b.Offset-s.Scroll.BaseSpeed, s.Scroll.BaseWrap)
		t, _ := ecs.Get[Transform](w, e)
		t.Translation.X = b.Offset
		if b.Secondary {
			t.Translation.X += s.Scroll.BaseWrap
		}
	})
}

// groundCollider returns the base's top edge, or the default ground line
// when no base exists.
func groundCollider(w *ecs.World) float64 {
	if _, b, ok := ecs.Single[Base](w); ok {
		return b.Collider
	}
	s := ecs.MustResource[Settings](w)
	return s.Scroll.BaseHeight - 256
}

func despawnAll[T any](w *ecs.World) {
	for _, e := range ecs.Query[T](w) {
		w.Commands().Despawn(e)
	}
}
