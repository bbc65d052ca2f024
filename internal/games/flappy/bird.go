package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flappybust/internal/core"
	"github.com/vovakirdan/flappybust/internal/ecs"
)

// BouncingState is the direction of the idle hover in Ready.
type BouncingState int

const (
	BounceUp BouncingState = iota
	BounceDown
)

var birdColors = []string{"red", "blue", "yellow"}

var birdFrames = []string{"up", "mid", "down"}

// Bird is the player. Velocity is positive while falling.
type Bird struct {
	Color      string
	Velocity   float64
	Gravity    float64
	Frame      int
	FrameTimer float64
	Bouncing   BouncingState
}

func (b *Bird) key() string {
	return fmt.Sprintf("bird_%s_%s", b.Color, birdFrames[b.Frame])
}

// BirdSoul rises from the crash site once the medal is shown.
type BirdSoul struct {
	SpawnY float64
	Rising bool
}

type birdPlugin struct{}

func (birdPlugin) Name() string { return "bird" }

func (birdPlugin) Build(app *ecs.App) {
	app.AddSystems(ecs.OnEnter(Ready), despawnAll[Bird], despawnAll[BirdSoul], spawnBird)
	app.AddSystemsIf(ecs.Update, ecs.InState(Ready), bounceBird)
	app.AddSystemsIf(ecs.Update, ecs.NotInState(Ready), fallBird)
	app.AddSystemsIf(ecs.Update, ecs.InState(Playing), flyBird)
	app.AddSystemsIf(ecs.Update, ecs.NotInState(Over), flapAnimation)
	app.AddSystems(ecs.OnEnter(Over), spawnSoul)
	app.AddSystemsIf(ecs.Update, ecs.InState(Over), riseSoul)
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}

func spawnBird(w *ecs.World) {
	s := ecs.MustResource[Settings](w)
	rng := ecs.MustResource[Rng](w)

	bird := Bird{
		Color:    birdColors[rng.Intn(len(birdColors))],
		Velocity: s.Bird.FlapVelocity,
		Gravity:  s.Bird.Gravity,
	}
	t := NewTransform(s.Bird.SpawnX, s.Bird.SpawnY, 0.3)
	t.Rotation = degToRad(s.Bird.MaxRotationDeg)
	sprite := NewSprite(bird.key())
	sprite.W, sprite.H = s.Bird.Width, s.Bird.Height

	w.Commands().Spawn(bird, t, sprite)
}

func bounceBird(w *ecs.World) {
	s := ecs.MustResource[Settings](w)
	ecs.Each(w, func(e ecs.Entity, b *Bird) {
		t, _ := ecs.Get[Transform](w, e)
		d := t.Translation.Y - s.Bird.SpawnY
		if d >= s.Bird.BounceRadius {
			b.Bouncing = BounceDown
		} else if d <= -s.Bird.BounceRadius {
			b.Bouncing = BounceUp
		}
		if b.Bouncing == BounceUp {
			t.Translate(0, s.Bird.BounceSpeed)
		} else {
			t.Translate(0, -s.Bird.BounceSpeed)
		}
	})
}

func fallBird(w *ecs.World) {
	s := ecs.MustResource[Settings](w)
	dead := ecs.Live[Death](w)
	ecs.Each(w, func(e ecs.Entity, b *Bird) {
		t, _ := ecs.Get[Transform](w, e)
		t.Rotation = core.ClampF(t.Rotation-s.Bird.RotationStep,
			degToRad(s.Bird.MinRotationDeg), degToRad(s.Bird.MaxRotationDeg))
		if dead {
			return
		}
		b.Velocity += b.Gravity
		t.Translate(0, -b.Velocity)
	})
}

func flyBird(w *ecs.World) {
	s := ecs.MustResource[Settings](w)
	in := ecs.MustResource[Input](w)
	pressed := in.JustPressed(core.ActionFlap, core.ActionClick)
	released := in.JustPressed(core.ActionFlapRelease, core.ActionClickRelease)

	ecs.Each(w, func(e ecs.Entity, b *Bird) {
		if pressed {
			playSound(w, "wing")
			b.Velocity = s.Bird.FlapVelocity
			t, _ := ecs.Get[Transform](w, e)
			t.Rotation = degToRad(s.Bird.MaxRotationDeg)
		}
		if released {
			playSound(w, "swoosh")
		}
	})
}

func flapAnimation(w *ecs.World) {
	s := ecs.MustResource[Settings](w)
	dt := ecs.MustResource[ecs.Time](w).Delta
	ecs.Each(w, func(e ecs.Entity, b *Bird) {
		b.FrameTimer += dt
		if b.FrameTimer < s.Bird.FrameSeconds {
			return
		}
		b.FrameTimer -= s.Bird.FrameSeconds
		b.Frame = (b.Frame + 1) % len(birdFrames)
		if sprite, ok := ecs.Get[Sprite](w, e); ok {
			sprite.Key = b.key()
		}
	})
}

func spawnSoul(w *ecs.World) {
	s := ecs.MustResource[Settings](w)
	y := groundCollider(w) + s.Bird.Height/2
	sprite := NewSprite("bird_soul")
	sprite.Visible = false
	w.Commands().Spawn(BirdSoul{SpawnY: y}, NewTransform(s.Bird.SpawnX, y, 0.5), sprite)
}

func riseSoul(w *ecs.World) {
	if !ecs.Live[MedalDisplayed](w) {
		return
	}
	s := ecs.MustResource[Settings](w)
	ecs.Each(w, func(e ecs.Entity, soul *BirdSoul) {
		t, _ := ecs.Get[Transform](w, e)
		if sprite, ok := ecs.Get[Sprite](w, e); ok {
			sprite.Visible = true
		}
		t.Translate(0, s.Bird.SoulSpeed)
		if !soul.Rising {
			soul.Rising = true
			playSound(w, "heaven")
		}
		if t.Translation.Y >= s.Bird.HeavenY {
			ecs.Send(w, InTheHeaven{})
		}
	})
}
