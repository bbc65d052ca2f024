package flappy

import (
	"github.com/vovakirdan/flappybust/internal/config"
	"github.com/vovakirdan/flappybust/internal/ecs"
)

// GameOverText is the falling "game over" banner.
type GameOverText struct {
	Velocity float64
	Gravity  float64
	Bounce   bool
}

// Scoreboard is the rising results panel.
type Scoreboard struct {
	Velocity float64
	Gravity  float64
}

// RestartButton is shown once the soul reaches heaven.
type RestartButton struct{}

// Medal is the award for the round's score.
type Medal struct {
	Kind string
}

// medalFor returns the medal sprite key for a score, or "" below bronze.
func medalFor(m config.MedalConfig, score int) string {
	switch {
	case score >= m.Platinum:
		return "medal_platinum"
	case score >= m.Gold:
		return "medal_gold"
	case score >= m.Silver:
		return "medal_silver"
	case score >= m.Bronze:
		return "medal_bronze"
	default:
		return ""
	}
}

type gameOverPlugin struct{}

func (gameOverPlugin) Name() string { return "game_over" }

func (gameOverPlugin) Build(app *ecs.App) {
	app.AddSystems(ecs.OnEnter(Over), spawnGameOver)
	app.AddSystemsIf(ecs.Update, ecs.InState(Over),
		dropGameOverText, raiseScoreboard, revealMedal, revealRestartButton)
	app.AddSystems(ecs.OnExit(Over),
		despawnAll[Medal], despawnAll[GameOverText], despawnAll[Scoreboard], despawnAll[RestartButton])
}

func spawnGameOver(w *ecs.World) {
	s := ecs.MustResource[Settings](w)
	cmd := w.Commands()

	cmd.Spawn(GameOverText{Gravity: s.GameOver.TextGravity, Bounce: true},
		NewTransform(0, s.GameOver.TextStartY, 0.2), NewSprite("game_over"))
	cmd.Spawn(Scoreboard{Gravity: s.GameOver.BoardGravity},
		NewTransform(0, s.GameOver.BoardStartY, 0.2), NewSprite("scoreboard"))

	button := NewSprite("restart_button")
	button.Visible = false
	cmd.Spawn(RestartButton{}, NewTransform(0, s.GameOver.RestartButtonY, 0.2), button)

	if key := medalFor(s.Medals, ecs.MustResource[Score](w).Current); key != "" {
		t := NewTransform(-65, 47, 0.4)
		t.Scale = s.GameOver.MedalScale
		medal := NewSprite(key)
		medal.Visible = false
		cmd.Spawn(Medal{Kind: key}, t, medal)
	}
}

func dropGameOverText(w *ecs.World) {
	s := ecs.MustResource[Settings](w)
	ecs.Each(w, func(e ecs.Entity, g *GameOverText) {
		t, _ := ecs.Get[Transform](w, e)
		g.Velocity += g.Gravity
		t.Translate(0, -g.Velocity)
		if t.Translation.Y >= s.GameOver.TextRestY {
			return
		}
		if g.Bounce {
			g.Velocity *= -s.GameOver.TextBounce
			g.Bounce = false
			return
		}
		t.Translation.Y = s.GameOver.TextRestY
		ecs.Send(w, GameOverTextDisplayed{})
	})
}

func raiseScoreboard(w *ecs.World) {
	s := ecs.MustResource[Settings](w)
	ecs.Each(w, func(e ecs.Entity, b *Scoreboard) {
		t, _ := ecs.Get[Transform](w, e)
		b.Velocity += b.Gravity
		y := t.Translation.Y + b.Velocity
		if y < s.GameOver.BoardStartY {
			y = s.GameOver.BoardStartY
		}
		if y > s.GameOver.BoardRestY {
			y = s.GameOver.BoardRestY
		}
		t.Translation.Y = y
		if y == s.GameOver.BoardRestY {
			ecs.Send(w, ScoreboardDisplayed{})
		}
	})
}

func revealMedal(w *ecs.World) {
	if !ecs.Live[ScoreboardDisplayed](w) || !ecs.Live[Death](w) || !ecs.Live[GameOverTextDisplayed](w) {
		return
	}
	e, _, ok := ecs.Single[Medal](w)
	if !ok {
		ecs.Send(w, MedalDisplayed{})
		return
	}
	t, _ := ecs.Get[Transform](w, e)
	if sprite, ok := ecs.Get[Sprite](w, e); ok {
		sprite.Visible = true
	}
	if t.Scale > 1 {
		t.Scale--
		if t.Scale == 2 {
			playSound(w, "ding")
		}
	}
	if t.Scale <= 1 {
		t.Scale = 1
		ecs.Send(w, MedalDisplayed{})
	}
}

func revealRestartButton(w *ecs.World) {
	if !ecs.Live[InTheHeaven](w) {
		return
	}
	ecs.Each(w, func(e ecs.Entity, _ *RestartButton) {
		if sprite, ok := ecs.Get[Sprite](w, e); ok {
			sprite.Visible = true
		}
		ecs.Send(w, RestartButtonDisplayed{})
	})
}
