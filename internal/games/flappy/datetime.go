package flappy

import "github.com/vovakirdan/flappybust/internal/ecs"

// DateTime selects the day or night palette of a round.
type DateTime int

const (
	Day DateTime = iota
	Night
)

func (d DateTime) String() string {
	if d == Night {
		return "Night"
	}
	return "Day"
}

type dateTimePlugin struct{}

func (dateTimePlugin) Name() string { return "datetime" }

func (dateTimePlugin) Build(app *ecs.App) {
	ecs.SetResource(app.World, Day)
	app.AddSystems(ecs.Startup, rollDateTime)
	app.AddSystems(ecs.OnExit(Over), rollDateTime)
}

func rollDateTime(w *ecs.World) {
	rng := ecs.MustResource[Rng](w)
	dt := ecs.MustResource[DateTime](w)
	if rng.Intn(2) == 0 {
		*dt = Day
	} else {
		*dt = Night
	}
}
