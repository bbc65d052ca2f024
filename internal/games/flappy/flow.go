package flappy

import (
	"github.com/vovakirdan/flappybust/internal/core"
	"github.com/vovakirdan/flappybust/internal/ecs"
)

// restartArea is the restart button's hit box in field pixels, open on every
// edge.
var restartArea = core.AABB{MinX: 90, MinY: 273, MaxX: 200, MaxY: 310}

type assetTracker struct {
	AssetTracker
	reported bool
}

type loadingPlugin struct {
	tracker AssetTracker
}

func (loadingPlugin) Name() string { return "asset_loading" }

func (p loadingPlugin) Build(app *ecs.App) {
	ecs.SetResource(app.World, assetTracker{AssetTracker: p.tracker})
	app.AddSystemsIf(ecs.Update, ecs.InState(AssetLoading), pollAssets)
}

func pollAssets(w *ecs.World) {
	tr := ecs.MustResource[assetTracker](w)
	if tr.AssetTracker == nil {
		ecs.SetNextState(w, Ready)
		return
	}
	if err := tr.Err(); err != nil {
		if !tr.reported {
			tr.reported = true
			ecs.MustResource[Logger](w).Error("asset loading failed", "err", err)
		}
		return
	}
	if tr.Done() {
		ecs.SetNextState(w, Ready)
	}
}

type flowPlugin struct{}

func (flowPlugin) Name() string { return "game_flow" }

func (flowPlugin) Build(app *ecs.App) {
	app.AddSystemsIf(ecs.Update, ecs.InState(Ready), startGame)
	app.AddSystemsIf(ecs.Update, ecs.InState(Over), restartGame)
}

func startGame(w *ecs.World) {
	if ecs.MustResource[Input](w).JustPressed(core.ActionFlap, core.ActionClick) {
		ecs.SetNextState(w, Playing)
	}
}

func restartGame(w *ecs.World) {
	if !ecs.Live[RestartButtonDisplayed](w) {
		return
	}
	in := ecs.MustResource[Input](w)
	if in.JustPressed(core.ActionFlap) {
		ecs.SetNextState(w, Ready)
		return
	}
	c := in.Frame.Cursor
	if in.JustPressed(core.ActionClick) && c.Valid && restartArea.ContainsOpen(c.X, c.Y) {
		ecs.SetNextState(w, Ready)
	}
}
