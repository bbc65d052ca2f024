package ecs

import "fmt"

// System is one unit of game logic.
type System func(w *World)

// Plugin bundles the resources, events and systems of one feature.
type Plugin interface {
	Name() string
	Build(app *App)
}

// Time is the clock resource maintained by App.Update.
type Time struct {
	Delta   float64 // seconds covered by the current tick
	Elapsed float64
	Ticks   uint64
}

type entry struct {
	run  System
	cond Condition
}

// App drives a World through its schedules.
type App struct {
	World *World

	schedules    map[ScheduleLabel][]entry
	plugins      []string
	eventUpdates []func(w *World)
	stateInits   []func(a *App)
	stateApply   []func(a *App)
	onTransition func(Transition)
	started      bool
}

// NewApp creates an app with an empty world and a Time resource.
func NewApp() *App {
	a := &App{
		World:     NewWorld(),
		schedules: make(map[ScheduleLabel][]entry),
	}
	SetResource(a.World, Time{})
	return a
}

// AddPlugins builds each plugin in order. Adding the same plugin name twice
// panics.
func (a *App) AddPlugins(plugins ...Plugin) *App {
	for _, p := range plugins {
		for _, name := range a.plugins {
			if name == p.Name() {
				panic(fmt.Sprintf("ecs: plugin %q already added", name))
			}
		}
		a.plugins = append(a.plugins, p.Name())
		p.Build(a)
	}
	return a
}

// Plugins returns plugin names in build order.
func (a *App) Plugins() []string {
	out := make([]string, len(a.plugins))
	copy(out, a.plugins)
	return out
}

// AddSystems appends systems to a schedule. Systems in a schedule run in
// registration order.
func (a *App) AddSystems(label ScheduleLabel, systems ...System) *App {
	return a.AddSystemsIf(label, nil, systems...)
}

// AddSystemsIf appends systems that only run while cond passes.
func (a *App) AddSystemsIf(label ScheduleLabel, cond Condition, systems ...System) *App {
	for _, s := range systems {
		a.schedules[label] = append(a.schedules[label], entry{run: s, cond: cond})
	}
	return a
}

// OnTransition installs a hook called after every state switch.
func (a *App) OnTransition(fn func(Transition)) {
	a.onTransition = fn
}

// AddEvent registers an event type and its per-tick buffer rotation.
func AddEvent[T any](a *App) {
	if _, ok := Resource[Events[T]](a.World); ok {
		return
	}
	SetResource(a.World, Events[T]{})
	a.eventUpdates = append(a.eventUpdates, func(w *World) {
		MustResource[Events[T]](w).Update()
	})
}

// Update advances the world by one tick of dt seconds: pending state
// transitions, the Update schedule, then event buffer rotation.
func (a *App) Update(dt float64) {
	if !a.started {
		a.started = true
		a.runSchedule(Startup)
		for _, enter := range a.stateInits {
			enter(a)
		}
	}

	clock := MustResource[Time](a.World)
	clock.Delta = dt
	clock.Elapsed += dt
	clock.Ticks++

	for _, apply := range a.stateApply {
		apply(a)
	}

	a.runSchedule(Update)

	for _, rotate := range a.eventUpdates {
		rotate(a.World)
	}
}

func (a *App) runSchedule(label ScheduleLabel) {
	for _, e := range a.schedules[label] {
		if e.cond == nil || e.cond(a.World) {
			e.run(a.World)
		}
		a.World.commands.Apply()
	}
}
