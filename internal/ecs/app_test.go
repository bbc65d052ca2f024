package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type phase int

const (
	phaseLoading phase = iota
	phaseRunning
	phaseDone
)

type ping struct{ N int }

type recorder struct {
	name string
	log  *[]string
}

func (r recorder) Name() string { return r.name }

func (r recorder) Build(app *App) {
	app.AddSystems(Startup, func(*World) { *r.log = append(*r.log, r.name+":startup") })
}

func TestPluginsBuildInOrder(t *testing.T) {
	var log []string
	app := NewApp()
	app.AddPlugins(recorder{"a", &log}, recorder{"b", &log})

	assert.Equal(t, []string{"a", "b"}, app.Plugins())
	app.Update(1.0 / 60)
	assert.Equal(t, []string{"a:startup", "b:startup"}, log)

	assert.Panics(t, func() { app.AddPlugins(recorder{"a", &log}) })
}

func TestEventsLiveTwoTicks(t *testing.T) {
	app := NewApp()
	AddEvent[ping](app)

	sendOnFirst := true
	var liveSeen []bool
	app.AddSystems(Update, func(w *World) {
		if sendOnFirst {
			Send(w, ping{N: 1})
			sendOnFirst = false
		}
	}, func(w *World) {
		liveSeen = append(liveSeen, Live[ping](w))
	})

	app.Update(0)
	app.Update(0)
	app.Update(0)

	assert.Equal(t, []bool{true, true, false}, liveSeen)
}

func TestReaderSeesEachEventOnce(t *testing.T) {
	app := NewApp()
	AddEvent[ping](app)

	var r Reader[ping]
	var got []int
	tick := 0
	app.AddSystems(Update, func(w *World) {
		tick++
		if tick <= 2 {
			Send(w, ping{N: tick})
		}
		for _, p := range r.Read(MustResource[Events[ping]](w)) {
			got = append(got, p.N)
		}
	})

	for i := 0; i < 4; i++ {
		app.Update(0)
	}
	assert.Equal(t, []int{1, 2}, got)
}

func TestEventsClearAndLiveOrder(t *testing.T) {
	var ev Events[ping]
	ev.Send(ping{1})
	ev.Update()
	ev.Send(ping{2})

	assert.Equal(t, []ping{{1}, {2}}, ev.Live())
	assert.Equal(t, 2, ev.Len())

	ev.Clear()
	assert.False(t, ev.Any())
}

func TestStateTransitions(t *testing.T) {
	app := NewApp()
	AddState(app, phaseLoading)

	var log []string
	var transitions []Transition
	app.OnTransition(func(tr Transition) { transitions = append(transitions, tr) })

	app.AddSystems(OnEnter(phaseLoading), func(*World) { log = append(log, "enter loading") })
	app.AddSystems(OnExit(phaseLoading), func(*World) { log = append(log, "exit loading") })
	app.AddSystems(OnEnter(phaseRunning), func(*World) { log = append(log, "enter running") })
	app.AddSystemsIf(Update, InState(phaseLoading), func(w *World) {
		log = append(log, "update loading")
		SetNextState(w, phaseRunning)
	})
	app.AddSystemsIf(Update, NotInState(phaseLoading), func(*World) {
		log = append(log, "update other")
	})

	app.Update(0)
	assert.Equal(t, phaseLoading, CurrentState[phase](app.World))

	app.Update(0)
	assert.Equal(t, phaseRunning, CurrentState[phase](app.World))

	assert.Equal(t, []string{
		"enter loading",
		"update loading",
		"exit loading",
		"enter running",
		"update other",
	}, log)
	require.Len(t, transitions, 1)
	assert.Equal(t, Transition{From: phaseLoading, To: phaseRunning}, transitions[0])
}

func TestSameStateTransitionReruns(t *testing.T) {
	app := NewApp()
	AddState(app, phaseRunning)

	enters := 0
	app.AddSystems(OnEnter(phaseRunning), func(*World) { enters++ })
	app.Update(0)
	SetNextState(app.World, phaseRunning)
	app.Update(0)

	assert.Equal(t, 2, enters)
}

func TestCommandsFlushBetweenSystems(t *testing.T) {
	app := NewApp()
	var spawned Entity
	var visible bool
	app.AddSystems(Update,
		func(w *World) { spawned = w.Commands().Spawn(position{}) },
		func(w *World) { visible = w.Alive(spawned) },
	)
	app.Update(0)
	assert.True(t, visible)
}

func TestConditionsCombine(t *testing.T) {
	app := NewApp()
	AddState(app, phaseDone)

	assert.True(t, And(InState(phaseDone), nil)(app.World))
	assert.False(t, And(InState(phaseDone), InState(phaseLoading))(app.World))
	assert.True(t, InAnyState(phaseLoading, phaseDone)(app.World))
	assert.False(t, InAnyState(phaseLoading, phaseRunning)(app.World))
}

func TestTimeAdvances(t *testing.T) {
	app := NewApp()
	app.Update(0.5)
	app.Update(0.25)

	clock := MustResource[Time](app.World)
	assert.Equal(t, uint64(2), clock.Ticks)
	assert.InDelta(t, 0.75, clock.Elapsed, 1e-9)
	assert.InDelta(t, 0.25, clock.Delta, 1e-9)
}
