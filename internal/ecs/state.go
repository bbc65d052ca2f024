package ecs

// State holds the current value of a finite state machine.
type State[S comparable] struct {
	current S
}

// Get returns the active state.
func (s *State[S]) Get() S {
	return s.current
}

// NextState holds a pending transition, applied at the start of the next
// tick.
type NextState[S comparable] struct {
	pending S
	set     bool
}

// Set requests a transition. Requesting the active state re-runs its exit
// and enter schedules.
func (n *NextState[S]) Set(s S) {
	n.pending = s
	n.set = true
}

// Pending returns the requested state, if any.
func (n *NextState[S]) Pending() (S, bool) {
	return n.pending, n.set
}

type scheduleKind int

const (
	kindStartup scheduleKind = iota
	kindUpdate
	kindOnEnter
	kindOnExit
)

// ScheduleLabel names a group of systems run together.
type ScheduleLabel struct {
	kind  scheduleKind
	state any
}

var (
	// Startup runs once before the first tick.
	Startup = ScheduleLabel{kind: kindStartup}
	// Update runs every tick.
	Update = ScheduleLabel{kind: kindUpdate}
)

// OnEnter runs when the machine switches into s.
func OnEnter[S comparable](s S) ScheduleLabel {
	return ScheduleLabel{kind: kindOnEnter, state: s}
}

// OnExit runs when the machine leaves s.
func OnExit[S comparable](s S) ScheduleLabel {
	return ScheduleLabel{kind: kindOnExit, state: s}
}

// Condition gates a system. A nil condition always passes.
type Condition func(w *World) bool

// InState passes while the machine of type S is in s.
func InState[S comparable](s S) Condition {
	return func(w *World) bool {
		st, ok := Resource[State[S]](w)
		return ok && st.current == s
	}
}

// NotInState passes while the machine of type S is anywhere but s.
func NotInState[S comparable](s S) Condition {
	in := InState(s)
	return func(w *World) bool {
		return !in(w)
	}
}

// InAnyState passes while the machine is in one of the given states.
func InAnyState[S comparable](states ...S) Condition {
	return func(w *World) bool {
		st, ok := Resource[State[S]](w)
		if !ok {
			return false
		}
		for _, s := range states {
			if st.current == s {
				return true
			}
		}
		return false
	}
}

// And passes when every condition passes.
func And(conds ...Condition) Condition {
	return func(w *World) bool {
		for _, c := range conds {
			if c != nil && !c(w) {
				return false
			}
		}
		return true
	}
}

// Transition is reported to the App's transition hook.
type Transition struct {
	From, To any
}

// AddState registers a state machine of type S starting in initial. The
// initial state's OnEnter schedule runs on the first tick.
func AddState[S comparable](a *App, initial S) {
	SetResource(a.World, State[S]{current: initial})
	SetResource(a.World, NextState[S]{})

	a.stateInits = append(a.stateInits, func(a *App) {
		a.runSchedule(OnEnter(initial))
	})
	a.stateApply = append(a.stateApply, func(a *App) {
		next := MustResource[NextState[S]](a.World)
		to, ok := next.Pending()
		if !ok {
			return
		}
		*next = NextState[S]{}

		st := MustResource[State[S]](a.World)
		from := st.current
		a.runSchedule(OnExit(from))
		st.current = to
		if a.onTransition != nil {
			a.onTransition(Transition{From: from, To: to})
		}
		a.runSchedule(OnEnter(to))
	})
}

// CurrentState returns the active state of the machine of type S.
func CurrentState[S comparable](w *World) S {
	return MustResource[State[S]](w).current
}

// SetNextState requests a transition of the machine of type S.
func SetNextState[S comparable](w *World, s S) {
	MustResource[NextState[S]](w).Set(s)
}
