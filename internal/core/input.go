package core

// Action represents a semantic game action, abstracted from physical keys,
// mouse buttons and terminal escape sequences.
type Action int

const (
	ActionNone         Action = iota
	ActionFlap                // Space pressed this tick
	ActionFlapRelease         // Space released this tick
	ActionClick               // Left mouse button pressed this tick
	ActionClickRelease        // Left mouse button released this tick
	ActionPause               // P - toggle pause
	ActionQuit                // Esc, Q, Ctrl+C - close the frontend
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionFlapRelease:
		return "FlapRelease"
	case ActionClick:
		return "Click"
	case ActionClickRelease:
		return "ClickRelease"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Cursor is a pointer position in window pixels: origin top-left, y down.
type Cursor struct {
	X, Y  float64
	Valid bool
}

// InputFrame is the input state for one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Cursor is the last known pointer position. Frontends without a
	// pointer leave it invalid.
	Cursor Cursor
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetCursor records the pointer position in window pixels.
func (f *InputFrame) SetCursor(x, y float64) {
	f.Cursor = Cursor{X: x, Y: y, Valid: true}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame. The cursor is kept since
// pointer position persists between ticks.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Cursor = f.Cursor
	return clone
}
