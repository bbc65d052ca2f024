package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappybust/internal/core"
)

// KeyMap holds the terminal key bindings. It implements help.KeyMap.
type KeyMap struct {
	Flap       key.Binding
	Pause      key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "flap / start / restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Pause, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap, k.Pause},
		{k.Quit, k.Screenshot},
	}
}

// MapKey translates a key message to a game action. Screenshot is handled by
// the model and maps to ActionNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Flap):
		return core.ActionFlap
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}

// CellToField maps the centre of a terminal cell to field pixels for a
// screen of w x h cells. Cells outside the screen report ok=false.
func CellToField(cx, cy, w, h int) (x, y float64, ok bool) {
	if w <= 0 || h <= 0 || cx < 0 || cy < 0 || cx >= w || cy >= h {
		return 0, 0, false
	}
	x = (float64(cx) + 0.5) * core.FieldWidth / float64(w)
	y = (float64(cy) + 0.5) * core.FieldHeight / float64(h)
	return x, y, true
}
