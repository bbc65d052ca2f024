package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappybust/internal/core"
)

// Options configures a terminal session.
type Options struct {
	Logger *log.Logger

	// ScreenshotDir receives ctrl+s dumps. Empty means
	// ~/.flappybust/screenshots.
	ScreenshotDir string

	// HideHelp drops the key help line and gives its row to the field.
	HideHelp bool

	// FixedSeed keeps the configured seed for every round of a session.
	// Otherwise each round started from the menu gets a fresh one.
	FixedSeed bool
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       core.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	gen        int64
	quitting   bool
}

// NewModel creates a model for the given game. A zero seed is replaced by
// the current time.
func NewModel(game core.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		config:     cfg,
		opts:       opts,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		gen:        nextGen(),
	}
	m.screen = core.NewScreen(m.fieldSize(cfg.ScreenW, cfg.ScreenH))
	m.help.Width = cfg.ScreenW
	return m
}

// fieldSize returns the cell area left for the game.
func (m Model) fieldSize(w, h int) (int, int) {
	if !m.opts.HideHelp {
		h--
	}
	return core.Max(1, w), core.Max(1, h)
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	if a := m.keys.MapKey(msg); a != core.ActionNone {
		m.inputFrame.Set(a)
	}
	return m, nil
}

// handleMouse records the cursor and left button edges.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if x, y, ok := CellToField(msg.X, msg.Y, m.screen.Width(), m.screen.Height()); ok {
		m.inputFrame.SetCursor(x, y)
	} else {
		m.inputFrame.Cursor.Valid = false
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.inputFrame.Set(core.ActionClick)
		}
	case tea.MouseActionRelease:
		if msg.Button == tea.MouseButtonLeft {
			m.inputFrame.Set(core.ActionClickRelease)
		}
	}
	return m, nil
}

// handleResize resizes the cell buffer. The game renders relative to the
// buffer, so the simulation keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(m.fieldSize(msg.Width, msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step. Terminals report no key releases, so
// a flap is released on the following tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	flapped := m.inputFrame.Has(core.ActionFlap)
	m.inputFrame.Clear()
	if flapped {
		m.inputFrame.Set(core.ActionFlapRelease)
	}

	return m, tickCmd(m.config.TickRate, m.gen)
}

// screenshotDir resolves the directory for screen dumps.
func (m Model) screenshotDir() (string, error) {
	if m.opts.ScreenshotDir != "" {
		return m.opts.ScreenshotDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".flappybust", "screenshots"), nil
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir, err := m.screenshotDir()
	if err != nil {
		m.opts.Logger.Warn("screenshot skipped", "err", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// Quitting reports whether the player asked to leave the game.
func (m Model) Quitting() bool {
	return m.quitting
}

// GameState returns the state reported by the last step.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if m.opts.HideHelp {
		return out
	}
	status := fmt.Sprintf("score %d  best %d  ", m.gameState.Score, m.gameState.Highest)
	return out + "\n" + helpStyle.Render(status+m.help.View(m.keys))
}

// Run starts a Bubble Tea program for the game and blocks until it quits.
func Run(game core.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
