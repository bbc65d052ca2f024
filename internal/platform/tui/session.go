package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappybust/internal/config"
	"github.com/vovakirdan/flappybust/internal/core"
)

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScoreboard
)

// SessionModel runs the full session flow: menu, game and scoreboard. Leaving
// the game or the scoreboard returns to the menu; quitting the menu ends the
// session.
type SessionModel struct {
	newGame    func(config.DifficultyPreset) core.Game
	scores     ScoreSource
	config     core.RuntimeConfig
	opts       Options
	gameID     string
	title      string
	view       sessionView
	menu       MenuModel
	game       Model
	scoreboard ScoreboardModel
	rounds     int64
	quitting   bool
}

// NewSessionModel creates a session starting at the menu.
func NewSessionModel(newGame func(config.DifficultyPreset) core.Game, scores ScoreSource, cfg core.RuntimeConfig, opts Options) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	sample := newGame(config.DifficultyFixed)
	m := SessionModel{
		newGame: newGame,
		scores:  scores,
		config:  cfg,
		opts:    opts,
		gameID:  sample.ID(),
		title:   sample.Title(),
	}
	m.menu = NewMenuModel(cfg.ScreenW, cfg.ScreenH, m.highScore())
	return m
}

// highScore reads the best stored score, or 0 without a source.
func (m SessionModel) highScore() int {
	if m.scores == nil {
		return 0
	}
	stats, err := m.scores.GetGameStats(m.gameID)
	if err != nil || stats == nil {
		return 0
	}
	return stats.HighScore
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scoreboard = NewScoreboardModel(m.scores, m.gameID, m.title, m.config.ScreenW, m.config.ScreenH)
		m.view = viewScoreboard
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		preset := m.menu.Selected().Preset
		cfg := m.roundConfig()
		m.opts.Logger.Info("round started", "difficulty", preset, "seed", cfg.Seed)
		m.game = NewModel(m.newGame(preset), cfg, m.opts)
		m.view = viewGame
		return m, m.game.Init()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(Model); ok {
		m.game = game
	}
	if m.game.Quitting() {
		m.backToMenu()
		return m, nil
	}
	return m, cmd
}

func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if board, ok := next.(ScoreboardModel); ok {
		m.scoreboard = board
	}
	if m.scoreboard.IsQuitting() {
		m.backToMenu()
		return m, nil
	}
	return m, cmd
}

// roundConfig returns the runtime settings of the next round, re-seeded
// unless the seed is pinned.
func (m *SessionModel) roundConfig() core.RuntimeConfig {
	cfg := m.config
	if !m.opts.FixedSeed {
		m.rounds++
		cfg.Seed = time.Now().UnixNano() + m.rounds
	}
	return cfg
}

// backToMenu resets the menu with a fresh high score.
func (m *SessionModel) backToMenu() {
	m.menu = NewMenuModel(m.config.ScreenW, m.config.ScreenH, m.highScore())
	m.view = viewMenu
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.view {
	case viewGame:
		return m.game.View()
	case viewScoreboard:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(newGame func(config.DifficultyPreset) core.Game, scores ScoreSource, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(newGame, scores, cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
