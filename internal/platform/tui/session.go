package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

// screen is the part of a session currently shown.
type screen int

const (
	screenMenu screen = iota
	screenScores
	screenGame
)

// SessionModel manages the full session flow: setup menu -> game -> menu,
// with the scoreboard reachable from the menu. Local play and SSH sessions
// both use it.
type SessionModel struct {
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	base     config.BlocksConfig
	current  screen
	menu     SetupModel
	scores   ScoreboardModel
	game     GameModel
	quitting bool
}

// NewSessionModel creates a session starting at the setup menu. base is the
// configuration the menu starts from; store and logger may be nil.
func NewSessionModel(store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, base config.BlocksConfig) SessionModel {
	return SessionModel{
		store:  store,
		logger: logger,
		config: cfg,
		base:   base,
		menu:   NewSetupModel(base, store, cfg.ScreenW, cfg.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(SetupModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		mode, _ := m.menu.Selection()
		m.scores = NewScoreboardModel(m.store, mode.ID(), m.config.ScreenW, m.config.ScreenH)
		m.current = screenScores
		return m, m.scores.Init()

	case m.menu.Selected():
		mode, cfg := m.menu.Selection()
		m.base = cfg
		game := blocks.NewWithOptions(mode, blocks.Options{Config: cfg})
		m.game = NewGameModel(game, m.store, m.logger, m.config)
		m.current = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if scores, ok := next.(ScoreboardModel); ok {
		m.scores = scores
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(GameModel); ok {
		m.game = game
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		return m.backToMenu()
	}
	return m, cmd
}

// backToMenu rebuilds the menu from the last played settings so best scores
// are fresh.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.menu = NewSetupModel(m.base, m.store, m.config.ScreenW, m.config.ScreenH)
	m.current = screenMenu
	return m, m.menu.Init()
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven session in the current terminal.
func RunSession(store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, base config.BlocksConfig) error {
	p := tea.NewProgram(
		NewSessionModel(store, logger, cfg, base),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
