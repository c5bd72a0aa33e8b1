package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
)

func sendSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()

	next, _ := m.Update(msg)
	s, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return s
}

func TestSetupSelection(t *testing.T) {
	base := config.DefaultBlocksConfig()
	base.Mode = "tetris"
	m := NewSetupModel(base, nil, 80, 24)

	// Mode row: tetris -> hextris
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(SetupModel)
	// Board row: pick small
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(SetupModel)
	for m.options[optSize].value() != "small" {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
		m = next.(SetupModel)
	}

	mode, cfg := m.Selection()
	if mode != engine.ModeHextris {
		t.Errorf("mode = %v, want HEXTRIS", mode)
	}
	if cfg.Mode != "hextris" {
		t.Errorf("cfg.Mode = %q, want hextris", cfg.Mode)
	}
	w, h, err := cfg.BoardDims()
	if err != nil {
		t.Fatalf("BoardDims: %v", err)
	}
	if w != 10 || h != 10 {
		t.Errorf("board = %dx%d, want 10x10", w, h)
	}
}

func TestSessionFlow(t *testing.T) {
	cfg := config.DefaultBlocksConfig()
	cfg.Mode = "tetris"
	m := NewSessionModel(nil, nil, testConfig(), cfg)

	if m.View() == "" {
		t.Fatal("menu view is empty")
	}

	// Menu -> scoreboard -> menu
	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.current != screenScores {
		t.Fatalf("tab should open the scoreboard, screen = %v", m.current)
	}
	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.current != screenMenu {
		t.Fatalf("esc should return to the menu, screen = %v", m.current)
	}

	// Menu -> game
	for range optCount {
		m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.current != screenGame {
		t.Fatalf("Play should start a game, screen = %v", m.current)
	}
	if m.game.game.ID() != "tetris" {
		t.Errorf("game id = %q, want tetris", m.game.game.ID())
	}

	// Pause, then back to the menu.
	m = sendSession(t, m, runeKey('p'))
	m = sendSession(t, m, TickMsg{Gen: m.game.gen})
	m = sendSession(t, m, runeKey('b'))
	if m.current != screenMenu {
		t.Fatalf("b while paused should return to the menu, screen = %v", m.current)
	}

	// Quit from the menu.
	next, cmd := m.Update(runeKey('q'))
	m = next.(SessionModel)
	if !m.quitting || cmd == nil {
		t.Error("q should quit the session")
	}
}
