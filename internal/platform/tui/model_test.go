package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 7}
}

func newTestGameModel(t *testing.T, store *storage.Store) GameModel {
	t.Helper()

	cfg := config.DefaultBlocksConfig()
	if err := config.ApplyBoardSize(&cfg, "small"); err != nil {
		t.Fatalf("ApplyBoardSize: %v", err)
	}
	cfg.Player.Name = "TESTER"

	game := blocks.NewWithOptions(engine.ModeTetris, blocks.Options{Config: cfg})
	m := NewGameModel(game, store, nil, testConfig())
	m.Init()
	return m
}

// press sends key and then one tick, the way the program interleaves them.
func press(t *testing.T, m GameModel, msg tea.KeyMsg) GameModel {
	t.Helper()

	next, _ := m.Update(msg)
	m = next.(GameModel)
	next, _ = m.Update(TickMsg{Gen: m.gen})
	return next.(GameModel)
}

// playUntilOver hard drops every piece until the stack reaches the top.
func playUntilOver(t *testing.T, m GameModel) GameModel {
	t.Helper()

	for range 500 {
		m = press(t, m, runeKey(' '))
		if m.State().GameOver {
			return m
		}
	}
	t.Fatal("game did not end")
	return m
}

func TestGameModelRecordsOncePerRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	m := newTestGameModel(t, store)
	m = playUntilOver(t, m)

	// Further ticks after game over must not record again.
	for range 10 {
		next, _ := m.Update(TickMsg{Gen: m.gen})
		m = next.(GameModel)
	}

	results, err := store.AllResults("tetris")
	if err != nil {
		t.Fatalf("AllResults: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("recorded %d results, want 1", len(results))
	}
	if results[0].Player != "TESTER" {
		t.Errorf("player = %q, want TESTER", results[0].Player)
	}

	ranking, err := store.LoadRanking("tetris")
	if err != nil {
		t.Fatalf("LoadRanking: %v", err)
	}
	if !ranking[0].Filled || ranking[0].Name != "TESTER" {
		t.Errorf("first run should take the top slot, got %+v", ranking[0])
	}

	// A new game starts a new run.
	m = press(t, m, runeKey('r'))
	if m.State().GameOver {
		t.Fatal("restart should start a new game")
	}
	m = playUntilOver(t, m)

	results, err = store.AllResults("tetris")
	if err != nil {
		t.Fatalf("AllResults: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("recorded %d results, want 2", len(results))
	}
}

func TestGameModelWithoutStore(t *testing.T) {
	m := newTestGameModel(t, nil)
	m = playUntilOver(t, m)

	if m.View() == "" {
		t.Error("view should not be empty")
	}
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	m := newTestGameModel(t, nil)

	_, cmd := m.Update(TickMsg{Gen: m.gen + 1})
	if cmd != nil {
		t.Error("a tick from another game should not schedule a new tick")
	}

	_, cmd = m.Update(TickMsg{Gen: m.gen})
	if cmd == nil {
		t.Error("a tick from this game should schedule the next tick")
	}
}

func TestGameModelBackOnlyWhenStopped(t *testing.T) {
	m := newTestGameModel(t, nil)

	m = press(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}

	m = press(t, m, runeKey('p'))
	if !m.State().Paused {
		t.Fatal("p should pause the game")
	}

	next, _ := m.Update(runeKey('b'))
	m = next.(GameModel)
	if !m.BackToMenu() {
		t.Error("back should work while paused")
	}
}

func TestGameModelResizeKeepsGame(t *testing.T) {
	m := newTestGameModel(t, nil)
	m = press(t, m, runeKey(' '))
	before := m.State()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(GameModel)

	if m.State() != before {
		t.Errorf("state changed on resize: %+v -> %+v", before, m.State())
	}
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, want 120x39", m.screen.Width(), m.screen.Height())
	}
}

func TestGameModelQuit(t *testing.T) {
	m := newTestGameModel(t, nil)

	next, cmd := m.Update(runeKey('q'))
	m = next.(GameModel)
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
