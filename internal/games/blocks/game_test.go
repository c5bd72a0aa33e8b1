package blocks

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  30,
		TickRate: 60,
	}
}

func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func playUntilOver(t *testing.T, g *Game) {
	t.Helper()
	for range 2000 {
		if step(g, core.ActionHardDrop).State.GameOver {
			return
		}
	}
	t.Fatal("game never ended")
}

func TestModesRegistered(t *testing.T) {
	for _, m := range engine.Modes {
		if !registry.Exists(m.ID()) {
			t.Fatalf("mode %s not registered", m.ID())
		}
		g, err := registry.Create(m.ID())
		if err != nil {
			t.Fatalf("Create(%s): %v", m.ID(), err)
		}
		if g.Title() != m.String() {
			t.Errorf("Title = %q, want %q", g.Title(), m.String())
		}
	}
}

func TestDeterminism(t *testing.T) {
	g1 := New(engine.ModeHextris)
	g1.Reset(testConfig(12345))
	g2 := New(engine.ModeHextris)
	g2.Reset(testConfig(12345))

	script := []core.Action{
		core.ActionLeft, core.ActionRotateCW, core.ActionRight, core.ActionSoftDrop,
		core.ActionRotate180, core.ActionHardDrop, core.ActionRotateCCW,
	}
	for i := range 600 {
		var actions []core.Action
		if i%7 == 0 {
			actions = append(actions, script[(i/7)%len(script)])
		}
		step(g1, actions...)
		step(g2, actions...)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Fatal("same seed and inputs produced different snapshots")
	}
}

func TestHardDropLocksAndSpawns(t *testing.T) {
	g := New(engine.ModeTetris)
	g.Reset(testConfig(1))

	res := step(g, core.ActionHardDrop)

	if res.State.Score != engine.LockBonus(0) {
		t.Errorf("Score = %d, want %d", res.State.Score, engine.LockBonus(0))
	}
	if got := g.Snapshot().Spawned; got != 2 {
		t.Errorf("Spawned = %d, want 2", got)
	}
}

func TestPauseStopsGravity(t *testing.T) {
	g := New(engine.ModeTetris)
	g.Reset(testConfig(3))

	if !step(g, core.ActionPause).State.Paused {
		t.Fatal("expected paused after Pause")
	}
	before := g.Snapshot()
	for range 300 {
		step(g, core.ActionLeft)
	}
	after := g.Snapshot()
	if before.Anchor != after.Anchor {
		t.Errorf("piece moved while paused: %v -> %v", before.Anchor, after.Anchor)
	}

	step(g, core.ActionPause)
	for range 60 {
		step(g)
	}
	if g.Snapshot().Anchor.Y <= before.Anchor.Y {
		t.Error("gravity did not resume after unpause")
	}
}

func TestRestartStartsNewGame(t *testing.T) {
	g := New(engine.ModeTetris)
	g.Reset(testConfig(5))

	step(g, core.ActionHardDrop)
	step(g, core.ActionHardDrop)
	res := step(g, core.ActionRestart)

	if res.State.Score != 0 || res.State.Lines != 0 || res.State.Level != 0 {
		t.Errorf("state after restart = %+v, want zeroed", res.State)
	}
	if got := g.Snapshot().Spawned; got != 1 {
		t.Errorf("Spawned = %d, want 1", got)
	}
}

func TestMessageExpires(t *testing.T) {
	g := New(engine.ModeTetris)
	g.Reset(testConfig(9)) // 60 ticks/s -> 16ms per tick

	g.showMessage(engine.MessageGreat)
	for range 62 {
		step(g)
	}
	if g.Message() != engine.MessageGreat {
		t.Fatalf("message cleared early after %dms", 62*16)
	}
	step(g)
	if g.Message() != engine.MessageNone {
		t.Errorf("message still shown after %dms", 63*16)
	}
}

func TestHighScoreBanner(t *testing.T) {
	g := New(engine.ModeTetris)
	g.Reset(testConfig(11))
	playUntilOver(t, g)

	g.ShowHighScore(2)
	if g.Message() != engine.MessageNewHighScore {
		t.Fatalf("Message = %v, want NewHighScore", g.Message())
	}

	screen := core.NewScreen(80, 30)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"GAME OVER", "NEW HIGH SCORE! #2"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	step(g, core.ActionRestart)
	if g.Message() != engine.MessageNone {
		t.Error("banner survived a new game")
	}
}

func TestResultUsesPlayerName(t *testing.T) {
	cfg := config.DefaultBlocksConfig()
	cfg.Player.Name = "ALICE"
	g := NewWithOptions(engine.ModeTritris, Options{Config: cfg})
	g.Reset(testConfig(2))
	step(g, core.ActionHardDrop)

	r := g.Result()
	if r.Name != "ALICE" || r.Score != g.State().Score {
		t.Errorf("Result = %+v", r)
	}
}

func TestEngineConfig(t *testing.T) {
	cfg := config.DefaultBlocksConfig()
	cfg.Board.Size = "small"
	cfg.Slide.Enabled = false

	ec, err := EngineConfig(cfg, engine.ModeTritris, 42)
	if err != nil {
		t.Fatalf("EngineConfig: %v", err)
	}
	if ec.Width != 10 || ec.Height != 10 {
		t.Errorf("size = %dx%d, want 10x10", ec.Width, ec.Height)
	}
	if ec.Slide.Enabled {
		t.Error("slide should be disabled")
	}
	if ec.Mode != engine.ModeTritris || ec.Seed != 42 {
		t.Errorf("mode/seed = %v/%d", ec.Mode, ec.Seed)
	}

	cfg.Board.Size = "huge"
	if _, err := EngineConfig(cfg, engine.ModeTetris, 0); !errors.Is(err, engine.ErrUnknownBoardSize) {
		t.Errorf("err = %v, want ErrUnknownBoardSize", err)
	}
}

func TestResetFallsBackOnBadConfig(t *testing.T) {
	cfg := config.DefaultBlocksConfig()
	cfg.Speed.FloorMs = 0
	g := NewWithOptions(engine.ModeTetris, Options{Config: cfg})
	g.Reset(testConfig(4))

	snap := g.Snapshot()
	if snap.Mode != engine.ModeTetris {
		t.Errorf("Mode = %v, want TETRIS", snap.Mode)
	}
	if snap.IntervalMs != engine.DefaultSpeedCurve().Interval(0) {
		t.Errorf("IntervalMs = %d, want default", snap.IntervalMs)
	}
}

func TestRender(t *testing.T) {
	g := New(engine.ModeTetris)
	g.Reset(testConfig(6))

	screen := core.NewScreen(80, 30)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"TETRIS", "NEXT", "SCORE", "LINES", "LEVEL", "█"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	step(g, core.ActionPause)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New(engine.ModeHextris)
	g.Reset(testConfig(8))

	screen := core.NewScreen(40, 12)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too-small notice")
	}
}
