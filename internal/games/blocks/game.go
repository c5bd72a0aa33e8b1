// Package blocks adapts the falling-block engine to the platform's Game
// interface. One Game drives one mode; the engine does the rules and this
// package maps inputs, keeps on-screen messages and draws the well.
package blocks

import (
	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// MessageMs is how long a line-clear message stays on screen.
const MessageMs = 1000

// Options holds per-session settings.
type Options struct {
	Config config.BlocksConfig
}

// Game implements registry.Game for one mode.
type Game struct {
	mode engine.Mode
	opts Options
	eng  *engine.Engine

	tickMs int

	message   engine.Message
	messageMs int
	highRank  int // 1-based podium place of the finished run, 0 if none
}

func init() {
	for _, m := range engine.Modes {
		registry.Register(m.ID(), func() registry.Game {
			return New(m)
		})
	}
}

// New creates a game for mode with the built-in configuration.
func New(mode engine.Mode) *Game {
	return NewWithOptions(mode, Options{Config: config.DefaultBlocksConfig()})
}

// NewWithOptions creates a game for mode. The mode argument wins over
// opts.Config.Mode.
func NewWithOptions(mode engine.Mode, opts Options) *Game {
	return &Game{mode: mode, opts: opts}
}

// EngineConfig converts a loaded configuration into an engine configuration
// for mode.
func EngineConfig(cfg config.BlocksConfig, mode engine.Mode, seed int64) (engine.Config, error) {
	w, h, err := cfg.BoardDims()
	if err != nil {
		return engine.Config{}, err
	}
	slide, err := cfg.SlideTable()
	if err != nil {
		return engine.Config{}, err
	}
	ec := engine.Config{
		Mode:   mode,
		Width:  w,
		Height: h,
		Slide:  slide,
		Speed:  cfg.SpeedCurve(),
		Seed:   seed,
	}
	if err := ec.Validate(); err != nil {
		return engine.Config{}, err
	}
	return ec, nil
}

// ID returns the registry key.
func (g *Game) ID() string {
	return g.mode.ID()
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.mode.String()
}

// Reset starts a fresh engine. A configuration that fails validation falls
// back to the defaults for the same mode.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tickMs = cfg.TickMs()

	ec, err := EngineConfig(g.opts.Config, g.mode, cfg.Seed)
	if err != nil {
		ec = engine.DefaultConfig()
		ec.Mode = g.mode
		ec.Seed = cfg.Seed
	}
	eng, err := engine.New(ec)
	if err != nil {
		ec = engine.DefaultConfig()
		ec.Mode = g.mode
		ec.Seed = cfg.Seed
		eng, _ = engine.New(ec)
	}
	g.eng = eng
	g.clearMessages()
	g.eng.Events()
}

func (g *Game) clearMessages() {
	g.message = engine.MessageNone
	g.messageMs = 0
	g.highRank = 0
}

// Step queues this tick's actions on the engine, in arrival order, then
// advances it by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Actions() {
		if a == core.ActionRestart {
			g.clearMessages()
		}
		if input := inputFor(a); input != engine.InputNone {
			g.eng.Enqueue(input)
		}
	}

	g.eng.Tick(g.tickMs)

	for _, ev := range g.eng.Events() {
		if lc, ok := ev.(engine.LinesCleared); ok && lc.Message != engine.MessageNone {
			g.showMessage(lc.Message)
		}
	}

	if g.messageMs > 0 && !g.eng.Paused() {
		g.messageMs -= g.tickMs
		if g.messageMs <= 0 {
			g.message = engine.MessageNone
			g.messageMs = 0
		}
	}

	return core.StepResult{State: g.State()}
}

func inputFor(a core.Action) engine.Input {
	switch a {
	case core.ActionLeft:
		return engine.InputLeft
	case core.ActionRight:
		return engine.InputRight
	case core.ActionSoftDrop:
		return engine.InputSoftDrop
	case core.ActionHardDrop:
		return engine.InputHardDrop
	case core.ActionRotateCW:
		return engine.InputRotateCW
	case core.ActionRotateCCW:
		return engine.InputRotateCCW
	case core.ActionRotate180:
		return engine.InputRotate180
	case core.ActionPause:
		return engine.InputPause
	case core.ActionRestart:
		return engine.InputNewGame
	default:
		return engine.InputNone
	}
}

func (g *Game) showMessage(m engine.Message) {
	g.message = m
	g.messageMs = MessageMs
}

// ShowHighScore marks the finished run as placed on the podium. The banner
// stays until the next game starts.
func (g *Game) ShowHighScore(rank int) {
	if rank <= 0 {
		return
	}
	g.highRank = rank
	g.message = engine.MessageNewHighScore
	g.messageMs = 0
}

// Message returns the message currently shown, if any.
func (g *Game) Message() engine.Message {
	return g.message
}

// State returns the current summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.eng.Score(),
		Lines:    g.eng.Lines(),
		Level:    g.eng.Level(),
		GameOver: !g.eng.Playing(),
		Paused:   g.eng.Paused(),
	}
}

// Result returns the run record under the configured player name.
func (g *Game) Result() engine.Result {
	return g.eng.Result(g.opts.Config.Player.Name)
}

// Snapshot returns a copy of the engine state.
func (g *Game) Snapshot() engine.Snapshot {
	return g.eng.Snapshot()
}

// Mode returns the piece set this game plays.
func (g *Game) Mode() engine.Mode {
	return g.mode
}
