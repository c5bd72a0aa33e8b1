// Package registry maps game ids to factories. Each blocks mode registers
// itself from an init function, so the CLI and the SSH server can list and
// create modes without importing them by name.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Game is what the platform drives. Implementations hold pure game logic and
// never import Bubble Tea; the platform owns timing, input mapping and
// terminal output.
type Game interface {
	// ID returns the registry key, also used as the storage key
	// ("tritris", "tetris", "hextris").
	ID() string

	// Title returns the display name.
	Title() string

	// Reset starts a fresh run. Called once at start and on every restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State returns the current summary.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

// ErrUnknownGame is returned by Create for an id nothing registered.
var ErrUnknownGame = errors.New("registry: unknown game")

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     []GameInfo // registration order
)

// Register adds a factory and records the title of a sample instance. It
// panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	infos = append(infos, GameInfo{ID: id, Title: f().Title()})
}

// List returns every registered game in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()
	return slices.Clone(infos)
}

// Create instantiates a game by id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
