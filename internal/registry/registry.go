// Package registry maps game ids to factories. Game packages register
// themselves from init(), so the platform and CLI can list and create
// games without importing them directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/fishrun/internal/core"
)

// Game is the contract between a simulation and the platform.
// Implementations hold pure logic; input mapping, timing and terminal
// output belong to the platform.
type Game interface {
	// ID is the stable identifier used on the command line and in storage.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh run. Called once at start and on every restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one frame of in.Dt seconds.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame. dst is cleared by the callee.
	Render(dst *core.Screen)

	// State returns score, lives and the game over / paused flags.
	State() core.GameState
}

// Reporter is implemented by games that can describe a run in more detail
// than a score, for the runs history.
type Reporter interface {
	Summary() core.RunSummary
}

// Tunable is implemented by games with per-instance difficulty presets.
type Tunable interface {
	SetDifficulty(preset string)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a game factory. It panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
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
