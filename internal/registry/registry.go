// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hoops/internal/config"
	"github.com/vovakirdan/tui-hoops/internal/core"
)

// Game is the core interface that all arcade games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "hoops").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Shoot, Pause, etc.).
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Finalizer is implemented by games that persist results when a session ends.
// The platform calls Finalize on game over and whenever the player leaves a
// running game; implementations must tolerate repeated calls.
type Finalizer interface {
	Finalize()
}

// Resizer is implemented by games that can adapt to a new screen size
// without restarting. Games without it are reset on resize.
type Resizer interface {
	Resize(w, h int)
}

// Env carries the platform services a game may use.
// Every field is optional; the zero Env gives an in-memory game with defaults.
type Env struct {
	Scores     core.HighScoreStore
	Logger     *log.Logger
	Clock      core.Clock
	ConfigPath string
	Difficulty config.DifficultyPreset
}

// WithDefaults fills unset services.
func (e Env) WithDefaults() Env {
	if e.Logger == nil {
		e.Logger = log.Default()
	}
	if e.Clock == nil {
		e.Clock = core.SystemClock{}
	}
	return e
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func(env Env) (Game, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}

	factories[info.ID] = f
	titles[info.ID] = info.Title
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Title returns the display name of a registered game, or "" if unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()
	return titles[id]
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered or the game fails to build.
func Create(id string, env Env) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	g, err := f(env.WithDefaults())
	if err != nil {
		return nil, fmt.Errorf("registry: cannot create %q: %w", id, err)
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
