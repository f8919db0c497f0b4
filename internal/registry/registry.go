// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/kampala-krane/internal/canvas"
	"github.com/vovakirdan/kampala-krane/internal/config"
	"github.com/vovakirdan/kampala-krane/internal/core"
)

// Game is the core interface every game must implement.
// Games contain pure logic with no external dependencies (especially no
// Bubble Tea or ebiten). The platform handles input mapping, timing, and
// drawing surfaces.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "krane").
	// Used for CLI commands.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game and returns it to the ready state.
	// The RuntimeConfig provides the viewport size and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Tap delivers the single input event and reports what it did.
	Tap() core.Event

	// Step advances the simulation by one frame. It is a no-op unless
	// the run is playing.
	Step() core.StepResult

	// Render draws the current frame onto dst.
	Render(dst canvas.Surface)

	// Resize tells the game the host surface changed, in logical pixels.
	Resize(w, h int)

	// Viewport returns the logical size the game simulates.
	Viewport() (w, h float64)

	// State returns the current run state and score.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID       string
	Title    string
	Viewport string // "tracks surface" or the fixed size, e.g. "800x600"
}

// configured is implemented by games that expose their configuration.
type configured interface {
	Config() config.KraneConfig
}

// Factory is a function that creates a new instance of a game.
type Factory func(cfg config.KraneConfig) Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Describe by creating a temporary instance
	g := f(config.DefaultKraneConfig())
	infos[id] = GameInfo{ID: id, Title: g.Title(), Viewport: describeViewport(g)}
}

func describeViewport(g Game) string {
	c, ok := g.(configured)
	if !ok {
		return "tracks surface"
	}
	vp := c.Config().Viewport
	if vp.Mode != config.ViewportFixed {
		return "tracks surface"
	}
	return fmt.Sprintf("%dx%d", vp.Width, vp.Height)
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID with the given configuration.
// Returns an error if the game ID is not registered.
func Create(id string, cfg config.KraneConfig) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(cfg), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
