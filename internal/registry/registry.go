// Package registry provides a global registry for puzzle factories.
// Built-in puzzles register themselves in init() functions; puzzles loaded
// from disk or from the library are registered at startup, allowing the
// platform to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/agnivade/levenshtein"
	"github.com/vovakirdan/tui-xword/internal/core"
)

// Game is the interface every playable puzzle session implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier (the puzzle ID).
	// Used for CLI commands and history storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the session.
	// Called once at start and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Resize adapts the layout to new terminal dimensions without
	// losing progress.
	Resize(w, h int)

	// Handle applies one decoded input event.
	Handle(in core.Input) core.StepResult

	// Tick advances the clock by one period of cfg.TickRate.
	Tick() core.StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current progress summary.
	State() core.GameState
}

// GameInfo contains metadata about a registered puzzle.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

// ErrDuplicate is returned by TryRegister when the ID is taken.
var ErrDuplicate = errors.New("registry: duplicate id")

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from an init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	if err := TryRegister(id, f); err != nil {
		panic(err.Error())
	}
}

// TryRegister adds a factory unless the ID is already taken.
func TryRegister(id string, f Factory) error {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicate, id)
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f().Title()
	return nil
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

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered; the message carries a
// suggestion when a registered ID is close.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		if s := Suggest(id); s != "" {
			return nil, fmt.Errorf("registry: unknown puzzle %q (did you mean %q?)", id, s)
		}
		return nil, fmt.Errorf("registry: unknown puzzle %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Suggest returns the registered ID closest to id by edit distance,
// or "" when nothing is within a third of the input's length.
func Suggest(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	best, bestDist := "", len(id)/3+1
	for known := range factories {
		d := levenshtein.ComputeDistance(id, known)
		if d < bestDist || (d == bestDist && best != "" && known < best) {
			best, bestDist = known, d
		}
	}
	return best
}
