// Package registry keeps the playable variants.
// Variants register themselves in init() functions, so frontends can list
// and create them without importing game packages directly.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ErrUnknownVariant is returned by Create for IDs nobody registered.
var ErrUnknownVariant = errors.New("registry: unknown variant")

// Game is what a frontend drives. Implementations hold pure simulation
// logic: no terminal, no clock, no I/O. The frontend owns input mapping,
// tick pacing and painting the screen buffer.
type Game interface {
	// ID returns the variant identifier used on the command line (e.g. "glide").
	ID() string

	// Title returns the name shown in menus.
	Title() string

	// Reset seeds the game and returns it to the idle phase.
	// Best scores survive a reset.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by exactly one tick.
	Step(in core.InputFrame) core.StepResult

	// Render paints the current frame into dst, scaled to its size.
	Render(dst *core.Screen)

	// State returns score, best and phase.
	State() core.GameState
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game of one variant.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a variant. The factory is called once to read the title.
// Registering the same ID twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns all registered variants sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create builds a new game of the given variant.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownVariant, id)
	}
	return e.factory(), nil
}

// Exists reports whether a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
