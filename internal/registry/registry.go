// Package registry provides a global registry for simulation factories.
// Simulation variants register themselves in init() functions, allowing the
// platform to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-pachinko/internal/config"
	"github.com/vovakirdan/tui-pachinko/internal/game"
)

// Info contains metadata about a registered simulation.
type Info struct {
	ID    string
	Title string
}

// Factory creates a new simulation from a board configuration and RNG seed.
type Factory func(cfg config.Config, seed int64) game.Simulation

type entry struct {
	title   string
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a simulation factory to the registry.
// Typically called from an init() function.
// Panics if a simulation with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: simulation %q already registered", id))
	}
	entries[id] = entry{title: title, factory: f}
}

// List returns information about all registered simulations, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for id, e := range entries {
		result = append(result, Info{ID: id, Title: e.title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a simulation by its ID.
// Returns an error if the ID is not registered.
func Create(id string, cfg config.Config, seed int64) (game.Simulation, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown simulation %q", id)
	}
	return e.factory(cfg, seed), nil
}

// Exists checks if a simulation with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
