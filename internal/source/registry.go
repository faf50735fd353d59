// Package source provides the target-word sources a game can be started
// from. Sources register themselves in init() functions, allowing the CLI
// and servers to discover and create them by name.
package source

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

// ErrNoAnswers is returned when a source that picks from the answer list is
// given an empty one.
var ErrNoAnswers = errors.New("source: no answer words")

// Source picks the secret word for a new game.
type Source interface {
	// ID returns the registry name (e.g., "daily", "random").
	ID() string

	// Target returns the word to play. now matters only to date-based sources.
	Target(now time.Time) (string, error)
}

// Params configures a source at creation time. Each source reads only the
// fields it needs.
type Params struct {
	Answers []string // normalized answer list
	Fixed   string   // word for the fixed source
	Seed    int64    // RNG seed for the random source (0 = time based)
	Salt    string   // HMAC key for the daily source
}

// Info contains metadata about a registered source.
type Info struct {
	ID    string
	Title string
}

// Factory creates a source from params.
type Factory func(p Params) (Source, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a source factory to the registry.
// Panics if a source with the same ID is already registered.
func Register(info Info, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[info.ID]; exists {
		panic(fmt.Sprintf("source: %q already registered", info.ID))
	}

	factories[info.ID] = f
	titles[info.ID] = info.Title
}

// List returns all registered sources, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a source by its ID.
func Create(id string, p Params) (Source, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("source: unknown source %q", id)
	}
	return f(p)
}

// Exists checks if a source with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
