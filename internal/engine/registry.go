package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
)

var (
	ErrUnknownGame = errors.New("unknown game")
	ErrDuplicate   = errors.New("game already registered")
)

// Factory creates a fresh game in its lobby state. All randomness the
// game uses comes from rng.
type Factory func(rng *rand.Rand) Game

// Registry maps game names to their factories.
type Registry struct {
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

func (r *Registry) Register(name string, f Factory) error {
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	r.factories[name] = f
	return nil
}

// New creates a game by name.
func (r *Registry) New(name string, rng *rand.Rand) (Game, error) {
	f, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return f(rng), nil
}

// Lookup returns the factory registered under name.
func (r *Registry) Lookup(name string) (Factory, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGame, name)
	}
	return f, nil
}

// Names lists the registered games in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for n := range r.factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
