package game

import (
	"sort"

	"github.com/pkg/errors"
)

var registry = map[string]func() Game{}

// Register makes a game constructor loadable by name. Intended to be called
// from init functions of game packages.
func Register(name string, build func() Game) {
	if _, ok := registry[name]; ok {
		panic("game already registered: " + name)
	}
	registry[name] = build
}

// Load builds the named game. Unknown names are a configuration error.
func Load(name string) (Game, error) {
	build, ok := registry[name]
	if !ok {
		return nil, errors.Errorf("unknown game %q (known: %v)", name, Known())
	}
	return build(), nil
}

// Known lists the registered game names in sorted order.
func Known() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
