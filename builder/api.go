// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliques/core"
)

// Constructor adds a family of vertices and edges to g under cfg.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new graph and applies every constructor in order.
//
// Several constructors may be combined; vertex IDs are shared, so two
// constructors using the same ID scheme overlap on common indices (Cycle(4)
// followed by Complete(2) adds nothing new).
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - any constructor error, wrapped with "BuildGraph: ".
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// MustBuild is BuildGraph with default options that panics on error.
// Intended for fixtures with constant parameters.
func MustBuild(cons ...Constructor) *core.Graph {
	g, err := BuildGraph(nil, cons...)
	if err != nil {
		panic(err)
	}

	return g
}
