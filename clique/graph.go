// SPDX-License-Identifier: MIT
// File: graph.go
// Role: The clique-graph operator K with an abort bound.
// Determinism:
//   - The vertex set and edge set of K(G) depend only on G. Vertices are
//     registered in a key-ordered tree map, so construction order is stable too.

package clique

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"

	"github.com/katalvlaran/cliques/core"
)

// NoBound disables the clique-count bound.
const NoBound = -1

// MetadataKey is the vertex metadata key under which K(G) stores each Clique.
const MetadataKey = "clique"

const methodGraph = "Graph"

// Graph builds the clique graph K(g).
//
// Implementation:
//   - Stage 1: Enumerate maximal cliques, counting as they arrive; the moment
//     the count exceeds bound (unless bound == NoBound) stop with ErrBoundExceeded.
//   - Stage 2: Register cliques by their (injective) Key in a tree map.
//   - Stage 3: Add one vertex per clique, with the Clique in metadata.
//   - Stage 4: For every vertex v of g, join all cliques containing v pairwise.
//     Two cliques intersect iff they share some v, so this yields exactly
//     the intersection edges; equal cliques never occur twice, so no loops.
//
// Errors:
//   - ErrGraphNil, ErrInvalidBound (bound < NoBound).
//   - ErrBoundExceeded when g has more than bound maximal cliques.
//
// Complexity: enumeration plus O(Σ_v c(v)²) edge insertions.
func Graph(g *core.Graph, bound int) (*core.Graph, error) {
	cliques, err := collect(g, bound)
	if err != nil {
		return nil, err
	}

	out := core.NewGraph()
	byVertex := make(map[string][]string)
	it := cliques.Iterator()
	for it.Next() {
		key := it.Key().(string)
		c := it.Value().(Clique)
		if err = out.AddVertex(key); err != nil {
			return nil, fmt.Errorf("%s: %w", methodGraph, err)
		}
		if err = out.SetMetadata(key, MetadataKey, c); err != nil {
			return nil, fmt.Errorf("%s: %w", methodGraph, err)
		}
		for _, v := range c.members {
			byVertex[v] = append(byVertex[v], key)
		}
	}
	for _, keys := range byVertex {
		for i := 0; i < len(keys); i++ {
			for j := i + 1; j < len(keys); j++ {
				if err = out.AddEdge(keys[i], keys[j]); err != nil {
					return nil, fmt.Errorf("%s: %w", methodGraph, err)
				}
			}
		}
	}

	return out, nil
}

// Count returns the number of maximal cliques of g, subject to the same
// bound rule as Graph.
func Count(g *core.Graph, bound int) (int, error) {
	cliques, err := collect(g, bound)
	if err != nil {
		return 0, err
	}

	return cliques.Size(), nil
}

// Of returns the Clique stored on vertex id of a clique graph built by Graph.
func Of(k *core.Graph, id string) (Clique, bool) {
	v, ok := k.Metadata(id, MetadataKey)
	if !ok {
		return Clique{}, false
	}
	c, ok := v.(Clique)

	return c, ok
}

func collect(g *core.Graph, bound int) (*treemap.Map, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if bound < NoBound {
		return nil, fmt.Errorf("%s: bound=%d: %w", methodGraph, bound, ErrInvalidBound)
	}
	registry := treemap.NewWithStringComparator()
	count := 0
	for c := range MaximalCliques(g) {
		count++
		if bound != NoBound && count > bound {
			return nil, fmt.Errorf("%s: more than %d maximal cliques: %w", methodGraph, bound, ErrBoundExceeded)
		}
		registry.Put(c.Key(), c)
	}

	return registry, nil
}
