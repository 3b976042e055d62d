// SPDX-License-Identifier: MIT
// File: homotopy.go
// Role: The homotopy clique graph H(G).

package clique

import (
	"fmt"

	"github.com/katalvlaran/cliques/core"
)

// HomotopyIDSeparator joins the vertex and clique parts of an H(G) vertex ID.
const HomotopyIDSeparator = "@"

// HomotopyGraph builds H(g): one vertex "x@{Q}" for every vertex x and
// maximal clique Q with x ∈ Q; (x, Q) ~ (y, P) iff x ∈ P and y ∈ Q.
// Each vertex carries its clique Q under MetadataKey.
//
// Errors:
//   - ErrGraphNil for a nil graph.
//
// Complexity: O(p²) membership tests for p = Σ_Q |Q| pairs.
func HomotopyGraph(g *core.Graph) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	type pair struct {
		x  string
		q  Clique
		id string
	}
	var pairs []pair
	for q := range MaximalCliques(g) {
		for _, x := range q.members {
			pairs = append(pairs, pair{x: x, q: q, id: x + HomotopyIDSeparator + q.Key()})
		}
	}

	out := core.NewGraph()
	for _, p := range pairs {
		if err := out.AddVertex(p.id); err != nil {
			return nil, fmt.Errorf("HomotopyGraph: %w", err)
		}
		if err := out.SetMetadata(p.id, MetadataKey, p.q); err != nil {
			return nil, fmt.Errorf("HomotopyGraph: %w", err)
		}
	}
	for i := range pairs {
		for j := i + 1; j < len(pairs); j++ {
			a, b := pairs[i], pairs[j]
			if b.q.Contains(a.x) && a.q.Contains(b.x) {
				if err := out.AddEdge(a.id, b.id); err != nil {
					return nil, fmt.Errorf("HomotopyGraph: %w", err)
				}
			}
		}
	}

	return out, nil
}
