// SPDX-License-Identifier: MIT
// File: symmetry.go
// Role: Coaffinations and their lift to the clique graph.

package props

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/cliques/bfs"
	"github.com/katalvlaran/cliques/clique"
	"github.com/katalvlaran/cliques/core"
	"github.com/katalvlaran/cliques/matcher"
)

// Coaffinations returns the automorphisms σ of g with d(x, σ(x)) ≥ k for
// every vertex x. Vertices in different components are infinitely far apart.
func Coaffinations(g *core.Graph, k int) iter.Seq[matcher.Mapping] {
	return func(yield func(matcher.Mapping) bool) {
		if g == nil {
			return
		}
		dist, err := bfs.Distances(g)
		if err != nil {
			return
		}
		for sigma := range matcher.Automorphisms(g) {
			if farEnough(dist, sigma, k) && !yield(sigma) {
				return
			}
		}
	}
}

func farEnough(dist map[string]map[string]int, sigma matcher.Mapping, k int) bool {
	for x, y := range sigma {
		if d, ok := dist[x][y]; ok && d < k {
			return false
		}
	}

	return true
}

// LiftToCliqueGraph maps every vertex Q of the clique graph kg to σ(Q),
// where σ is an automorphism of the graph kg was built from.
//
// Errors:
//   - ErrGraphNil.
//   - ErrNotCliqueGraph if a vertex of kg carries no clique.
//   - ErrNotAutomorphism if σ misses a member or σ(Q) is not a vertex of kg.
func LiftToCliqueGraph(kg *core.Graph, sigma matcher.Mapping) (matcher.Mapping, error) {
	if kg == nil {
		return nil, ErrGraphNil
	}
	out := make(matcher.Mapping, kg.Order())
	for _, id := range kg.Vertices() {
		q, ok := clique.Of(kg, id)
		if !ok {
			return nil, fmt.Errorf("LiftToCliqueGraph: vertex %q: %w", id, ErrNotCliqueGraph)
		}
		img := make([]string, 0, q.Len())
		for _, x := range q.Members() {
			y, ok := sigma[x]
			if !ok {
				return nil, fmt.Errorf("LiftToCliqueGraph: %q unmapped: %w", x, ErrNotAutomorphism)
			}
			img = append(img, y)
		}
		key := clique.New(img...).Key()
		if !kg.HasVertex(key) {
			return nil, fmt.Errorf("LiftToCliqueGraph: %s ↦ %s: %w", id, key, ErrNotAutomorphism)
		}
		out[id] = key
	}

	return out, nil
}
