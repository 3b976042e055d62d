// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighbourhood queries (open, closed, common) and degrees.
// Determinism:
//   - Every returned ID slice is sorted lexicographically.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns N(id), the open neighbourhood, sorted.
//
// Errors:
//   - ErrVertexNotFound if id is absent.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbs, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%q): %w", id, ErrVertexNotFound)
	}

	return sortedKeys(nbs), nil
}

// Degree returns |N(id)|.
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbs, ok := g.adj[id]
	if !ok {
		return 0, fmt.Errorf("Degree(%q): %w", id, ErrVertexNotFound)
	}

	return len(nbs), nil
}

// ClosedNeighborhood returns N[v] = {v} ∪ N(v), sorted.
//
// Errors:
//   - ErrVertexNotFound if v is absent.
func ClosedNeighborhood(g *Graph, v string) ([]string, error) {
	nbs, err := g.Neighbors(v)
	if err != nil {
		return nil, fmt.Errorf("ClosedNeighborhood: %w", err)
	}
	i := sort.SearchStrings(nbs, v)
	nbs = append(nbs, "")
	copy(nbs[i+1:], nbs[i:])
	nbs[i] = v

	return nbs, nil
}

// CommonNeighbors returns N(u) ∩ N(v), sorted.
//
// Errors:
//   - ErrVertexNotFound if u or v is absent.
func CommonNeighbors(g *Graph, u, v string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nu, ok := g.adj[u]
	if !ok {
		return nil, fmt.Errorf("CommonNeighbors(%q,%q): %w", u, v, ErrVertexNotFound)
	}
	nv, ok := g.adj[v]
	if !ok {
		return nil, fmt.Errorf("CommonNeighbors(%q,%q): %w", u, v, ErrVertexNotFound)
	}
	if len(nv) < len(nu) {
		nu, nv = nv, nu
	}
	out := make([]string, 0, len(nu))
	for w := range nu {
		if _, ok = nv[w]; ok {
			out = append(out, w)
		}
	}
	sort.Strings(out)

	return out, nil
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
