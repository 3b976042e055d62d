// SPDX-License-Identifier: MIT
// Package: cliques/builder
//
// impl_clockwork.go — Clockwork(segments, neighbours, crownSize, perm): the
// segmented sum of a crown and a core, a family whose iterated clique
// graphs grow without bound.
//
// Contract:
//   • k = len(segments) ≥ 2 segments, each of size ≥ 1; crownSize ≥ 1.
//   • Core: segment s is a clique of segments[s] vertices; its i-th vertex
//     is joined to the first neighbours[s][i] vertices of segment s+1
//     (mod k), so 0 ≤ neighbours[s][i] ≤ segments[s+1].
//   • Crown: k cliques of crownSize vertices; vertex i of crown segment s is
//     joined to vertex i of segment s+1, and vertex i of the last segment to
//     vertex perm[i] of the first. perm is a permutation of 0..crownSize-1.
//   • Segmented sum: crown segments s and s+1 (mod k) are both joined
//     completely to core segment s.
//   • Crown vertices come first: idFn(0..k·crownSize-1), then the core.
//
// Complexity:
//   • Time O(k·(crownSize + m)²) for m = max segment size.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliques/core"
)

const (
	methodClockwork      = "Clockwork"
	minClockworkSegments = 2 // one segment would join the crown to itself
)

// Clockwork returns a Constructor for the clockwork graph with the given
// core segments, core links, crown segment size and crown permutation.
func Clockwork(segments []int, neighbours [][]int, crownSize int, perm []int) Constructor {
	segs := append([]int(nil), segments...)
	links := make([][]int, len(neighbours))
	for i, row := range neighbours {
		links[i] = append([]int(nil), row...)
	}
	perm = append([]int(nil), perm...)

	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateClockwork(segs, links, crownSize, perm); err != nil {
			return err
		}
		k := len(segs)
		crownSegs := crown(k, crownSize)
		coreSegs := make([][]int, k)
		next := k * crownSize
		for s, n := range segs {
			coreSegs[s] = make([]int, n)
			for i := range coreSegs[s] {
				coreSegs[s][i] = next
				next++
			}
		}
		if err := addVertices(g, cfg, methodClockwork, next); err != nil {
			return err
		}

		for s := 0; s < k; s++ {
			t := (s + 1) % k
			if err := joinClique(g, cfg, crownSegs[s]); err != nil {
				return err
			}
			if err := joinClique(g, cfg, coreSegs[s]); err != nil {
				return err
			}
			// crown rungs
			for i, v := range crownSegs[s] {
				w := crownSegs[t][i]
				if t == 0 {
					w = crownSegs[0][perm[i]]
				}
				if err := addIndexEdge(g, cfg, methodClockwork, v, w); err != nil {
					return err
				}
			}
			// core links
			for i, v := range coreSegs[s] {
				for _, w := range coreSegs[t][:links[s][i]] {
					if err := addIndexEdge(g, cfg, methodClockwork, v, w); err != nil {
						return err
					}
				}
			}
			// segmented sum
			for _, c := range [][]int{crownSegs[s], crownSegs[t]} {
				for _, u := range c {
					for _, v := range coreSegs[s] {
						if err := addIndexEdge(g, cfg, methodClockwork, u, v); err != nil {
							return err
						}
					}
				}
			}
		}

		return nil
	}
}

func validateClockwork(segs []int, links [][]int, crownSize int, perm []int) error {
	k := len(segs)
	if k < minClockworkSegments {
		return fmt.Errorf("%s: segments=%d < min=%d: %w", methodClockwork, k, minClockworkSegments, ErrTooFewVertices)
	}
	if crownSize < 1 {
		return fmt.Errorf("%s: crownSize=%d < 1: %w", methodClockwork, crownSize, ErrTooFewVertices)
	}
	if len(links) != k {
		return fmt.Errorf("%s: %d neighbour rows for %d segments: %w", methodClockwork, len(links), k, ErrOptionViolation)
	}
	for s, n := range segs {
		if n < 1 {
			return fmt.Errorf("%s: segment %d has size %d: %w", methodClockwork, s, n, ErrTooFewVertices)
		}
		if len(links[s]) != n {
			return fmt.Errorf("%s: segment %d: %d neighbour counts for %d vertices: %w", methodClockwork, s, len(links[s]), n, ErrOptionViolation)
		}
		limit := segs[(s+1)%k]
		for i, d := range links[s] {
			if d < 0 || d > limit {
				return fmt.Errorf("%s: segment %d vertex %d: %d links outside [0,%d]: %w", methodClockwork, s, i, d, limit, ErrOptionViolation)
			}
		}
	}
	if len(perm) != crownSize {
		return fmt.Errorf("%s: permutation of length %d for crownSize %d: %w", methodClockwork, len(perm), crownSize, ErrOptionViolation)
	}
	seen := make([]bool, crownSize)
	for _, p := range perm {
		if p < 0 || p >= crownSize || seen[p] {
			return fmt.Errorf("%s: %v is not a permutation of 0..%d: %w", methodClockwork, perm, crownSize-1, ErrOptionViolation)
		}
		seen[p] = true
	}

	return nil
}

// crown lays out k segments of size consecutive indices from 0.
func crown(k, size int) [][]int {
	out := make([][]int, k)
	for s := range out {
		out[s] = make([]int, size)
		for i := range out[s] {
			out[s][i] = s*size + i
		}
	}

	return out
}

// joinClique makes the given indices pairwise adjacent.
func joinClique(g *core.Graph, cfg builderConfig, idx []int) error {
	for a := 0; a < len(idx); a++ {
		for b := a + 1; b < len(idx); b++ {
			if err := addIndexEdge(g, cfg, methodClockwork, idx[a], idx[b]); err != nil {
				return err
			}
		}
	}

	return nil
}
