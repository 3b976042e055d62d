// SPDX-License-Identifier: MIT
// File: enumerate.go
// Role: Lazy maximal clique enumeration (Bron–Kerbosch with Tomita pivoting).
// Determinism:
//   - Rows follow sorted vertex order; candidates are tried in ascending row
//     order, so the sequence is reproducible for a given graph.

package clique

import (
	"iter"

	"github.com/katalvlaran/cliques/core"
	"github.com/katalvlaran/cliques/matrix"
)

// MaximalCliques returns a lazy sequence of the maximal cliques of g.
// A nil or empty graph yields nothing. Stopping the range loop early stops
// the enumeration.
//
// Implementation:
//   - Stage 1: Snapshot g as a bit-packed adjacency matrix.
//   - Stage 2: expand(R, P, X) with pivot u ∈ P ∪ X maximising |P ∩ N(u)|;
//     only P \ N(u) is branched on.
//   - Stage 3: When P and X are both empty, R is maximal and is yielded.
//
// Complexity: O(3^{n/3}) worst case, O(n/64) per set operation.
func MaximalCliques(g *core.Graph) iter.Seq[Clique] {
	return func(yield func(Clique) bool) {
		if g == nil {
			return
		}
		am := matrix.MustAdjacency(g)
		n := am.VertexCount()
		if n == 0 {
			return
		}
		e := &enumerator{am: am, yield: yield}
		e.expand(make([]int, 0, n), am.All(), matrix.NewBitset(n))
	}
}

type enumerator struct {
	am    *matrix.AdjacencyMatrix
	yield func(Clique) bool
}

// expand returns false once the consumer has stopped.
func (e *enumerator) expand(r []int, p, x matrix.Bitset) bool {
	if p.IsEmpty() {
		if x.IsEmpty() {
			return e.yield(e.clique(r))
		}

		return true
	}

	u := e.pivot(p, x)
	cand := p.AndNot(e.am.Rows[u])
	for v := cand.Next(0); v >= 0; v = cand.Next(v + 1) {
		nv := e.am.Rows[v]
		if !e.expand(append(r, v), p.And(nv), x.And(nv)) {
			return false
		}
		p.Clear(v)
		x.Set(v)
	}

	return true
}

func (e *enumerator) pivot(p, x matrix.Bitset) int {
	best, bestCount := -1, -1
	for _, s := range []matrix.Bitset{p, x} {
		for u := s.Next(0); u >= 0; u = s.Next(u + 1) {
			if c := e.am.Rows[u].And(p).Count(); c > bestCount {
				best, bestCount = u, c
			}
		}
	}

	return best
}

// clique materialises row indices. r is in discovery order, New sorts it.
func (e *enumerator) clique(r []int) Clique {
	ms := make([]string, len(r))
	for i, idx := range r {
		ms[i] = e.am.IDs[idx]
	}

	return New(ms...)
}

// All collects MaximalCliques into a slice.
func All(g *core.Graph) []Clique {
	var out []Clique
	for c := range MaximalCliques(g) {
		out = append(out, c)
	}

	return out
}
