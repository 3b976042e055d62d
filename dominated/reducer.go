// SPDX-License-Identifier: MIT
// File: reducer.go
// Role: Bit-row state shared by every reduction in the package.
// Determinism:
//   - Rows follow sorted vertex IDs and every scan walks rows in ascending
//     order, so "first" always means smallest ID.

package dominated

import (
	"github.com/katalvlaran/cliques/core"
	"github.com/katalvlaran/cliques/matrix"
)

// reducer tracks which rows of a snapshot are still present.
type reducer struct {
	am    *matrix.AdjacencyMatrix
	alive matrix.Bitset
}

func newReducer(g *core.Graph) *reducer {
	am := matrix.MustAdjacency(g)

	return &reducer{am: am, alive: am.All()}
}

// dominatedIn returns the first row of set dominated within set, or -1.
func (r *reducer) dominatedIn(set matrix.Bitset) int {
	for i := set.Next(0); i >= 0; i = set.Next(i + 1) {
		if r.isDominatedIn(i, set) {
			return i
		}
	}

	return -1
}

// isDominatedIn reports whether row i is dominated in the subgraph induced on set.
// Only neighbours can dominate, so the scan stays inside N(i).
func (r *reducer) isDominatedIn(i int, set matrix.Bitset) bool {
	nb := r.am.Rows[i].And(set)
	for j := nb.Next(0); j >= 0; j = nb.Next(j + 1) {
		if r.am.Dominates(j, i, set) {
			return true
		}
	}

	return false
}

// pare removes dominated rows from a copy of set until none remain and
// returns the survivors together with the removal order.
func (r *reducer) pare(set matrix.Bitset) (matrix.Bitset, []int) {
	rest := set.Clone()
	var removed []int
	for {
		i := r.dominatedIn(rest)
		if i < 0 {
			return rest, removed
		}
		rest.Clear(i)
		removed = append(removed, i)
	}
}

// dismantlable reports whether the subgraph induced on set pares to one vertex.
func (r *reducer) dismantlable(set matrix.Bitset) bool {
	rest, _ := r.pare(set)

	return rest.Count() == 1
}

// sVertex reports whether row i is s-dismantlable among the alive rows.
func (r *reducer) sVertex(i int) bool {
	return r.dismantlable(r.am.Rows[i].And(r.alive))
}

// sEdge reports whether {i, j} is s-dismantlable among the alive rows.
func (r *reducer) sEdge(i, j int) bool {
	common := r.am.Rows[i].And(r.am.Rows[j])
	common.InPlaceAnd(r.alive)

	return r.dismantlable(common)
}

// survivors returns the subgraph of g induced on the alive rows.
func (r *reducer) survivors(g *core.Graph) *core.Graph {
	keep := make(map[string]bool, r.alive.Count())
	for _, id := range r.am.Names(r.alive) {
		keep[id] = true
	}

	return core.InducedSubgraph(g, keep)
}
