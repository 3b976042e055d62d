// SPDX-License-Identifier: MIT
// File: vertices.go
// Role: Dominated vertices, paring and dismantlability.

package dominated

import (
	"fmt"

	"github.com/katalvlaran/cliques/core"
)

// IsDominated reports whether v is dominated in g.
//
// Errors:
//   - ErrGraphNil for a nil graph.
//   - core.ErrVertexNotFound if v is not a vertex of g.
func IsDominated(g *core.Graph, v string) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.HasVertex(v) {
		return false, fmt.Errorf("IsDominated(%q): %w", v, core.ErrVertexNotFound)
	}
	r := newReducer(g)

	return r.isDominatedIn(r.am.Index[v], r.alive), nil
}

// DominatedVertex returns the smallest dominated vertex of g, if any.
func DominatedVertex(g *core.Graph) (string, bool) {
	if g == nil {
		return "", false
	}
	r := newReducer(g)
	if i := r.dominatedIn(r.alive); i >= 0 {
		return r.am.IDs[i], true
	}

	return "", false
}

// Pare deletes dominated vertices until none is left and returns the
// result as a new graph. Pare(Pare(g)) equals Pare(g). A nil g yields an
// empty graph.
func Pare(g *core.Graph) *core.Graph {
	if g == nil {
		return core.NewGraph()
	}
	r := newReducer(g)
	r.alive, _ = r.pare(r.alive)

	return r.survivors(g)
}

// Dismantling returns the vertices Pare deletes, in deletion order.
func Dismantling(g *core.Graph) []string {
	if g == nil {
		return nil
	}
	r := newReducer(g)
	_, removed := r.pare(r.alive)
	out := make([]string, len(removed))
	for k, i := range removed {
		out[k] = r.am.IDs[i]
	}

	return out
}

// IsDismantlable reports whether Pare(g) has exactly one vertex.
// The empty graph is not dismantlable.
func IsDismantlable(g *core.Graph) bool {
	if g == nil {
		return false
	}
	r := newReducer(g)

	return r.dismantlable(r.alive)
}
