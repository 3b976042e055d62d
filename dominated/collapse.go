// SPDX-License-Identifier: MIT
// File: collapse.go
// Role: s-dismantlable vertices and edges and the collapses they drive.

package dominated

import (
	"fmt"

	"github.com/katalvlaran/cliques/core"
)

// IsSDismantlableVertex reports whether the open neighbourhood of v in g is
// dismantlable. An isolated vertex has an empty neighbourhood and is not.
//
// Errors:
//   - ErrGraphNil, core.ErrVertexNotFound.
func IsSDismantlableVertex(g *core.Graph, v string) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.HasVertex(v) {
		return false, fmt.Errorf("IsSDismantlableVertex(%q): %w", v, core.ErrVertexNotFound)
	}
	r := newReducer(g)

	return r.sVertex(r.am.Index[v]), nil
}

// SDismantlableVertex returns the smallest s-dismantlable vertex of g, if any.
func SDismantlableVertex(g *core.Graph) (string, bool) {
	if g == nil {
		return "", false
	}
	r := newReducer(g)
	if i := r.firstSVertex(); i >= 0 {
		return r.am.IDs[i], true
	}

	return "", false
}

// Collapse deletes s-dismantlable vertices until none is left.
// A dominated vertex has a cone for a neighbourhood, so it is s-dismantlable
// too and never survives a collapse.
func Collapse(g *core.Graph) *core.Graph {
	if g == nil {
		return core.NewGraph()
	}
	r := newReducer(g)
	for {
		i := r.firstSVertex()
		if i < 0 {
			return r.survivors(g)
		}
		r.alive.Clear(i)
	}
}

func (r *reducer) firstSVertex() int {
	for i := r.alive.Next(0); i >= 0; i = r.alive.Next(i + 1) {
		if r.sVertex(i) {
			return i
		}
	}

	return -1
}

// IsSDismantlableEdge reports whether the subgraph induced on the common
// neighbours of u and v is dismantlable. An edge in no triangle is not.
//
// Errors:
//   - ErrGraphNil.
//   - core.ErrEdgeNotFound if {u, v} is not an edge of g.
func IsSDismantlableEdge(g *core.Graph, u, v string) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.HasEdge(u, v) {
		return false, fmt.Errorf("IsSDismantlableEdge(%q,%q): %w", u, v, core.ErrEdgeNotFound)
	}
	r := newReducer(g)

	return r.sEdge(r.am.Index[u], r.am.Index[v]), nil
}

// SDismantlableEdge returns the first s-dismantlable edge of g in
// core.Graph.Edges order, if any.
func SDismantlableEdge(g *core.Graph) (core.Edge, bool) {
	if g == nil {
		return core.Edge{}, false
	}
	r := newReducer(g)
	edges := g.Edges()
	if k := r.firstSEdge(edges); k >= 0 {
		return edges[k], true
	}

	return core.Edge{}, false
}

// CollapseEdges deletes s-dismantlable edges until none is left. The vertex
// set is unchanged.
func CollapseEdges(g *core.Graph) *core.Graph {
	if g == nil {
		return core.NewGraph()
	}
	r := newReducer(g)
	r.am = r.am.Clone()
	out := g.Clone()
	edges := g.Edges()
	for {
		k := r.firstSEdge(edges)
		if k < 0 {
			return out
		}
		e := edges[k]
		r.am.ClearEdge(r.am.Index[e.From], r.am.Index[e.To])
		// e is an edge of out by construction
		_ = out.RemoveEdge(e.From, e.To)
		edges = append(edges[:k:k], edges[k+1:]...)
	}
}

func (r *reducer) firstSEdge(edges []core.Edge) int {
	for k, e := range edges {
		if r.sEdge(r.am.Index[e.From], r.am.Index[e.To]) {
			return k
		}
	}

	return -1
}
