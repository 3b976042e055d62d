// SPDX-License-Identifier: MIT

// Package dominated removes dominated and s-dismantlable pieces of a graph.
//
// A vertex v is dominated when some u ≠ v has N[v] ⊆ N[u]. A graph is
// dismantlable when repeatedly deleting dominated vertices leaves exactly
// one vertex; the empty graph is therefore not dismantlable. A vertex is
// s-dismantlable when the subgraph induced on N(v) is dismantlable, and an
// edge {u, v} is s-dismantlable when the subgraph induced on the common
// neighbours of u and v is.
//
// Reductions
//
//   - Pare deletes dominated vertices to a fixed point.
//   - Collapse deletes s-dismantlable vertices to a fixed point.
//   - CollapseEdges deletes s-dismantlable edges to a fixed point.
//
// Each round removes the first qualifying vertex (sorted ID order) or edge
// (core.Graph.Edges order) and rescans from the start. The pared graph is
// unique up to isomorphism whatever the removal order; the vertex set left
// behind is not, which is why the order is fixed.
//
// Inputs are never mutated. Results are fresh graphs that keep the vertex
// metadata of the survivors, so paring a clique graph keeps its cliques.
//
// Complexity
//
//   - IsDominated: O(V²/64).
//   - Pare: O(V³·V/64) worst case over a single bit-row snapshot.
//   - Collapse and CollapseEdges: one Pare-sized check per candidate per round.
package dominated
