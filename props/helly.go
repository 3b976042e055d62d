// SPDX-License-Identifier: MIT
// File: helly.go
// Role: Triangles, extended triangles and the Helly test.

package props

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cliques/clique"
	"github.com/katalvlaran/cliques/core"
	"github.com/katalvlaran/cliques/matrix"
)

// Triangles returns every triangle of g as a sorted triple, in
// lexicographic order.
func Triangles(g *core.Graph) [][3]string {
	if g == nil {
		return nil
	}
	am := matrix.MustAdjacency(g)
	var out [][3]string
	for i := 0; i < am.VertexCount(); i++ {
		ri := am.Rows[i]
		for j := ri.Next(i + 1); j >= 0; j = ri.Next(j + 1) {
			common := ri.And(am.Rows[j])
			for k := common.Next(j + 1); k >= 0; k = common.Next(k + 1) {
				out = append(out, [3]string{am.IDs[i], am.IDs[j], am.IDs[k]})
			}
		}
	}

	return out
}

// ExtendedTriangle returns the subgraph induced by the triangle {a, b, c}
// and every vertex adjacent to at least two of its vertices.
//
// Errors:
//   - ErrGraphNil.
//   - ErrNotTriangle if a, b and c are not pairwise adjacent.
func ExtendedTriangle(g *core.Graph, a, b, c string) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasEdge(a, b) || !g.HasEdge(b, c) || !g.HasEdge(a, c) {
		return nil, fmt.Errorf("ExtendedTriangle(%q,%q,%q): %w", a, b, c, ErrNotTriangle)
	}
	am := matrix.MustAdjacency(g)

	return am.Induced(extension(am, am.Index[a], am.Index[b], am.Index[c])), nil
}

func extension(am *matrix.AdjacencyMatrix, a, b, c int) matrix.Bitset {
	ra, rb, rc := am.Rows[a], am.Rows[b], am.Rows[c]
	keep := ra.And(rb)
	for w := range keep {
		keep[w] |= rb[w]&rc[w] | ra[w]&rc[w]
	}
	keep.Set(a)
	keep.Set(b)
	keep.Set(c)

	return keep
}

// IsHelly reports whether the maximal cliques of g have the Helly
// property, using the fact that this holds iff every extended triangle
// has a universal vertex.
func IsHelly(g *core.Graph) bool {
	if g == nil {
		return false
	}
	am := matrix.MustAdjacency(g)
	for _, t := range Triangles(g) {
		ext := extension(am, am.Index[t[0]], am.Index[t[1]], am.Index[t[2]])
		if !hasUniversal(am, ext) {
			return false
		}
	}

	return true
}

func hasUniversal(am *matrix.AdjacencyMatrix, set matrix.Bitset) bool {
	n := set.Count()
	for v := set.Next(0); v >= 0; v = set.Next(v + 1) {
		if am.Rows[v].And(set).Count() == n-1 {
			return true
		}
	}

	return false
}

// IsEventuallyHelly reports whether some K^i(g) with i ≤ iterations is
// Helly. A clique graph exceeding bound ends the search with false.
func IsEventuallyHelly(g *core.Graph, iterations, bound int) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	for i := 0; ; i++ {
		if IsHelly(g) {
			return true, nil
		}
		if i == iterations {
			return false, nil
		}
		k, err := clique.Graph(g, bound)
		if errors.Is(err, clique.ErrBoundExceeded) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("IsEventuallyHelly: step %d: %w", i+1, err)
		}
		g, _ = core.Canonical(k)
	}
}
