// SPDX-License-Identifier: MIT
// File: octahedra.go
// Role: Octahedron-based criteria.

package props

import (
	"sort"
	"strings"

	"github.com/katalvlaran/cliques/builder"
	"github.com/katalvlaran/cliques/core"
	"github.com/katalvlaran/cliques/matcher"
	"github.com/katalvlaran/cliques/matrix"
)

// SatisfiesTriangleCondition reports whether every triangle of g lies in
// exactly one maximal clique and g has no induced octahedron.
//
// A triangle T lies in a unique maximal clique iff the common
// neighbourhood of T is complete.
func SatisfiesTriangleCondition(g *core.Graph) bool {
	if g == nil {
		return false
	}
	am := matrix.MustAdjacency(g)
	for _, t := range Triangles(g) {
		common := am.Rows[am.Index[t[0]]].And(am.Rows[am.Index[t[1]]])
		common.InPlaceAnd(am.Rows[am.Index[t[2]]])
		if !complete(am, common) {
			return false
		}
	}

	return !matcher.HasInduced(g, octahedron())
}

func complete(am *matrix.AdjacencyMatrix, set matrix.Bitset) bool {
	n := set.Count()
	for v := set.Next(0); v >= 0; v = set.Next(v + 1) {
		if am.Rows[v].And(set).Count() != n-1 {
			return false
		}
	}

	return true
}

// SpecialOctahedron looks for an induced octahedron of g one of whose
// faces is a maximal clique of g. It returns the octahedron's vertices and
// that face, both sorted.
func SpecialOctahedron(g *core.Graph) (octa, face []string, ok bool) {
	if g == nil {
		return nil, nil, false
	}
	pattern := octahedron()
	faces := Triangles(pattern)
	am := matrix.MustAdjacency(g)
	seen := make(map[string]struct{})

	for phi := range matcher.Embeddings(g, pattern) {
		vs := make([]string, 0, len(phi))
		for _, x := range phi {
			vs = append(vs, x)
		}
		sort.Strings(vs)
		key := strings.Join(vs, ",")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		for _, f := range faces {
			a, b, c := am.Index[phi[f[0]]], am.Index[phi[f[1]]], am.Index[phi[f[2]]]
			common := am.Rows[a].And(am.Rows[b])
			common.InPlaceAnd(am.Rows[c])
			if common.IsEmpty() {
				tri := []string{phi[f[0]], phi[f[1]], phi[f[2]]}
				sort.Strings(tri)

				return vs, tri, true
			}
		}
	}

	return nil, nil, false
}

func octahedron() *core.Graph {
	return builder.MustBuild(builder.OctahedronGraph())
}
