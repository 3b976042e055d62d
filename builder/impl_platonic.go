// SPDX-License-Identifier: MIT
// Package: cliques/builder
//
// impl_platonic.go — PlatonicSolid(name, withCenter).
//
// Contract:
//   • Unknown name → ErrOptionViolation.
//   • Shell vertices idFn(0..n-1); with withCenter an extra hub idFn(n) is
//     joined to every shell vertex (the cone over the solid).
//
// Complexity:
//   • O(V+E), V ≤ 21, E ≤ 50.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliques/core"
)

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicSolid returns a Constructor for the 1-skeleton of the named solid,
// optionally coned off by a hub vertex.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %d: %w", methodPlatonicSolid, int(name), ErrOptionViolation)
		}
		total := n
		if withCenter {
			total++
		}
		if err := addVertices(g, cfg, methodPlatonicSolid, total); err != nil {
			return err
		}
		for _, ch := range platonicEdgeSets[name] {
			if err := addIndexEdge(g, cfg, methodPlatonicSolid, ch.U, ch.V); err != nil {
				return err
			}
		}
		if withCenter {
			for i := 0; i < n; i++ {
				if err := addIndexEdge(g, cfg, methodPlatonicSolid, n, i); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// OctahedronGraph is PlatonicSolid(Octahedron, false): six vertices of degree 4.
func OctahedronGraph() Constructor { return PlatonicSolid(Octahedron, false) }

// IcosahedronGraph is PlatonicSolid(Icosahedron, false).
func IcosahedronGraph() Constructor { return PlatonicSolid(Icosahedron, false) }
