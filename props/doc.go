// SPDX-License-Identifier: MIT

// Package props collects structural predicates used while exploring
// iterated clique graphs.
//
// What
//
//   - Degree shape: IsRegular, IsCone, IsCycle, IsPath.
//   - Local shape: IsClosedSurface and IsSurface look at every open
//     neighbourhood; LocalCutpoints lists vertices whose open neighbourhood
//     is disconnected.
//   - Helly: Triangles, ExtendedTriangle and IsHelly use the extended
//     triangle criterion (a graph is clique-Helly iff every extended
//     triangle is a cone). IsEventuallyHelly iterates K.
//   - Symmetry: Coaffinations yields automorphisms that move every vertex
//     at least k steps; LiftToCliqueGraph carries one over to K(G).
//   - Octahedra: SatisfiesTriangleCondition and SpecialOctahedron.
//
// All predicates treat their input as read-only. Vertex lists are sorted.
package props
