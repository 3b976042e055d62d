// SPDX-License-Identifier: MIT
// Package: cliques/builder
//
// variants_platonic.go — vertex counts and edge lists of the Platonic graphs.
//
// Determinism:
//   • Edge lists are fixed data, each pair stored with U < V.

package builder

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// Enum values.
const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6
	Cube                             // V=8,  E=12
	Octahedron                       // V=6,  E=12
	Dodecahedron                     // V=20, E=30
	Icosahedron                      // V=12, E=30
)

// String returns the lower-case name accepted by ByName.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "tetrahedron"
	case Cube:
		return "cube"
	case Octahedron:
		return "octahedron"
	case Dodecahedron:
		return "dodecahedron"
	case Icosahedron:
		return "icosahedron"
	default:
		return "unknown"
	}
}

// chord is an index pair U < V.
type chord struct{ U, V int }

var platonicVertexCounts = map[PlatonicName]int{
	Tetrahedron:  4,
	Cube:         8,
	Octahedron:   6,
	Dodecahedron: 20,
	Icosahedron:  12,
}

var platonicEdgeSets = map[PlatonicName][]chord{
	// K4.
	Tetrahedron: {
		{0, 1}, {0, 2}, {0, 3},
		{1, 2}, {1, 3},
		{2, 3},
	},

	// Faces 0-1-2-3 and 4-5-6-7, verticals i-(i+4).
	Cube: {
		{0, 1}, {0, 3}, {0, 4},
		{1, 2}, {1, 5},
		{2, 3}, {2, 6},
		{3, 7},
		{4, 5}, {4, 7},
		{5, 6},
		{6, 7},
	},

	// Antipodal pairs {0,1}, {2,3}, {4,5}; everything else adjacent.
	Octahedron: {
		{0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 3}, {1, 4}, {1, 5},
		{2, 4}, {2, 5},
		{3, 4}, {3, 5},
	},

	// Pentagons 0..4 and 5..9, middle 10-cycle 10..19; pentagon vertices
	// attach to alternating middle vertices.
	Dodecahedron: {
		{0, 1}, {0, 4}, {0, 10},
		{1, 2}, {1, 12},
		{2, 3}, {2, 14},
		{3, 4}, {3, 16},
		{4, 18},
		{5, 6}, {5, 9}, {5, 11},
		{6, 7}, {6, 13},
		{7, 8}, {7, 15},
		{8, 9}, {8, 17},
		{9, 19},
		{10, 11}, {10, 19},
		{11, 12},
		{12, 13},
		{13, 14},
		{14, 15},
		{15, 16},
		{16, 17},
		{17, 18},
		{18, 19},
	},

	// Poles 0 and 11, rings 1..5 and 6..10; ring vertex i (1..5) meets the
	// lower ring at i+5 and i+6 (wrapping 11 to 6).
	Icosahedron: {
		{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 5}, {1, 6}, {1, 7},
		{2, 3}, {2, 7}, {2, 8},
		{3, 4}, {3, 8}, {3, 9},
		{4, 5}, {4, 9}, {4, 10},
		{5, 6}, {5, 10},
		{6, 7}, {6, 10}, {6, 11},
		{7, 8}, {7, 11},
		{8, 9}, {8, 11},
		{9, 10}, {9, 11},
		{10, 11},
	},
}
