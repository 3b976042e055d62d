// SPDX-License-Identifier: MIT

// Package builder provides deterministic constructors for the named graphs
// used as inputs, fixtures and retraction targets across cliques.
//
// A Constructor is a closure func(g *core.Graph, cfg builderConfig) error that
// adds vertices and edges to g. BuildGraph allocates the graph, resolves
// BuilderOptions into a builderConfig and runs the constructors in order:
//
//	g, err := builder.BuildGraph(nil, builder.OctahedronGraph())
//	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSymbolIDs()}, builder.Cycle(5))
//
// Vertex labels follow the usual small-graph conventions so that fixtures
// read naturally: Cycle(n) is 0-1-...-(n-1)-0, Path(n) is 0-1-...-(n-1),
// Star(k) and Wheel(n) put the hub at index 0, Circulant(n, jumps) joins i to
// i±j mod n, and Grid/Torus number cell (x, y) as y·cols + x.
//
// ByName resolves textual names ("octahedron", "cycle:5", "circulant:7:1,2")
// into constructors; the command-line tool and the exploration config use it
// for target graphs.
//
// Errors are sentinels (ErrTooFewVertices, ErrOptionViolation, ...) wrapped
// with the constructor name; option constructors panic on meaningless input.
package builder
