// SPDX-License-Identifier: MIT
// File: expr.go
// Role: Edge-expression grammar and GAP adjacency lists.

package catalog

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2"

	"github.com/katalvlaran/cliques/core"
)

// edgeExpr is a comma-separated list of vertex runs.
type edgeExpr struct {
	Runs []*vertexRun `parser:"@@ ( \",\" @@ )*"`
}

// vertexRun is a path v0-v1-...-vk; a single vertex is an isolated vertex.
type vertexRun struct {
	Vertices []string `parser:"@(Ident | Int) ( \"-\" @(Ident | Int) )*"`
}

var exprParser = participle.MustBuild[edgeExpr]()

// ParseExpr builds a graph from an edge expression such as "0-1-2-3-0, 4"
// or "a-b, b-c-a". Repeated edges collapse.
//
// Errors:
//   - ErrBadExpr wrapping the parser message.
//   - core.ErrLoopNotAllowed for a run like "1-1".
func ParseExpr(s string) (*core.Graph, error) {
	expr, err := exprParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("ParseExpr(%q): %w: %v", s, ErrBadExpr, err)
	}
	g := core.NewGraph()
	for _, run := range expr.Runs {
		for _, v := range run.Vertices {
			if err = g.AddVertex(v); err != nil {
				return nil, fmt.Errorf("ParseExpr: %w", err)
			}
		}
		for i := 1; i < len(run.Vertices); i++ {
			if err = g.AddEdge(run.Vertices[i-1], run.Vertices[i]); err != nil {
				return nil, fmt.Errorf("ParseExpr(%q): %w", s, err)
			}
		}
	}

	return g, nil
}

// FromGAPAdjacency builds a graph on "0".."n-1" from adjacency lists whose
// entries are 1-based, so lists[i] holding j joins i and j-1.
//
// Errors:
//   - ErrBadAdjacency for an entry outside 1..n.
//   - core.ErrLoopNotAllowed when a list names its own vertex.
func FromGAPAdjacency(lists [][]int) (*core.Graph, error) {
	n := len(lists)
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddVertex(strconv.Itoa(i))
	}
	for i, adj := range lists {
		for _, j := range adj {
			if j < 1 || j > n {
				return nil, fmt.Errorf("FromGAPAdjacency: list %d entry %d: %w", i, j, ErrBadAdjacency)
			}
			if err := g.AddEdge(strconv.Itoa(i), strconv.Itoa(j-1)); err != nil {
				return nil, fmt.Errorf("FromGAPAdjacency: %w", err)
			}
		}
	}

	return g, nil
}
