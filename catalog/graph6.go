// SPDX-License-Identifier: MIT
// File: graph6.go
// Role: graph6 conversion through gonum's encoder.

package catalog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding/graph6"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/cliques/core"
)

// header is the optional graph6 file prefix.
const header = ">>graph6<<"

// Decode parses one graph6 string into a graph with vertices "0".."n-1".
//
// Errors:
//   - ErrInvalidGraph6.
func Decode(s string) (*core.Graph, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), header)
	g6 := graph6.Graph(s)
	if s == "" || !graph6.IsValid(g6) {
		return nil, fmt.Errorf("Decode(%q): %w", s, ErrInvalidGraph6)
	}

	out := core.NewGraph()
	nodes := g6.Nodes()
	for nodes.Next() {
		if err := out.AddVertex(strconv.FormatInt(nodes.Node().ID(), 10)); err != nil {
			return nil, fmt.Errorf("Decode: %w", err)
		}
	}
	nodes.Reset()
	for nodes.Next() {
		u := nodes.Node().ID()
		for _, v := range graph.NodesOf(g6.From(u)) {
			if u < v.ID() {
				if err := out.AddEdge(strconv.FormatInt(u, 10), strconv.FormatInt(v.ID(), 10)); err != nil {
					return nil, fmt.Errorf("Decode: %w", err)
				}
			}
		}
	}

	return out, nil
}

// MustDecode is Decode for fixtures; it panics on error.
func MustDecode(s string) *core.Graph {
	g, err := Decode(s)
	if err != nil {
		panic(err)
	}

	return g
}

// Encode returns the graph6 string of g.
//
// Errors:
//   - ErrGraphNil.
func Encode(g *core.Graph) (string, error) {
	if g == nil {
		return "", ErrGraphNil
	}
	ids := vertexOrder(g)
	index := make(map[string]int64, len(ids))
	ug := simple.NewUndirectedGraph()
	for i, id := range ids {
		index[id] = int64(i)
		ug.AddNode(simple.Node(int64(i)))
	}
	for _, e := range g.Edges() {
		ug.SetEdge(ug.NewEdge(simple.Node(index[e.From]), simple.Node(index[e.To])))
	}

	return string(graph6.Encode(ug)), nil
}

// vertexOrder sorts numerically when every ID is an integer.
func vertexOrder(g *core.Graph) []string {
	ids := g.Vertices()
	nums := make(map[string]int, len(ids))
	for _, id := range ids {
		n, err := strconv.Atoi(id)
		if err != nil {
			return ids
		}
		nums[id] = n
	}
	sort.SliceStable(ids, func(i, j int) bool { return nums[ids[i]] < nums[ids[j]] })

	return ids
}
