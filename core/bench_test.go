// SPDX-License-Identifier: MIT

package core_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/cliques/core"
)

func benchGrid(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n*n; i++ {
		_ = g.AddVertex(strconv.Itoa(i))
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			id := strconv.Itoa(r*n + c)
			if c+1 < n {
				_ = g.AddEdge(id, strconv.Itoa(r*n+c+1))
			}
			if r+1 < n {
				_ = g.AddEdge(id, strconv.Itoa((r+1)*n+c))
			}
		}
	}

	return g
}

func BenchmarkClone(b *testing.B) {
	g := benchGrid(30)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}

func BenchmarkInducedSubgraph(b *testing.B) {
	g := benchGrid(30)
	keep := make(map[string]bool)
	for i := 0; i < 450; i++ {
		keep[strconv.Itoa(i)] = true
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = core.InducedSubgraph(g, keep)
	}
}
