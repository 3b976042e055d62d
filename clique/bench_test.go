// SPDX-License-Identifier: MIT

package clique_test

import (
	"testing"

	"github.com/katalvlaran/cliques/builder"
	"github.com/katalvlaran/cliques/clique"
)

func BenchmarkGraph_Icosahedron(b *testing.B) {
	g := builder.MustBuild(builder.IcosahedronGraph())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := clique.Graph(g, clique.NoBound); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMaximalCliques_Random(b *testing.B) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(60, 0.3))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range clique.MaximalCliques(g) {
		}
	}
}
