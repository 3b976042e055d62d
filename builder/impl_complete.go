// SPDX-License-Identifier: MIT
// Package: cliques/builder
//
// impl_complete.go — Complete(n), Empty(n) and CompleteBipartite(m, n).
//
// Contract:
//   • Complete: n ≥ 1; every pair i<j joined.
//   • Empty:    n ≥ 1; n isolated vertices.
//   • CompleteBipartite: m, n ≥ 1; left side idFn(0..m-1), right side
//     idFn(m..m+n-1), every left-right pair joined.
//
// Complexity:
//   • Complete O(n²), CompleteBipartite O(m·n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliques/core"
)

const (
	methodComplete          = "Complete"
	methodEmpty             = "Empty"
	methodCompleteBipartite = "CompleteBipartite"
	minCompleteNodes        = 1
	minPartitionSize        = 1
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addIndexEdge(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Empty returns a Constructor that adds n isolated vertices.
func Empty(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodEmpty, n, minCompleteNodes, ErrTooFewVertices)
		}

		return addVertices(g, cfg, methodEmpty, n)
	}
}

// CompleteBipartite returns a Constructor that builds K_{m,n}.
func CompleteBipartite(m, n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if m < minPartitionSize || n < minPartitionSize {
			return fmt.Errorf("%s: m=%d, n=%d < min=%d: %w",
				methodCompleteBipartite, m, n, minPartitionSize, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodCompleteBipartite, m+n); err != nil {
			return err
		}
		for i := 0; i < m; i++ {
			for j := m; j < m+n; j++ {
				if err := addIndexEdge(g, cfg, methodCompleteBipartite, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
