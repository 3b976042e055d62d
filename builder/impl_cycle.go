// SPDX-License-Identifier: MIT
// Package: cliques/builder
//
// impl_cycle.go — Cycle(n) and Path(n).
//
// Contract:
//   • Cycle: n ≥ 3 (else ErrTooFewVertices); edges i-(i+1)%n.
//   • Path:  n ≥ 1 (else ErrTooFewVertices); edges i-(i+1) for i<n-1.
//   • Vertices idFn(0..n-1) in ascending index order.
//
// Complexity:
//   • Time O(n), Space O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliques/core"
)

const (
	methodCycle   = "Cycle"
	methodPath    = "Path"
	minCycleNodes = 3
	minPathNodes  = 1
)

// Cycle returns a Constructor that builds the n-vertex cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addIndexEdge(g, cfg, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Path returns a Constructor that builds the path P_n on n vertices
// (n-1 edges). Path(1) is a single vertex.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addIndexEdge(g, cfg, methodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
