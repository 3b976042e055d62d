// SPDX-License-Identifier: MIT
// Package: cliques/builder
//
// impl_star.go — Star(k) and Wheel(n), both with the hub at index 0.
//
// Contract:
//   • Star:  k ≥ 1 leaves idFn(1..k), each joined to hub idFn(0).
//   • Wheel: n ≥ 4 vertices in total; rim idFn(1..n-1) is a cycle, hub
//     idFn(0) joined to every rim vertex.
//
// Complexity:
//   • Time O(n), Space O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliques/core"
)

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarLeaves = 1
	minWheelNodes = 4 // rim of size n-1 must be a cycle
	hubIndex      = 0
)

// Star returns a Constructor that builds K_{1,k}.
func Star(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < minStarLeaves {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodStar, k, minStarLeaves, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodStar, k+1); err != nil {
			return err
		}
		for i := 1; i <= k; i++ {
			if err := addIndexEdge(g, cfg, methodStar, hubIndex, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor that builds the wheel W_n on n vertices.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodWheel, n); err != nil {
			return err
		}
		rim := n - 1
		for i := 1; i <= rim; i++ {
			if err := addIndexEdge(g, cfg, methodWheel, hubIndex, i); err != nil {
				return err
			}
			next := i%rim + 1
			if err := addIndexEdge(g, cfg, methodWheel, i, next); err != nil {
				return err
			}
		}

		return nil
	}
}
