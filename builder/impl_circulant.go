// SPDX-License-Identifier: MIT
// Package: cliques/builder
//
// impl_circulant.go — Circulant(n, jumps): i joined to (i±j) mod n for every jump j.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • every jump j satisfies 1 ≤ j ≤ n/2 (else ErrOptionViolation); repeated
//     jumps are harmless.
//   • Circulant(n, []int{1}) is Cycle(n).
//
// Complexity:
//   • Time O(n·|jumps|).

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliques/core"
)

const (
	methodCirculant   = "Circulant"
	minCirculantNodes = 3
)

// Circulant returns a Constructor for the circulant graph C_n(jumps).
func Circulant(n int, jumps []int) Constructor {
	js := append([]int(nil), jumps...)

	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCirculantNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCirculant, n, minCirculantNodes, ErrTooFewVertices)
		}
		if len(js) == 0 {
			return fmt.Errorf("%s: no jumps: %w", methodCirculant, ErrOptionViolation)
		}
		for _, j := range js {
			if j < 1 || j > n/2 {
				return fmt.Errorf("%s: jump %d not in [1,%d]: %w", methodCirculant, j, n/2, ErrOptionViolation)
			}
		}
		if err := addVertices(g, cfg, methodCirculant, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for _, j := range js {
				if err := addIndexEdge(g, cfg, methodCirculant, i, (i+j)%n); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
