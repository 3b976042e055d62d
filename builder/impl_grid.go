// SPDX-License-Identifier: MIT
// Package: cliques/builder
//
// impl_grid.go — Grid(rows, cols) and Torus(rows, cols) on a row-major cell
// index: cell (x, y) is vertex idFn(y*cols + x).
//
// Contract:
//   • Grid:  rows, cols ≥ 1; cells joined to their N/E/S/W neighbours.
//   • Torus: rows, cols ≥ 4; offsets (1,0), (0,1), (1,1) taken modulo the
//     sides. Every link is an induced 6-cycle, so the result is a closed
//     surface (a 6-regular triangulated torus with 2·rows·cols triangles).
//
// Complexity:
//   • Time O(rows·cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliques/core"
)

const (
	methodGrid   = "Grid"
	methodTorus  = "Torus"
	minGridSide  = 1
	minTorusSide = 4 // smaller sides create chords in the links
)

var (
	gridOffsets  = [][2]int{{1, 0}, {0, 1}}
	torusOffsets = [][2]int{{1, 0}, {0, 1}, {1, 1}}
)

// Grid returns a Constructor for the rows×cols grid graph.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("%s: %dx%d < min=%d: %w", methodGrid, rows, cols, minGridSide, ErrTooFewVertices)
		}

		return buildCells(g, cfg, methodGrid, rows, cols, gridOffsets, false)
	}
}

// Torus returns a Constructor for the triangulated rows×cols torus.
func Torus(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minTorusSide || cols < minTorusSide {
			return fmt.Errorf("%s: %dx%d < min=%d: %w", methodTorus, rows, cols, minTorusSide, ErrTooFewVertices)
		}

		return buildCells(g, cfg, methodTorus, rows, cols, torusOffsets, true)
	}
}

// buildCells joins every cell to cell+offset, wrapping when wrap is set and
// dropping out-of-bounds targets otherwise.
func buildCells(g *core.Graph, cfg builderConfig, method string, rows, cols int, offsets [][2]int, wrap bool) error {
	if err := addVertices(g, cfg, method, rows*cols); err != nil {
		return err
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			for _, d := range offsets {
				nx, ny := x+d[0], y+d[1]
				if wrap {
					nx, ny = nx%cols, ny%rows
				} else if nx >= cols || ny >= rows {
					continue
				}
				if err := addIndexEdge(g, cfg, method, y*cols+x, ny*cols+nx); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
