// SPDX-License-Identifier: MIT

package catalog

import "errors"

var (
	// ErrInvalidGraph6 is returned for a malformed graph6 string.
	ErrInvalidGraph6 = errors.New("catalog: invalid graph6 string")

	// ErrGraphNil is returned when a nil graph is encoded.
	ErrGraphNil = errors.New("catalog: graph is nil")

	// ErrBadExpr is returned when an edge expression does not parse.
	ErrBadExpr = errors.New("catalog: invalid edge expression")

	// ErrBadAdjacency is returned for an out-of-range GAP adjacency entry.
	ErrBadAdjacency = errors.New("catalog: invalid adjacency list")
)
