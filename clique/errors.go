// SPDX-License-Identifier: MIT

package clique

import "errors"

var (
	// ErrBoundExceeded signals that the graph has more maximal cliques than
	// the requested bound. It is an expected outcome, not a failure of the input.
	ErrBoundExceeded = errors.New("clique: number of maximal cliques exceeds bound")

	// ErrGraphNil is returned for a nil input graph.
	ErrGraphNil = errors.New("clique: graph is nil")

	// ErrInvalidBound is returned for a bound below NoBound.
	ErrInvalidBound = errors.New("clique: invalid bound")
)
