// SPDX-License-Identifier: MIT

package matrix

import "errors"

var (
	// ErrGraphNil is returned when a nil graph is passed to a constructor.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrUnknownVertex is returned when a vertex ID has no row.
	ErrUnknownVertex = errors.New("matrix: unknown vertex")

	// ErrOutOfRange indicates a row index outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")
)
