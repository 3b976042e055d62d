// SPDX-License-Identifier: MIT

package props

import "errors"

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("props: graph is nil")

	// ErrNotTriangle is returned when three vertices are not pairwise adjacent.
	ErrNotTriangle = errors.New("props: vertices do not form a triangle")

	// ErrNotCliqueGraph is returned when a vertex carries no clique metadata.
	ErrNotCliqueGraph = errors.New("props: graph was not built by clique.Graph")

	// ErrNotAutomorphism is returned when a map does not preserve the clique set.
	ErrNotAutomorphism = errors.New("props: map is not an automorphism")
)
