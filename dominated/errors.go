// SPDX-License-Identifier: MIT

package dominated

import "errors"

var (
	// ErrGraphNil is returned when a nil graph is passed to a predicate.
	ErrGraphNil = errors.New("dominated: graph is nil")
)
