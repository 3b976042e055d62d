// SPDX-License-Identifier: MIT

package explore

import "errors"

var (
	// ErrGraphNil is returned when Run is given a nil graph.
	ErrGraphNil = errors.New("explore: graph is nil")

	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("explore: invalid config")

	// ErrConfigFormat is returned for a config file with an unknown extension.
	ErrConfigFormat = errors.New("explore: unsupported config format")
)
