// SPDX-License-Identifier: MIT

package explore

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/cliques/retraction"
)

// Option configures Run and Classify.
type Option func(*Options)

// Options holds non-config knobs.
type Options struct {
	// Logger receives per-step debug records and outcome info records.
	Logger *log.Logger

	// Search is passed to every retraction search.
	Search []retraction.Option
}

func defaultOptions() Options {
	return Options{Logger: log.New(io.Discard)}
}

// WithLogger sets the logger; nil keeps the discard logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSearchOptions forwards options to the retraction searches.
func WithSearchOptions(opts ...retraction.Option) Option {
	return func(o *Options) { o.Search = append(o.Search, opts...) }
}
