// SPDX-License-Identifier: MIT
// File: run.go
// Role: The iterated K driver and its concurrent batch form.

package explore

import (
	"context"
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cliques/builder"
	"github.com/katalvlaran/cliques/clique"
	"github.com/katalvlaran/cliques/core"
	"github.com/katalvlaran/cliques/dominated"
	"github.com/katalvlaran/cliques/retraction"
)

type target struct {
	name string
	g    *core.Graph
}

func resolveTargets(names []string) ([]target, error) {
	out := make([]target, 0, len(names))
	for _, name := range names {
		g, err := builder.Named(name)
		if err != nil {
			return nil, fmt.Errorf("%w: target %q: %v", ErrInvalidConfig, name, err)
		}
		out = append(out, target{name: name, g: g})
	}

	return out, nil
}

// Run follows g through iterated clique graphs as described in the package
// documentation. Step 0 is g itself, pared when cfg.Pare is set.
//
// Errors:
//   - ErrGraphNil, ErrInvalidConfig.
//   - the context error when ctx ends.
//
// Hitting the bound is an outcome, not an error.
func Run(ctx context.Context, g *core.Graph, cfg Config, opts ...Option) (Report, error) {
	if g == nil {
		return Report{}, ErrGraphNil
	}
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	targets, err := resolveTargets(cfg.Targets)
	if err != nil {
		return Report{}, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	search := append([]retraction.Option{retraction.WithContext(ctx)}, o.Search...)

	var rep Report
	cur := g
	for i := 0; ; i++ {
		if err = ctx.Err(); err != nil {
			return rep, err
		}
		if i > 0 {
			k, kerr := clique.Graph(cur, cfg.Bound)
			if errors.Is(kerr, clique.ErrBoundExceeded) {
				rep.Outcome = OutcomeAborted
				o.Logger.Info("bound exceeded", "step", i, "bound", cfg.Bound)

				return rep, nil
			}
			if kerr != nil {
				return rep, fmt.Errorf("step %d: %w", i, kerr)
			}
			cur = k
		}
		if cfg.Pare {
			cur = dominated.Pare(cur)
		}
		cur, _ = core.Canonical(cur)
		rep.Final = cur
		rep.Steps = append(rep.Steps, Step{Index: i, Order: cur.Order(), Size: cur.Size()})
		o.Logger.Debug("step", "i", i, "order", cur.Order(), "size", cur.Size())

		if cur.Order() == 0 {
			rep.Outcome = OutcomeEmpty
			o.Logger.Info("empty graph", "step", i)

			return rep, nil
		}
		if cur.Order() == 1 {
			rep.Outcome = OutcomeDismantled
			o.Logger.Info("dismantled", "step", i)

			return rep, nil
		}
		for _, t := range targets {
			if t.g.Order() > cur.Order() {
				continue
			}
			r, ok, ferr := retraction.Find(cur, t.g, search...)
			if ferr != nil {
				return rep, fmt.Errorf("step %d: target %s: %w", i, t.name, ferr)
			}
			if ok {
				rep.Outcome, rep.Target, rep.Witness = OutcomeRetracts, t.name, r
				o.Logger.Info("retracts", "step", i, "target", t.name)

				return rep, nil
			}
		}
		if i == cfg.Iterations {
			rep.Outcome = OutcomeBudget
			o.Logger.Info("budget spent", "iterations", cfg.Iterations)

			return rep, nil
		}
	}
}

// Classify runs every graph through Run with at most cfg.Workers concurrent
// runs. reports[i] belongs to graphs[i]. The first error cancels the rest.
func Classify(ctx context.Context, graphs []*core.Graph, cfg Config, opts ...Option) ([]Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	reports := make([]Report, len(graphs))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.workers())
	for i, g := range graphs {
		eg.Go(func() error {
			r, err := Run(egCtx, g, cfg, opts...)
			if err != nil {
				return pkgerrors.Wrapf(err, "graph %d", i)
			}
			reports[i] = r

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}
