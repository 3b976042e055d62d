// SPDX-License-Identifier: MIT

// Package explore drives iterated clique-graph experiments.
//
// Run follows a graph through G, K(G), K²(G), ... up to Config.Iterations,
// optionally paring dominated vertices after every step (paring does not
// change the K-behaviour of a graph). Each step is checked in turn:
//
//   - a graph of order 1 ends the run as OutcomeDismantled;
//   - an empty input ends it at step 0 as OutcomeEmpty (the empty graph is
//     not dismantlable);
//   - a retraction onto one of Config.Targets ends it as OutcomeRetracts;
//   - a clique count above Config.Bound ends it as OutcomeAborted;
//   - otherwise the run ends as OutcomeBudget after the last iteration.
//
// Classify runs many graphs concurrently and keeps input order. Config can
// be loaded from TOML or YAML and is validated before use.
package explore
