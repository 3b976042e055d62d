// SPDX-License-Identifier: MIT

package explore

import (
	"github.com/katalvlaran/cliques/core"
	"github.com/katalvlaran/cliques/retraction"
)

// Outcome is how a run ended.
type Outcome int

const (
	// OutcomeBudget means every iteration ran without a decision.
	OutcomeBudget Outcome = iota
	// OutcomeDismantled means some step had exactly one vertex.
	OutcomeDismantled
	// OutcomeRetracts means some step retracted onto a target.
	OutcomeRetracts
	// OutcomeAborted means a clique graph exceeded the bound.
	OutcomeAborted
	// OutcomeEmpty means the input had no vertices; K of the empty graph
	// is empty again, so nothing is decided.
	OutcomeEmpty
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDismantled:
		return "dismantled"
	case OutcomeRetracts:
		return "retracts"
	case OutcomeAborted:
		return "aborted"
	case OutcomeEmpty:
		return "empty"
	default:
		return "budget"
	}
}

// Step records one graph of the sequence.
type Step struct {
	Index int
	Order int
	Size  int
}

// Report is the result of Run.
type Report struct {
	Outcome Outcome
	Steps   []Step

	// Target and Witness are set for OutcomeRetracts.
	Target  string
	Witness retraction.Retraction

	// Final is the last graph computed, canonically relabelled.
	Final *core.Graph
}

// Last returns the final step; a Report from Run always has one.
func (r Report) Last() Step {
	if len(r.Steps) == 0 {
		return Step{}
	}

	return r.Steps[len(r.Steps)-1]
}
