// SPDX-License-Identifier: MIT

package simplex

import (
	"strconv"

	"github.com/katalvlaran/lvsimplex/number"
	"github.com/katalvlaran/lvsimplex/tableau"
)

// Snapshot titles.
const (
	TitleInitial   = "INITIAL TABLE"
	titleIteration = "ITERATION "
)

// iterationTitle returns "ITERATION n".
func iterationTitle(n int) string { return titleIteration + strconv.Itoa(n) }

// Stage names the role of a Phase.
type Stage int

const (
	// StageSimplex is the only phase of a problem that needed no Phase 1.
	StageSimplex Stage = iota
	// StagePhase1 drives the auxiliary objective z' to zero.
	StagePhase1
	// StagePhase2 optimizes the original objective after Phase 1.
	StagePhase2
)

// String returns "Simplex", "Phase 1" or "Phase 2".
func (s Stage) String() string {
	switch s {
	case StagePhase1:
		return "Phase 1"
	case StagePhase2:
		return "Phase 2"
	default:
		return "Simplex"
	}
}

// SpecialSolutionType qualifies the result of a phase. None means the phase
// completed normally (feasible after Phase 1, unique optimum after Phase 2).
type SpecialSolutionType int

const (
	// None marks a normal finish.
	None SpecialSolutionType = iota
	// Infeasible marks a Phase 1 optimum with z' above zero.
	Infeasible
	// Unbounded marks an entering column with no eligible leaving row.
	Unbounded
	// MultipleSolutions marks an optimum with a zero reduced cost off the base.
	MultipleSolutions
)

// String returns the upper-case tag, e.g. "MULTIPLE_SOLUTIONS".
func (s SpecialSolutionType) String() string {
	switch s {
	case Infeasible:
		return "INFEASIBLE"
	case Unbounded:
		return "UNBOUNDED"
	case MultipleSolutions:
		return "MULTIPLE_SOLUTIONS"
	default:
		return "NONE"
	}
}

// Outcome returns the lower-case result label used for metrics and reports:
// "optimal", "infeasible", "unbounded" or "multiple_solutions".
func (s SpecialSolutionType) Outcome() string {
	switch s {
	case Infeasible:
		return "infeasible"
	case Unbounded:
		return "unbounded"
	case MultipleSolutions:
		return "multiple_solutions"
	default:
		return "optimal"
	}
}

// Description returns the user-facing explanation of the result.
func (s SpecialSolutionType) Description() string {
	switch s {
	case MultipleSolutions:
		return "The problem has multiple solutions for the decision variables.\n" +
			"An optimal solution has been found and there are non-basic variables with reduced cost " +
			"equal to 0, so there are multiple values for the decision variables that allow obtaining " +
			"the optimal value of f(x).\n" +
			"  One of the solutions is:"
	case Infeasible:
		return "The problem has no solution (infeasible).\n" +
			"The iterations of the first phase have been completed and there are artificial variables " +
			"in the base with values strictly greater than 0."
	case Unbounded:
		return "The problem has an unbounded solution (not limited).\n" +
			"A variable must enter the base but no variable can leave."
	default:
		return ""
	}
}

// Phase is one stage of a solve: its ordered snapshots and result tag.
type Phase[T number.Calculable[T]] struct {
	Tables          []*tableau.Table[T]
	SpecialSolution SpecialSolutionType
	SinglePhase     bool
	Stage           Stage
}

// LastTable returns the final snapshot of the phase, or nil if it has none.
func (p Phase[T]) LastTable() *tableau.Table[T] {
	if len(p.Tables) == 0 {
		return nil
	}

	return p.Tables[len(p.Tables)-1]
}

// Result returns the SpecialSolution of the last phase, which classifies the
// whole solve. An empty list yields None.
func Result[T number.Calculable[T]](phases []Phase[T]) SpecialSolutionType {
	if len(phases) == 0 {
		return None
	}

	return phases[len(phases)-1].SpecialSolution
}
