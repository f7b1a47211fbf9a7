// SPDX-License-Identifier: MIT

package simplex

import "errors"

var (
	// ErrNonConvergence is returned when a phase exceeds the iteration guard.
	ErrNonConvergence = errors.New("simplex: iteration limit reached without convergence")

	// ErrNoPivot is returned by Transform on a table without a finite pivot.
	ErrNoPivot = errors.New("simplex: table has no finite pivot")

	// ErrNoSolution is returned by ExtractSolution for infeasible or
	// unbounded results.
	ErrNoSolution = errors.New("simplex: problem has no optimal solution")

	// ErrNoPhases is returned by ExtractSolution on an empty phase list.
	ErrNoPhases = errors.New("simplex: no phases")
)
