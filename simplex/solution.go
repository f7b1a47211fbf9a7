// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsimplex/number"
	"github.com/katalvlaran/lvsimplex/tableau"
)

// Solution is the optimum read off the final table.
type Solution[T number.Calculable[T]] struct {
	Objective T        // RHS of row 0 in the maximization convention
	Values    []T      // one value per decision variable, in order
	Names     []string // x1..xn
}

// ExtractSolution reads the optimum from the last table of phases.
// A decision variable takes the RHS of the row it is basic in, or zero when
// it is non-basic. For an alternate-optimum result one of the optimal
// vertices is returned.
// Returns ErrNoSolution for infeasible and unbounded results.
func ExtractSolution[T number.Calculable[T]](phases []Phase[T]) (Solution[T], error) {
	if len(phases) == 0 {
		return Solution[T]{}, ErrNoPhases
	}
	if r := Result(phases); r == Infeasible || r == Unbounded {
		return Solution[T]{}, fmt.Errorf("ExtractSolution: %s: %w", r, ErrNoSolution)
	}
	last := phases[len(phases)-1].LastTable()
	if last == nil {
		return Solution[T]{}, ErrNoPhases
	}

	zero, err := last.Objective().Create("0")
	if err != nil {
		return Solution[T]{}, fmt.Errorf("ExtractSolution: %w", err)
	}
	basic := make(map[string]int, last.Rows())
	for i, h := range last.RowHeaders() {
		basic[tableau.StripHeader(h)] = i
	}

	sol := Solution[T]{Objective: last.Objective()}
	for _, name := range last.ColumnHeaders() {
		if !strings.HasPrefix(name, tableau.DecisionPrefix) {
			continue
		}
		v := zero
		if i, ok := basic[name]; ok {
			v = last.RHSAt(i)
		}
		sol.Names = append(sol.Names, name)
		sol.Values = append(sol.Values, v)
	}

	return sol, nil
}
