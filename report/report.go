// SPDX-License-Identifier: MIT

package report

import (
	"fmt"

	"github.com/katalvlaran/lvsimplex/number"
	"github.com/katalvlaran/lvsimplex/simplex"
	"github.com/katalvlaran/lvsimplex/tableau"
)

// ObjectivePlaces is the number of fractional digits of the displayed objective.
const ObjectivePlaces = 2

// Report is the rendered result of one solve.
type Report struct {
	Kind      string          `json:"kind"`
	Input     Input           `json:"input"`
	Phases    []PhaseView     `json:"phases"`
	Outcome   string          `json:"outcome"`
	Message   string          `json:"message,omitempty"`
	Objective string          `json:"objective,omitempty"`
	Exact     string          `json:"objective_exact,omitempty"`
	Variables []VariableValue `json:"variables,omitempty"`
}

// Input echoes the problem as entered.
type Input struct {
	Minimize    bool              `json:"minimize"`
	Objective   []string          `json:"objective"`
	Constraints []InputConstraint `json:"constraints"`
}

// InputConstraint is one constraint line of the echo.
type InputConstraint struct {
	Coefficients []string `json:"coefficients"`
	Relation     string   `json:"relation"`
	Bound        string   `json:"bound"`
}

// PhaseView is one phase of the solve.
type PhaseView struct {
	Title           string      `json:"title"`
	SinglePhase     bool        `json:"single_phase"`
	SpecialSolution string      `json:"special_solution,omitempty"`
	Tables          []TableView `json:"tables"`
}

// TableView is one tableau snapshot.
type TableView struct {
	Title         string     `json:"title"`
	ColumnHeaders []string   `json:"column_headers"`
	RowHeaders    []string   `json:"row_headers"`
	Cells         [][]string `json:"cells"`
	RHS           []string   `json:"rhs"`
	Pivot         *PivotView `json:"pivot,omitempty"`
}

// PivotView marks the element the next iteration pivots on.
type PivotView struct {
	Row    int    `json:"row"`
	Column int    `json:"column"`
	Value  string `json:"value"`
}

// VariableValue is the optimal value of one decision variable.
type VariableValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Build renders phases into a Report.
//
// The objective is read in the solver's maximization convention and negated
// back for minimization problems. Infeasible and unbounded results carry the
// explanation in Message and no solution.
func Build[T number.Calculable[T]](kind string, in Input, phases []simplex.Phase[T]) (*Report, error) {
	if len(phases) == 0 {
		return nil, fmt.Errorf("report.Build: %w", simplex.ErrNoPhases)
	}

	result := simplex.Result(phases)
	r := &Report{
		Kind:    kind,
		Input:   in,
		Phases:  make([]PhaseView, 0, len(phases)),
		Outcome: result.Outcome(),
		Message: result.Description(),
	}
	for _, p := range phases {
		r.Phases = append(r.Phases, phaseView(p))
	}
	if result == simplex.Infeasible || result == simplex.Unbounded {
		return r, nil
	}

	sol, err := simplex.ExtractSolution(phases)
	if err != nil {
		return nil, fmt.Errorf("report.Build: %w", err)
	}
	// The tableau maximizes -f for min problems, so RHS[0] holds max(-f).
	// The report shows f itself.
	objective := sol.Objective
	if in.Minimize {
		objective = objective.Negate()
	}
	r.Objective = objective.Decimal(ObjectivePlaces)
	r.Exact = objective.String()
	for i, name := range sol.Names {
		r.Variables = append(r.Variables, VariableValue{Name: name, Value: sol.Values[i].String()})
	}

	return r, nil
}

// phaseView renders one phase. Every snapshot but the last shows the pivot
// the following iteration applies.
func phaseView[T number.Calculable[T]](p simplex.Phase[T]) PhaseView {
	v := PhaseView{
		Title:       p.Stage.String(),
		SinglePhase: p.SinglePhase,
		Tables:      make([]TableView, 0, len(p.Tables)),
	}
	if p.SpecialSolution != simplex.None {
		v.SpecialSolution = p.SpecialSolution.String()
	}
	for i, t := range p.Tables {
		v.Tables = append(v.Tables, tableView(t, i < len(p.Tables)-1))
	}

	return v
}

func tableView[T number.Calculable[T]](t *tableau.Table[T], withPivot bool) TableView {
	v := TableView{
		Title:         t.Title(),
		ColumnHeaders: t.ColumnHeaders(),
		RowHeaders:    t.RowHeaders(),
		Cells:         make([][]string, t.Rows()),
		RHS:           make([]string, t.Rows()),
	}
	for i := 0; i < t.Rows(); i++ {
		row := t.Row(i)
		cells := make([]string, row.Len())
		for j := range cells {
			cells[j] = row.At(j).String()
		}
		v.Cells[i] = cells
		v.RHS[i] = t.RHSAt(i).String()
	}
	if p := t.Pivot(); withPivot && p != nil && !p.IsUnbounded() {
		v.Pivot = &PivotView{Row: p.Row, Column: p.Column, Value: p.Value.String()}
	}

	return v
}
