// SPDX-License-Identifier: MIT

package tableau

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsimplex/number"
)

// Relation is the comparison operator of a constraint.
type Relation int

const (
	// LessEqual is a·x ≤ b.
	LessEqual Relation = iota
	// GreaterEqual is a·x ≥ b.
	GreaterEqual
	// Equal is a·x = b.
	Equal
)

// String renders the relation as "<=", ">=" or "=".
func (r Relation) String() string {
	switch r {
	case LessEqual:
		return "<="
	case GreaterEqual:
		return ">="
	case Equal:
		return "="
	default:
		return fmt.Sprintf("Relation(%d)", int(r))
	}
}

// ParseRelation accepts "<", "<=", "≤", ">", ">=", "≥" and "=".
// Returns ErrUnknownRelation otherwise.
func ParseRelation(s string) (Relation, error) {
	switch strings.TrimSpace(s) {
	case "<", "<=", "≤":
		return LessEqual, nil
	case ">", ">=", "≥":
		return GreaterEqual, nil
	case "=", "==":
		return Equal, nil
	default:
		return 0, fmt.Errorf("ParseRelation(%q): %w", s, ErrUnknownRelation)
	}
}

// Constraint is one row a·x (relation) b of the problem.
type Constraint[T number.Calculable[T]] struct {
	Coefficients []T
	Bound        T
	Relation     Relation
}

// LiteralConstraint is a Constraint whose numbers are still literals.
type LiteralConstraint struct {
	Coefficients []string
	Bound        string
	Relation     Relation
}

// Build assembles the initial tableau of an LP.
//
// Conventions:
//   - row 0 holds the negated objective coefficients (reduced costs), inverted
//     once more when minimize is set; slack entries and the RHS are zero,
//   - constraint row i holds the coefficients, multiplied by -1 for ≥ and =
//     rows, and a unit slack in column n+i-1 unless the row is an equality,
//   - columns are x1..xn, s1..sm; column headers end with "f",
//   - a row with negative RHS gets a helper header h_k tagged with its future
//     column position n+m+k; otherwise its slack s_i tagged n+i,
//   - the first pivot is selected on the plain (non-extended) table.
//
// Returns ErrInvalidCount when n or m is outside the configured bounds and
// ErrDimension when a constraint's arity differs from the objective's.
// Complexity: O(m·(n+m)) scalar operations.
func Build[T number.Calculable[T]](
	gen T,
	objective []T,
	constraints []Constraint[T],
	minimize bool,
	opts ...Option,
) (*Table[T], error) {
	o := gatherOptions(opts...)

	// Stage 1: validate
	n, m := len(objective), len(constraints)
	if n < o.minCount || n > o.maxCount {
		return nil, fmt.Errorf("Build: %d variables, want %d..%d: %w", n, o.minCount, o.maxCount, ErrInvalidCount)
	}
	if m < o.minCount || m > o.maxCount {
		return nil, fmt.Errorf("Build: %d constraints, want %d..%d: %w", m, o.minCount, o.maxCount, ErrInvalidCount)
	}
	for i, c := range constraints {
		if len(c.Coefficients) != n {
			return nil, fmt.Errorf("Build: constraint %d has %d coefficients, want %d: %w",
				i+1, len(c.Coefficients), n, ErrDimension)
		}
		if c.Relation < LessEqual || c.Relation > Equal {
			return nil, fmt.Errorf("Build: constraint %d: %w", i+1, ErrUnknownRelation)
		}
	}

	var (
		zero    = constant(gen, "0")
		one     = constant(gen, "1")
		columns = n + m
		lhs     = make([]Row[T], 0, m+1)
		rhs     = make([]T, 0, m+1)
		colHdr  = make([]string, 0, columns+1)
		rowHdr  = make([]string, 0, m+1)
	)

	// Stage 2: objective row
	obj := ZeroRow(gen, columns).entries
	for j, c := range objective {
		obj[j] = c.Negate()
	}
	objRow := Row[T]{entries: obj}
	if minimize {
		objRow = objRow.Invert()
	}
	lhs = append(lhs, objRow)
	rhs = append(rhs, zero)
	rowHdr = append(rowHdr, ObjectiveHeader)

	// Stage 3: constraint rows
	helpers := 0
	for i, c := range constraints {
		entries := ZeroRow(gen, columns).entries
		flip := c.Relation != LessEqual
		for j, a := range c.Coefficients {
			if flip {
				a = a.Negate()
			}
			entries[j] = a
		}
		if c.Relation != Equal {
			entries[n+i] = one
		}
		bound := c.Bound
		if flip {
			bound = bound.Negate()
		}
		lhs = append(lhs, Row[T]{entries: entries})
		rhs = append(rhs, bound)

		if isNegative(bound) {
			helpers++
			rowHdr = append(rowHdr, TagHeader(numbered(HelperPrefix, helpers), columns+helpers))
		} else {
			rowHdr = append(rowHdr, TagHeader(numbered(SlackPrefix, i+1), n+i+1))
		}
	}

	// Stage 4: column headers and first pivot
	for j := 1; j <= n; j++ {
		colHdr = append(colHdr, numbered(DecisionPrefix, j))
	}
	for i := 1; i <= m; i++ {
		colHdr = append(colHdr, numbered(SlackPrefix, i))
	}
	colHdr = append(colHdr, RHSHeader)

	pivot, err := SelectPivot(lhs, rhs, false)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return NewTable("", lhs, rhs, &pivot, colHdr, rowHdr, 0)
}

// BuildFromLiterals parses every literal with gen and delegates to Build.
// Parse failures are returned wrapped, matching number.ErrParse.
func BuildFromLiterals[T number.Calculable[T]](
	gen T,
	objective []string,
	constraints []LiteralConstraint,
	minimize bool,
	opts ...Option,
) (*Table[T], error) {
	obj, err := createAll(gen, objective)
	if err != nil {
		return nil, fmt.Errorf("BuildFromLiterals: objective: %w", err)
	}
	cons := make([]Constraint[T], len(constraints))
	for i, lc := range constraints {
		coeffs, err := createAll(gen, lc.Coefficients)
		if err != nil {
			return nil, fmt.Errorf("BuildFromLiterals: constraint %d: %w", i+1, err)
		}
		bound, err := gen.Create(lc.Bound)
		if err != nil {
			return nil, fmt.Errorf("BuildFromLiterals: constraint %d bound: %w", i+1, err)
		}
		cons[i] = Constraint[T]{Coefficients: coeffs, Bound: bound, Relation: lc.Relation}
	}

	return Build(gen, obj, cons, minimize, opts...)
}

// createAll parses literals with gen.
func createAll[T number.Calculable[T]](gen T, literals []string) ([]T, error) {
	out := make([]T, len(literals))
	for i, s := range literals {
		v, err := gen.Create(s)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}
