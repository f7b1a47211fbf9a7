// SPDX-License-Identifier: MIT

package problem

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsimplex/number"
	"github.com/katalvlaran/lvsimplex/report"
	"github.com/katalvlaran/lvsimplex/tableau"
)

// Count bounds for variables and constraints.
const (
	MinCount = tableau.DefaultMinCount
	MaxCount = tableau.DefaultMaxCount
)

// Problem is a linear program as read from a file or the command line.
type Problem struct {
	Kind        string       `yaml:"kind" json:"kind"`         // "fraction" (default) or "rounded"
	Mantissa    int          `yaml:"mantissa" json:"mantissa"` // significant digits for "rounded"
	Minimize    bool         `yaml:"minimize" json:"minimize"`
	Objective   []Literal    `yaml:"objective" json:"objective"`
	Constraints []Constraint `yaml:"constraints" json:"constraints"`
}

// Constraint is either structured (coefficients, relation, bound) or a
// single Line in the compact grammar; Normalize folds Line into the fields.
type Constraint struct {
	Coefficients []Literal `yaml:"coefficients,omitempty" json:"coefficients,omitempty"`
	Relation     string    `yaml:"relation,omitempty" json:"relation,omitempty"`
	Bound        Literal   `yaml:"bound,omitempty" json:"bound,omitempty"`
	Line         string    `yaml:"line,omitempty" json:"line,omitempty"`
}

// SetRoundMode applies a "--round false|N" token.
func (p *Problem) SetRoundMode(mode string) error {
	kind, mantissa, err := number.ParseRoundMode(mode)
	if err != nil {
		return err
	}
	p.Kind, p.Mantissa = kind.String(), mantissa

	return nil
}

// Mode resolves the number kind and mantissa.
func (p *Problem) Mode() (number.Kind, int, error) {
	switch strings.ToLower(strings.TrimSpace(p.Kind)) {
	case "", number.KindFraction.String():
		return number.KindFraction, 0, nil
	case number.KindRounded.String():
		if p.Mantissa < 1 || p.Mantissa > 99 {
			return 0, 0, fmt.Errorf("mantissa %d, want 1..99: %w", p.Mantissa, ErrFormat)
		}

		return number.KindRounded, p.Mantissa, nil
	default:
		return 0, 0, fmt.Errorf("kind %q: %w", p.Kind, ErrFormat)
	}
}

// Normalize parses every constraint Line into structured fields, checked
// against the objective's arity, and defaults an empty relation to "<=".
func (p *Problem) Normalize() error {
	n := len(p.Objective)
	for i := range p.Constraints {
		c := &p.Constraints[i]
		if c.Line != "" {
			parsed, err := ParseConstraintLine(c.Line, n)
			if err != nil {
				return fmt.Errorf("constraint %d: %w", i+1, err)
			}
			*c = parsed
			continue
		}
		if c.Relation == "" {
			c.Relation = "<="
		}
	}

	return nil
}

// Validate checks counts, arities and relations. Numeric literals are
// checked later by the number kind.
func (p *Problem) Validate() error {
	if _, _, err := p.Mode(); err != nil {
		return err
	}
	n, m := len(p.Objective), len(p.Constraints)
	if n < MinCount || n > MaxCount {
		return fmt.Errorf("%d variables, want %d..%d: %w", n, MinCount, MaxCount, ErrInvalidCount)
	}
	if m < MinCount || m > MaxCount {
		return fmt.Errorf("%d constraints, want %d..%d: %w", m, MinCount, MaxCount, ErrInvalidCount)
	}
	for i, c := range p.Constraints {
		if c.Line != "" {
			return fmt.Errorf("constraint %d: line not normalized: %w", i+1, ErrSyntax)
		}
		if len(c.Coefficients) != n {
			return fmt.Errorf("constraint %d has %d coefficients, want %d: %w", i+1, len(c.Coefficients), n, ErrDimension)
		}
		if _, err := tableau.ParseRelation(c.Relation); err != nil {
			return fmt.Errorf("constraint %d: %v: %w", i+1, err, ErrSyntax)
		}
		if c.Bound == "" {
			return fmt.Errorf("constraint %d: missing bound: %w", i+1, ErrSyntax)
		}
	}

	return nil
}

// literalConstraints converts the constraints for tableau.BuildFromLiterals.
func (p *Problem) literalConstraints() ([]tableau.LiteralConstraint, error) {
	out := make([]tableau.LiteralConstraint, len(p.Constraints))
	for i, c := range p.Constraints {
		rel, err := tableau.ParseRelation(c.Relation)
		if err != nil {
			return nil, fmt.Errorf("constraint %d: %v: %w", i+1, err, ErrSyntax)
		}
		out[i] = tableau.LiteralConstraint{
			Coefficients: literals(c.Coefficients),
			Bound:        string(c.Bound),
			Relation:     rel,
		}
	}

	return out, nil
}

// Input returns the echo of p for a report.
func (p *Problem) Input() report.Input {
	in := report.Input{Minimize: p.Minimize, Objective: literals(p.Objective)}
	for _, c := range p.Constraints {
		in.Constraints = append(in.Constraints, report.InputConstraint{
			Coefficients: literals(c.Coefficients),
			Relation:     c.Relation,
			Bound:        string(c.Bound),
		})
	}

	return in
}
