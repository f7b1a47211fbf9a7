// SPDX-License-Identifier: MIT

package problem

import (
	"fmt"
	"regexp"
	"strings"
)

// numberPattern is the literal grammar accepted on input lines:
// -?int, -?int.digits, -?int/nonzero_int.
const numberPattern = `-?(\d+(\.\d+)?|\d+(/\d*[1-9]\d*)?)`

var (
	numberRe   = regexp.MustCompile(`^` + numberPattern + `$`)
	relationRe = regexp.MustCompile(`[<>=]`)
)

// ParseObjectiveLine parses "c1,c2,...,cn". When n > 0 the line must hold
// exactly n coefficients.
func ParseObjectiveLine(line string, n int) ([]Literal, error) {
	fields, err := splitNumbers(line)
	if err != nil {
		return nil, fmt.Errorf("objective %q: %w", line, err)
	}
	if n > 0 && len(fields) != n {
		return nil, fmt.Errorf("objective %q: %d coefficients, want %d: %w", line, len(fields), n, ErrSyntax)
	}

	return fields, nil
}

// ParseConstraintLine parses one constraint in the compact grammar:
//
//	a1,...,an,b     a·x <= b
//	a1,...,an<b     a·x <= b
//	a1,...,an>b     a·x >= b
//	a1,...,an=b     a·x =  b
//
// When n > 0 the line must hold exactly n coefficients.
func ParseConstraintLine(line string, n int) (Constraint, error) {
	var (
		s        = strings.ReplaceAll(strings.TrimSpace(line), " ", "")
		relation = "<="
	)
	switch locs := relationRe.FindAllStringIndex(s, -1); len(locs) {
	case 0:
	case 1:
		switch s[locs[0][0]] {
		case '>':
			relation = ">="
		case '=':
			relation = "="
		}
		s = s[:locs[0][0]] + "," + s[locs[0][1]:]
	default:
		return Constraint{}, fmt.Errorf("constraint %q: more than one relation: %w", line, ErrSyntax)
	}

	fields, err := splitNumbers(s)
	if err != nil {
		return Constraint{}, fmt.Errorf("constraint %q: %w", line, err)
	}
	if len(fields) < 2 {
		return Constraint{}, fmt.Errorf("constraint %q: need coefficients and a bound: %w", line, ErrSyntax)
	}
	coeffs, bound := fields[:len(fields)-1], fields[len(fields)-1]
	if n > 0 && len(coeffs) != n {
		return Constraint{}, fmt.Errorf("constraint %q: %d coefficients, want %d: %w", line, len(coeffs), n, ErrSyntax)
	}

	return Constraint{Coefficients: coeffs, Relation: relation, Bound: bound}, nil
}

// splitNumbers splits a comma-separated list and checks every field
// against numberPattern.
func splitNumbers(s string) ([]Literal, error) {
	parts := strings.Split(strings.ReplaceAll(strings.TrimSpace(s), " ", ""), ",")
	out := make([]Literal, len(parts))
	for i, p := range parts {
		if !numberRe.MatchString(p) {
			return nil, fmt.Errorf("field %d %q: %w", i+1, p, ErrSyntax)
		}
		out[i] = Literal(p)
	}

	return out, nil
}
