// SPDX-License-Identifier: MIT

package number

import (
	"regexp"
	"strings"
)

// literalPattern accepts -?int, -?int.digits and -?int/nonzero_int.
var literalPattern = regexp.MustCompile(`^-?(\d+(\.\d+)?|\d+/\d*[1-9]\d*)$`)

// literal is the lexical split of an accepted numeric literal.
type literal struct {
	negative    bool   // leading '-'
	integer     string // digits before '.' or '/'
	fraction    string // digits after '.', empty if none
	denominator string // digits after '/', empty if none
}

// parseLiteral validates s against the literal grammar and splits it.
// Surrounding whitespace is ignored.
func parseLiteral(s string) (literal, bool) {
	s = strings.TrimSpace(s)
	if !literalPattern.MatchString(s) {
		return literal{}, false
	}

	var lit literal
	if strings.HasPrefix(s, "-") {
		lit.negative = true
		s = s[1:]
	}
	if head, tail, ok := strings.Cut(s, "/"); ok {
		lit.integer, lit.denominator = head, tail
		return lit, true
	}
	if head, tail, ok := strings.Cut(s, "."); ok {
		lit.integer, lit.fraction = head, tail
		return lit, true
	}
	lit.integer = s

	return lit, true
}

// signed returns the literal's numerator digits (integer+fraction) with its sign.
func (l literal) signed() string {
	digits := l.integer + l.fraction
	if l.negative {
		return "-" + digits
	}

	return digits
}

// decimal returns the literal in plain decimal notation ("-12.5"); only
// meaningful for literals without a denominator.
func (l literal) decimal() string {
	var sb strings.Builder
	if l.negative {
		sb.WriteByte('-')
	}
	sb.WriteString(l.integer)
	if l.fraction != "" {
		sb.WriteByte('.')
		sb.WriteString(l.fraction)
	}

	return sb.String()
}
