// SPDX-License-Identifier: MIT

package tableau

import (
	"strconv"
	"strings"
)

// Header labels.
const (
	ObjectiveHeader = "z"  // row 0 of a plain table
	AuxiliaryHeader = "z'" // row 0 of an extended (Phase-1) table
	RHSHeader       = "f"  // trailing column-header marker for the right-hand side

	DecisionPrefix = "x" // x1..xn
	SlackPrefix    = "s" // s1..sm
	HelperPrefix   = "h" // h1..hk (artificial variables)
)

// TagHeader returns name suffixed with its 1-based column position, e.g. "x2[2]".
func TagHeader(name string, position int) string {
	return name + "[" + strconv.Itoa(position) + "]"
}

// StripHeader removes a trailing "[n]" position tag, if any.
func StripHeader(header string) string {
	if i := strings.LastIndexByte(header, '['); i > 0 && strings.HasSuffix(header, "]") {
		return header[:i]
	}

	return header
}

// HeaderPosition extracts the 1-based column position from a tagged header.
// Returns false for untagged headers such as "z" or "z'".
func HeaderPosition(header string) (int, bool) {
	i := strings.LastIndexByte(header, '[')
	if i <= 0 || !strings.HasSuffix(header, "]") {
		return 0, false
	}
	pos, err := strconv.Atoi(header[i+1 : len(header)-1])
	if err != nil || pos < 1 {
		return 0, false
	}

	return pos, true
}

// numbered returns prefix+i, e.g. numbered("x", 3) == "x3".
func numbered(prefix string, i int) string {
	return prefix + strconv.Itoa(i)
}
