// SPDX-License-Identifier: MIT

package number

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind selects the arithmetic used by a solve.
type Kind int

const (
	// KindFraction selects exact rational arithmetic.
	KindFraction Kind = iota
	// KindRounded selects significant-digit rounded decimals.
	KindRounded
)

// RoundModeExact is the round-mode token that selects exact fractions.
const RoundModeExact = "false"

// roundModePattern accepts "false" or a one- or two-digit mantissa length.
var roundModePattern = regexp.MustCompile(`^(false|\d{1,2})$`)

// String returns "fraction" or "rounded".
func (k Kind) String() string {
	switch k {
	case KindFraction:
		return "fraction"
	case KindRounded:
		return "rounded"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ParseRoundMode interprets a round-mode token: "false" selects KindFraction,
// "N" (1..99) selects KindRounded with N significant digits.
// Returns ErrParse for anything else, including "0".
func ParseRoundMode(mode string) (Kind, int, error) {
	mode = strings.TrimSpace(mode)
	if !roundModePattern.MatchString(mode) {
		return KindFraction, 0, fmt.Errorf("ParseRoundMode(%q): %w", mode, ErrParse)
	}
	if mode == RoundModeExact {
		return KindFraction, 0, nil
	}

	mantissa, _ := strconv.Atoi(mode) // pattern guarantees digits
	if mantissa <= 0 {
		return KindFraction, 0, fmt.Errorf("ParseRoundMode(%q): mantissa must be > 0: %w", mode, ErrParse)
	}

	return KindRounded, mantissa, nil
}
