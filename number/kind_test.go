// SPDX-License-Identifier: MIT

package number_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsimplex/number"
)

func TestParseRoundMode(t *testing.T) {
	kind, mantissa, err := number.ParseRoundMode("false")
	require.NoError(t, err)
	require.Equal(t, number.KindFraction, kind)
	require.Zero(t, mantissa)

	kind, mantissa, err = number.ParseRoundMode("12")
	require.NoError(t, err)
	require.Equal(t, number.KindRounded, kind)
	require.Equal(t, 12, mantissa)

	for _, bad := range []string{"0", "00", "true", "123", "-1", ""} {
		_, _, err = number.ParseRoundMode(bad)
		require.ErrorIs(t, err, number.ErrParse, "mode %q", bad)
	}

	require.Equal(t, "fraction", number.KindFraction.String())
	require.Equal(t, "rounded", number.KindRounded.String())
}
