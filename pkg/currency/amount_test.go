package currency_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unitglance/unitglance/pkg/currency"
)

func TestExtractAmount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want float64
	}{
		{"$1,234.56", 1234.56},
		{"€1.234,56", 1234.56},
		{"1'234.56 CHF", 1234.56},
		{"1 234,56 kr", 1234.56},
		{"¥1000", 1000},
		{"99.99", 99.99},
		// Lone comma followed by exactly two digits is a decimal point.
		{"12,34", 12.34},
		// Otherwise a lone comma groups thousands.
		{"1,234", 1234},
		{"1,234,567", 1234567},
		// Lone dot followed by exactly three digits groups thousands,
		// the documented misfire on genuine 3-decimal values.
		{"1.234", 1234},
		{"0.5", 0.5},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()

			got, ok := currency.ExtractAmount(tc.in)
			require.True(t, ok)
			require.InDelta(t, tc.want, got, 1e-9)
		})
	}

	t.Run("no digits", func(t *testing.T) {
		t.Parallel()

		_, ok := currency.ExtractAmount("just text")
		require.False(t, ok)

		_, ok = currency.ExtractAmount("")
		require.False(t, ok)
	})
}

func TestExtractSymbol(t *testing.T) {
	t.Parallel()

	require.Equal(t, "$", currency.ExtractSymbol("$1,234.56"))
	require.Equal(t, "€", currency.ExtractSymbol("1.234,56 €"))
	require.Equal(t, "kr", currency.ExtractSymbol("99 kr (approx)"))
	require.Equal(t, "", currency.ExtractSymbol("1234"))
}
