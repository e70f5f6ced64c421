package units_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unitglance/unitglance/pkg/units"
)

func TestTable_Normalize(t *testing.T) {
	t.Parallel()

	tbl := units.NewTable()

	cases := map[string]string{
		"cm²":            "cm2",
		"CM²":            "cm2",
		"meters squared": "m2",
		"Meters  Squared": "m2",
		" feet ":          "ft",
		"LBS":             "lb",
		"fl  oz":          "fl_oz",
		"degrees celsius": "c",
		"km/h":            "kmh",
		"not a unit":      "not a unit",
		"m":               "m",
	}

	for raw, want := range cases {
		require.Equal(t, want, tbl.Normalize(raw), "Normalize(%q)", raw)
	}
}

func TestTable_CategoryOf(t *testing.T) {
	t.Parallel()

	tbl := units.NewTable()

	t.Run("resolves ratio-table codes", func(t *testing.T) {
		t.Parallel()

		cat, ok := tbl.CategoryOf("cm2")
		require.True(t, ok)
		require.Equal(t, units.Area, cat)

		cat, ok = tbl.CategoryOf("cm")
		require.True(t, ok)
		require.Equal(t, units.Length, cat)

		cat, ok = tbl.CategoryOf("psi")
		require.True(t, ok)
		require.Equal(t, units.Pressure, cat)
	})

	t.Run("temperature codes resolve last", func(t *testing.T) {
		t.Parallel()

		for _, code := range []string{"c", "f", "k"} {
			cat, ok := tbl.CategoryOf(code)
			require.True(t, ok)
			require.Equal(t, units.Temperature, cat)
		}
	})

	t.Run("unknown code reports false", func(t *testing.T) {
		t.Parallel()

		_, ok := tbl.CategoryOf("parsec")
		require.False(t, ok)
	})
}

func TestTable_IsUnitToken(t *testing.T) {
	t.Parallel()

	tbl := units.NewTable()

	require.True(t, tbl.IsUnitToken("m"))
	require.True(t, tbl.IsUnitToken("T"))
	require.True(t, tbl.IsUnitToken("feet"))
	require.False(t, tbl.IsUnitToken("USD"))
	require.False(t, tbl.IsUnitToken("€"))
}
