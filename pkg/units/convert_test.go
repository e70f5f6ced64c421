package units_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unitglance/unitglance/pkg/units"
)

func TestTable_Convert(t *testing.T) {
	t.Parallel()

	tbl := units.NewTable()

	t.Run("temperature anchor points", func(t *testing.T) {
		t.Parallel()

		v, ok := tbl.Convert(0, "c", "f")
		require.True(t, ok)
		require.InDelta(t, 32, v, 1e-9)

		v, ok = tbl.Convert(100, "c", "f")
		require.True(t, ok)
		require.InDelta(t, 212, v, 1e-9)

		v, ok = tbl.Convert(32, "f", "c")
		require.True(t, ok)
		require.InDelta(t, 0, v, 1e-9)

		v, ok = tbl.Convert(0, "c", "k")
		require.True(t, ok)
		require.InDelta(t, 273.15, v, 1e-9)
	})

	t.Run("area conversions", func(t *testing.T) {
		t.Parallel()

		v, ok := tbl.Convert(10000, "cm2", "m2")
		require.True(t, ok)
		require.InDelta(t, 1, v, 1e-9)

		v, ok = tbl.Convert(1, "ft2", "m2")
		require.True(t, ok)
		require.InDelta(t, 0.092903, v, 0.001)
	})

	t.Run("accepts free-form unit spellings", func(t *testing.T) {
		t.Parallel()

		v, ok := tbl.Convert(3, "feet", "meters")
		require.True(t, ok)
		require.InDelta(t, 0.9144, v, 0.001)
	})

	t.Run("round trip within tolerance", func(t *testing.T) {
		t.Parallel()

		pairs := []struct {
			from, to string
		}{
			{"m", "ft"},
			{"km", "mi"},
			{"kg", "lb"},
			{"l", "gal"},
			{"m2", "acre"},
			{"kmh", "mph"},
			{"nm", "lbft"},
			{"bar", "psi"},
		}

		for _, p := range pairs {
			forward, ok := tbl.Convert(123.456, p.from, p.to)
			require.True(t, ok, "%s -> %s", p.from, p.to)

			back, ok := tbl.Convert(forward, p.to, p.from)
			require.True(t, ok, "%s -> %s", p.to, p.from)
			require.InDelta(t, 123.456, back, 1e-6, "%s <-> %s", p.from, p.to)
		}
	})

	t.Run("unknown unit fails", func(t *testing.T) {
		t.Parallel()

		_, ok := tbl.Convert(1, "m", "invalid_unit")
		require.False(t, ok)

		_, ok = tbl.Convert(1, "invalid_unit", "m")
		require.False(t, ok)
	})

	t.Run("category mismatch fails", func(t *testing.T) {
		t.Parallel()

		_, ok := tbl.Convert(1, "m", "kg")
		require.False(t, ok)

		_, ok = tbl.Convert(1, "c", "m")
		require.False(t, ok)
	})
}

func TestFormat(t *testing.T) {
	t.Parallel()

	require.Equal(t, "30 cm", units.Format(30.00000001, "cm"))
	require.Equal(t, "0.0929 m2", units.Format(0.09290304, "m2"))
	require.Equal(t, "1.2 km", units.Format(1.2, "km"))
}
