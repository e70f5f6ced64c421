package detect_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unitglance/unitglance/pkg/currency"
	"github.com/unitglance/unitglance/pkg/detect"
	"github.com/unitglance/unitglance/pkg/settings"
	"github.com/unitglance/unitglance/pkg/units"
)

func newDetector() *detect.Detector {
	return detect.New(units.NewTable(), currency.NewResolver())
}

var enUS = currency.LocaleContext{Language: "en", Country: "US"}

func TestFindConversionsSingleUnits(t *testing.T) {
	t.Parallel()

	det := newDetector()

	tests := []struct {
		name     string
		text     string
		prefs    settings.Settings
		want     string
		category units.Category
	}{
		{
			name:     "feet to meters",
			text:     "the desk is 5 ft wide",
			prefs:    settings.Settings{Length: "m"},
			want:     "1.524 m",
			category: units.Length,
		},
		{
			name:     "spelled out feet",
			text:     "about 3 feet of snow",
			prefs:    settings.Settings{Length: "m"},
			want:     "91.44 cm",
			category: units.Length,
		},
		{
			name:     "centimeters to meters",
			text:     "he is 180 cm tall",
			prefs:    settings.Settings{Length: "m"},
			want:     "1.8 m",
			category: units.Length,
		},
		{
			name:     "celsius to fahrenheit",
			text:     "it was 20 C outside",
			prefs:    settings.Settings{Temperature: "f"},
			want:     "68 f",
			category: units.Temperature,
		},
		{
			name:     "pounds auto-size to tonnes",
			text:     "the truck carries 5000 lb",
			prefs:    settings.Settings{Weight: "kg"},
			want:     "2.268 t",
			category: units.Weight,
		},
		{
			name:     "gallons to liters",
			text:     "a 2 gal jug",
			prefs:    settings.Settings{Volume: "l"},
			want:     "7.5708 l",
			category: units.Volume,
		},
		{
			name:     "compound speed unit",
			text:     "limited to 100 km/h here",
			prefs:    settings.Settings{Speed: "mph"},
			want:     "62.1371 mph",
			category: units.Speed,
		},
		{
			name:     "meters per second to kmh",
			text:     "wind at 5 m/s",
			prefs:    settings.Settings{Speed: "kmh"},
			want:     "18 kmh",
			category: units.Speed,
		},
		{
			name:     "newton meters to pound feet",
			text:     "torque of 100 nm",
			prefs:    settings.Settings{Torque: "lbft"},
			want:     "73.7562 lbft",
			category: units.Torque,
		},
		{
			name:     "bar to psi",
			text:     "inflate to 2 bar",
			prefs:    settings.Settings{Pressure: "psi"},
			want:     "29.0076 psi",
			category: units.Pressure,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := det.FindConversions(tc.text, tc.prefs, enUS)
			require.Len(t, got, 1)
			require.Equal(t, tc.want, got[0].Converted)
			require.Equal(t, tc.category, got[0].Category)
			require.Equal(t, tc.text[got[0].Span.Start:got[0].Span.End], got[0].Original)
		})
	}
}

func TestFindConversionsSuppression(t *testing.T) {
	t.Parallel()

	det := newDetector()

	t.Run("same unit as preference yields nothing", func(t *testing.T) {
		t.Parallel()

		got := det.FindConversions("he is 180 cm tall", settings.Settings{Length: "cm"}, enUS)
		require.Empty(t, got)
	})

	t.Run("auto-size landing back on source yields nothing", func(t *testing.T) {
		t.Parallel()

		// 5 mm -> 0.005 m, which best-unit re-expresses as 5 mm again.
		got := det.FindConversions("a 5 mm gap", settings.Settings{Length: "m"}, enUS)
		require.Empty(t, got)
	})

	t.Run("milliliters round trip yields nothing", func(t *testing.T) {
		t.Parallel()

		got := det.FindConversions("add 500 ml of water", settings.Settings{Volume: "l"}, enUS)
		require.Empty(t, got)
	})

	t.Run("plain words yield nothing", func(t *testing.T) {
		t.Parallel()

		got := det.FindConversions("nothing measurable here", settings.Settings{}, enUS)
		require.Empty(t, got)
	})
}

func TestFindConversionsAreaBeforeLength(t *testing.T) {
	t.Parallel()

	det := newDetector()

	got := det.FindConversions("a plot of 1 ft²", settings.Settings{Area: "m2"}, enUS)
	require.Len(t, got, 1)
	require.Equal(t, units.Area, got[0].Category)
	require.Equal(t, "1 ft²", got[0].Original)
	// 1 ft² is 0.0929 m², auto-sized into cm².
	require.Contains(t, got[0].Converted, "cm2")
}

func TestFindConversionsDimensions(t *testing.T) {
	t.Parallel()

	det := newDetector()

	t.Run("shared unit triple to meters", func(t *testing.T) {
		t.Parallel()

		got := det.FindConversions("parcel size 36.5 x 110.8 x 32 cm", settings.Settings{Length: "m"}, enUS)
		require.Len(t, got, 1)
		require.Equal(t, units.Dimensions, got[0].Category)
		require.Equal(t, "36.5 x 110.8 x 32 cm", got[0].Original)
		require.Equal(t, "0.37 × 1.11 × 0.32 m", got[0].Converted)
	})

	t.Run("round trip to source unit yields nothing", func(t *testing.T) {
		t.Parallel()

		got := det.FindConversions("parcel size 36.5 x 110.8 x 32 cm", settings.Settings{Length: "cm"}, enUS)
		require.Empty(t, got)
	})

	t.Run("per-value units must agree", func(t *testing.T) {
		t.Parallel()

		got := det.FindConversions("a board 1 ft x 2 ft x 3 ft", settings.Settings{Length: "m"}, enUS)
		require.Len(t, got, 1)
		require.Equal(t, units.Dimensions, got[0].Category)
		require.Equal(t, "30.48 × 60.96 × 91.44 cm", got[0].Converted)
	})

	t.Run("trailing unit is not re-matched as a length", func(t *testing.T) {
		t.Parallel()

		got := det.FindConversions("10 x 5 x 3 ft crate", settings.Settings{Length: "m"}, enUS)
		require.Len(t, got, 1)
		require.Equal(t, units.Dimensions, got[0].Category)
	})
}

func TestFindConversionsCurrency(t *testing.T) {
	t.Parallel()

	det := newDetector()

	t.Run("symbol before amount", func(t *testing.T) {
		t.Parallel()

		got := det.FindConversions("it costs €100 today", settings.Settings{Currency: "USD"}, enUS)
		require.Len(t, got, 1)
		require.Equal(t, units.Currency, got[0].Category)
		require.Equal(t, "€100", got[0].Original)
		require.Equal(t, detect.PendingPlaceholder, got[0].Converted)
		require.False(t, got[0].Resolved())
		require.Equal(t, &detect.PendingRate{Amount: 100, From: "EUR", To: "USD"}, got[0].Pending)
	})

	t.Run("amount before symbol", func(t *testing.T) {
		t.Parallel()

		got := det.FindConversions("paid 1.234,56 € for it", settings.Settings{Currency: "USD"}, enUS)
		require.Len(t, got, 1)
		require.Equal(t, &detect.PendingRate{Amount: 1234.56, From: "EUR", To: "USD"}, got[0].Pending)
	})

	t.Run("same currency suppressed", func(t *testing.T) {
		t.Parallel()

		got := det.FindConversions("just $100", settings.Settings{Currency: "USD"}, enUS)
		require.Empty(t, got)
	})

	t.Run("ambiguous dollar resolved by locale country", func(t *testing.T) {
		t.Parallel()

		loc := currency.LocaleContext{Language: "en", Country: "CA"}
		got := det.FindConversions("a $20 bill", settings.Settings{Currency: "EUR"}, loc)
		require.Len(t, got, 1)
		require.Equal(t, "CAD", got[0].Pending.From)
	})
}

func TestFindConversionsTimezone(t *testing.T) {
	t.Parallel()

	det := newDetector()

	t.Run("twelve hour clock keeps meridiem", func(t *testing.T) {
		t.Parallel()

		got := det.FindConversions("call at 3 pm EST", settings.Settings{Timezone: "utc"}, enUS)
		require.Len(t, got, 1)
		require.Equal(t, units.Timezone, got[0].Category)
		require.Equal(t, "3 pm EST", got[0].Original)
		require.Equal(t, "8 pm UTC", got[0].Converted)
	})

	t.Run("twenty four hour clock stays numeric", func(t *testing.T) {
		t.Parallel()

		got := det.FindConversions("standup at 14:30 CET", settings.Settings{Timezone: "utc"}, enUS)
		require.Len(t, got, 1)
		require.Equal(t, "13:30 UTC", got[0].Converted)
	})

	t.Run("half hour offset zone", func(t *testing.T) {
		t.Parallel()

		got := det.FindConversions("opens 9 am IST", settings.Settings{Timezone: "utc"}, enUS)
		require.Len(t, got, 1)
		require.Equal(t, "3:30 am UTC", got[0].Converted)
	})

	t.Run("same zone suppressed", func(t *testing.T) {
		t.Parallel()

		got := det.FindConversions("meet at 5 pm UTC", settings.Settings{Timezone: "utc"}, enUS)
		require.Empty(t, got)
	})
}

func TestFindConversionsMultipleMatches(t *testing.T) {
	t.Parallel()

	det := newDetector()

	got := det.FindConversions(
		"the box is 5 ft wide, weighs 3 pounds and costs €50",
		settings.Settings{Length: "m", Weight: "kg", Currency: "USD"},
		enUS,
	)
	require.Len(t, got, 3)

	byCategory := make(map[units.Category]detect.Conversion, len(got))
	for _, c := range got {
		byCategory[c.Category] = c
	}

	require.Equal(t, "1.524 m", byCategory[units.Length].Converted)
	require.Equal(t, "1.3608 kg", byCategory[units.Weight].Converted)
	require.Equal(t, "EUR", byCategory[units.Currency].Pending.From)

	// No two results may share text.
	for i, a := range got {
		for _, b := range got[i+1:] {
			require.False(t, a.Span.Overlaps(b.Span))
		}
	}
}
