package units

import (
	"math"
	"strconv"
)

// Convert converts value between two units of the same category. Both
// units are normalized first, so free-form spellings are accepted.
// Reports false when either unit is unrecognized or the units belong to
// different categories; callers treat that as "no conversion", never as
// an error.
func (t *Table) Convert(value float64, fromUnit, toUnit string) (float64, bool) {
	from := t.Normalize(fromUnit)
	to := t.Normalize(toUnit)

	cat, ok := t.CategoryOf(from)
	if !ok {
		return 0, false
	}
	toCat, ok := t.CategoryOf(to)
	if !ok || toCat != cat {
		return 0, false
	}

	if cat == Temperature {
		return convertTemperature(value, from, to), true
	}

	fromRatio := t.ratios[cat][from]
	toRatio := t.ratios[cat][to]
	return value / fromRatio * toRatio, true
}

// convertTemperature pivots through Celsius. Codes are assumed to be one
// of c, f, k (CategoryOf has already vetted them).
func convertTemperature(value float64, from, to string) float64 {
	celsius := value
	switch from {
	case "f":
		celsius = (value - 32) * 5 / 9
	case "k":
		celsius = value - 273.15
	}

	switch to {
	case "f":
		return celsius*9/5 + 32
	case "k":
		return celsius + 273.15
	}
	return celsius
}

// Format renders a converted value for inline display: rounded to four
// decimal places, trailing zeros dropped, followed by the unit code.
func Format(value float64, unit string) string {
	rounded := math.Round(value*10000) / 10000
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + unit
}
