package units

import "math"

// BestUnit re-expresses a converted value in a more legible sibling unit
// of the same category when its magnitude falls outside fixed per-unit
// breakpoints: too small steps down to the next smaller sibling, too
// large steps up to the next larger one. When no rule applies the value
// is returned unchanged in its current unit.
//
// The breakpoints are not uniform across categories (m²→km² flips at
// 1,000,000 but ft²→acre at 43,560) and are pinned by tests as literal
// behavioral contracts, so each rule is spelled out rather than derived
// from the ratio tables. Pure and deterministic; no I/O.
func (t *Table) BestUnit(value float64, cat Category, unit string) (float64, string) {
	switch {
	case cat == Length && unit == "m":
		if value < 1 {
			if cm := value * 100; cm >= 1 {
				return cm, "cm"
			}
			return value * 1000, "mm"
		}
		if value > 1000 {
			return value * 0.001, "km"
		}

	case cat == Length && unit == "ft":
		if value < 1 {
			return value * 12, "in"
		}
		if value > 5280 {
			return value / 5280, "mi"
		}

	case cat == Length && unit == "yd":
		if value < 1 {
			if ft := value * 3; ft >= 1 {
				return ft, "ft"
			}
			return value * 36, "in"
		}

	case cat == Weight && unit == "kg":
		if value < 1 {
			return value * 1000, "g"
		}
		if value > 1000 {
			return value * 0.001, "t"
		}

	case cat == Volume && unit == "l":
		if value < 1 {
			return value * 1000, "ml"
		}

	case cat == Volume && unit == "gal":
		if value < 1 {
			if qt := value * 4; qt >= 1 {
				return qt, "qt"
			}
			if pt := value * 8; pt >= 1 {
				return pt, "pt"
			}
			return value * 16, "cup"
		}

	case cat == Area && unit == "m2":
		if value < 1 {
			if cm2 := value * 10000; cm2 >= 1 {
				return cm2, "cm2"
			}
			return value * 1000000, "mm2"
		}
		if value > 1000000 {
			return value * 0.000001, "km2"
		}

	case cat == Area && unit == "ft2":
		if value < 1 {
			return value * 144, "in2"
		}
		if value > 43560 {
			return value / 43560, "acre"
		}
	}

	return value, unit
}

// areaToLinear maps an area unit to the linear unit of its side length.
var areaToLinear = map[string]string{
	"m2":  "m",
	"cm2": "cm",
	"mm2": "mm",
	"km2": "km",
	"ft2": "ft",
	"in2": "in",
}

// LinearEquivalent returns the side length of a square with the given
// area, expressed in the linear unit matching the area unit (10000 cm2
// yields 100 cm). Reports false for area units without a linear
// counterpart (acre).
func (t *Table) LinearEquivalent(areaValue float64, areaUnit string) (float64, string, bool) {
	linear, ok := areaToLinear[areaUnit]
	if !ok || areaValue < 0 {
		return 0, "", false
	}
	return math.Sqrt(areaValue), linear, true
}
