// Package units provides the static measurement-unit registry and the
// conversion arithmetic built on top of it.
//
// A [Table] holds, per [Category], the conversion ratios of every canonical
// unit code relative to an implicit base unit, an alias map from free-form
// spellings to canonical codes, and the built-in default display unit of
// each category. Tables are immutable after construction; build one with
// [NewTable] at startup and share it freely between goroutines.
//
// # Normalization
//
// [Table.Normalize] resolves free-form unit tokens ("meters squared",
// "cm²", "LBS") to canonical codes ("m2", "cm2", "lb"). Unrecognized
// tokens come back cleaned but otherwise unchanged; they may already be
// canonical, and an unknown unit is an expected outcome for arbitrary
// page text, not an error:
//
//	t := units.NewTable()
//	t.Normalize("cm²")           // "cm2"
//	t.Normalize("meters squared") // "m2"
//
// [Table.CategoryOf] maps a canonical code to its category, reporting
// false for codes no category owns.
//
// # Conversion
//
// [Table.Convert] converts a value between two units of the same category:
//
//	v, ok := t.Convert(100, "c", "f") // 212, true
//	_, ok = t.Convert(1, "m", "kg")   // category mismatch: ok == false
//
// All categories use a linear ratio relative to the category base unit,
// except temperature, which pivots through Celsius with the usual affine
// rules (F = C*9/5+32, K = C+273.15).
//
// # Best-unit auto-sizing
//
// [Table.BestUnit] re-expresses awkward magnitudes in a more legible
// sibling unit using fixed per-unit breakpoints (0.003 m² becomes 30 cm²,
// 1200 m becomes 1.2 km). The breakpoints are behavioral contracts pinned
// by tests; see autosize.go.
package units
