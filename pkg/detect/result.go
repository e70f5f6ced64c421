package detect

import "github.com/unitglance/unitglance/pkg/units"

// PendingPlaceholder is the Converted value of a currency result before
// its exchange rate has been resolved.
const PendingPlaceholder = "..."

// PendingRate describes the rate lookup still owed to a currency result.
type PendingRate struct {
	// Amount is the parsed source amount.
	Amount float64
	// From and To are uppercase ISO currency codes.
	From string
	To   string
}

// Conversion is one detected measurement with its converted rendering.
// Values are created fresh per detection call and never mutated by the
// detector; the only post-processing step is rate resolution, which
// returns updated copies.
type Conversion struct {
	// Original is the matched substring of the input text.
	Original string
	// Converted is the display rendering of the converted value. For
	// currency results it holds PendingPlaceholder until resolved.
	Converted string
	// Category tags the kind of measurement that matched.
	Category units.Category
	// Span is the matched character range in the input.
	Span Span
	// Pending is non-nil while a currency result awaits its rate.
	Pending *PendingRate
}

// Resolved reports whether the conversion is ready for display.
func (c Conversion) Resolved() bool {
	return c.Pending == nil
}
