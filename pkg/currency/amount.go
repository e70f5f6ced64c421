package currency

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	amountRe = regexp.MustCompile(`\d+[\d.,' ]*`)
	symbolRe = regexp.MustCompile(`^[^()]+`)
	stripRe  = regexp.MustCompile(`[0-9\s,.']+`)

	commaDecimalRe = regexp.MustCompile(`,\d{2}$`)
	dotThousandsRe = regexp.MustCompile(`\.\d{3}$`)
)

// ExtractAmount parses the numeric part of a matched currency substring,
// accepting both US-style ("1,234.56") and European-style ("1.234,56")
// grouping plus apostrophe and space thousands separators.
//
// Disambiguation: when both '.' and ',' appear, the leftmost is the
// thousands separator and the other the decimal point. A lone comma is a
// decimal point only when followed by exactly two digits; a lone dot is
// a thousands separator only when followed by exactly three digits. The
// last rule knowingly misreads genuine 3-decimal values ("1.234" meters
// of precision becomes 1234); a documented ambiguity of the format, not
// something this parser can fix.
//
// Reports false when no parseable number is present.
func ExtractAmount(s string) (float64, bool) {
	raw := amountRe.FindString(s)
	if raw == "" {
		return 0, false
	}

	// Spaces and apostrophes are always thousands separators.
	cleaned := strings.NewReplacer(" ", "", "'", "").Replace(raw)

	hasDot := strings.Contains(cleaned, ".")
	hasComma := strings.Contains(cleaned, ",")

	switch {
	case hasDot && hasComma:
		if strings.Index(cleaned, ".") < strings.Index(cleaned, ",") {
			// European: dot groups thousands, comma is the decimal.
			cleaned = strings.ReplaceAll(cleaned, ".", "")
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		} else {
			// US: comma groups thousands.
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	case hasComma:
		if commaDecimalRe.MatchString(cleaned) {
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	case hasDot:
		if dotThousandsRe.MatchString(cleaned) {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
		}
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ExtractSymbol isolates the currency symbol from a matched substring by
// stripping digits, whitespace and separators, then cutting at the first
// parenthesis. Returns "" when nothing symbol-like remains.
func ExtractSymbol(s string) string {
	cleaned := stripRe.ReplaceAllString(s, "")
	return symbolRe.FindString(cleaned)
}
