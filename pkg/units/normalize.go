package units

import "strings"

// Normalize resolves a free-form unit token to its canonical code:
// lowercase, internal whitespace collapsed, unicode superscript ²
// rewritten to a literal 2, then looked up in the alias map. Tokens
// without an alias entry are returned cleaned but unchanged; they may
// already be canonical, or simply not be a unit at all.
func (t *Table) Normalize(raw string) string {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	cleaned = strings.ReplaceAll(cleaned, "²", "2")

	if code, ok := t.aliases[cleaned]; ok {
		return code
	}
	return cleaned
}

// CategoryOf returns the category owning a canonical unit code. Ratio
// tables are checked in a fixed order, then the three temperature codes.
// Reports false for unrecognized codes; that is the expected outcome for
// arbitrary text and not an error.
func (t *Table) CategoryOf(code string) (Category, bool) {
	for _, cat := range ratioCategories {
		if _, ok := t.ratios[cat][code]; ok {
			return cat, true
		}
	}
	switch code {
	case "c", "f", "k":
		return Temperature, true
	}
	return "", false
}

// IsUnitToken reports whether a token resolves to a known canonical unit
// code after normalization. The detector uses this to keep ambiguous
// one-letter currency symbols ("m" for TMT, "K" for MWK) out of the
// currency scan pattern.
func (t *Table) IsUnitToken(token string) bool {
	_, ok := t.CategoryOf(t.Normalize(token))
	return ok
}
