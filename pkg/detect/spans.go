package detect

// Span is a half-open [Start, End) character range into the scanned text.
type Span struct {
	Start int
	End   int
}

// Overlaps reports whether two spans share at least one character.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && s.End > o.Start
}

// spanSet tracks the text ranges already claimed by a detected match.
// One set is owned by a single FindConversions call and threaded through
// every pass, so earlier passes win ties and a dimension triple's
// trailing unit can never be re-matched as a standalone conversion.
type spanSet struct {
	spans []Span
}

func (ss *spanSet) overlaps(candidate Span) bool {
	for _, s := range ss.spans {
		if s.Overlaps(candidate) {
			return true
		}
	}
	return false
}

func (ss *spanSet) claim(s Span) {
	ss.spans = append(ss.spans, s)
}
