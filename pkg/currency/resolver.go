package currency

import (
	"sort"
	"strings"
)

// UnknownCurrency is returned by Detect for symbols no table entry
// covers. It is a value, not an error: unrecognized symbols are a normal
// outcome when scanning arbitrary text.
const UnknownCurrency = "Unknown currency"

// Resolver maps currency symbols and codes to ISO codes, resolving
// ambiguous symbols through a deterministic locale-based chain. All
// tables are immutable; a Resolver is safe for concurrent use.
type Resolver struct {
	symbols   map[string][]string
	codes     map[string][]string
	countries map[string]string
}

// NewResolver builds a resolver over the built-in symbol tables.
func NewResolver() *Resolver {
	return &Resolver{
		symbols:   symbolToCodes,
		codes:     codeToSymbols,
		countries: countryToCode,
	}
}

// Detect resolves a matched symbol or code to an ISO currency code, or
// UnknownCurrency when the symbol is not registered.
//
// Ambiguous symbols are resolved by a fixed precedence chain:
//  1. the locale's declared country, if its currency is a candidate;
//  2. USD, if it is a candidate and the declared language is English;
//  3. the page's top-level domain read as a country code, if its
//     currency is a candidate;
//  4. otherwise the first candidate in the table's fixed order.
func (r *Resolver) Detect(symbol string, loc LocaleContext) string {
	candidates, ok := r.symbols[symbol]
	if !ok {
		// Scan patterns are case-insensitive, so a typed-out code may
		// arrive in any case; retry uppercased before giving up.
		candidates, ok = r.symbols[strings.ToUpper(symbol)]
	}
	if !ok {
		return UnknownCurrency
	}

	if len(candidates) == 1 {
		return candidates[0]
	}
	return r.disambiguate(candidates, loc)
}

func (r *Resolver) disambiguate(candidates []string, loc LocaleContext) string {
	if loc.Country != "" {
		if code, ok := r.countries[loc.Country]; ok && contains(candidates, code) {
			return code
		}
	}

	if strings.EqualFold(loc.Language, "en") && contains(candidates, "USD") {
		return "USD"
	}

	if loc.TLD != "" {
		if code, ok := r.countries[strings.ToUpper(loc.TLD)]; ok && contains(candidates, code) {
			return code
		}
	}

	return candidates[0]
}

// Symbols returns every registered symbol sorted longest first, the
// order the scan pattern needs so a short symbol never shadows a longer
// one ("kr" must not pre-empt "FRw"). Ties break lexicographically for
// determinism.
func (r *Resolver) Symbols() []string {
	out := make([]string, 0, len(r.symbols))
	for sym := range r.symbols {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}

// Symbol returns the representative display symbol for an ISO code,
// reporting false when none is registered.
func (r *Resolver) Symbol(code string) (string, bool) {
	syms, ok := r.codes[strings.ToUpper(code)]
	if !ok || len(syms) == 0 {
		return "", false
	}
	return syms[0], true
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}
