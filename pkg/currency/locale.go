package currency

import (
	"strings"

	"golang.org/x/text/language"
)

// LocaleContext carries the page-level locale signals used to
// disambiguate currency symbols shared by several countries. It is an
// explicit value passed into every lookup; the resolver never reaches
// for ambient state.
type LocaleContext struct {
	// Language is a lowercase ISO 639-1 language code ("en").
	Language string
	// Country is an uppercase ISO 3166-1 country code ("US"), empty when
	// the page declared no region.
	Country string
	// TLD is the page's top-level domain suffix ("de", "com"), empty
	// when unknown.
	TLD string
}

// ParseLocale builds a LocaleContext from a BCP 47 language tag such as
// "en-US" plus an optional top-level domain. Malformed tags degrade to
// an empty context rather than failing: locale signals are hints, and a
// missing hint just pushes the disambiguation chain to its next step.
func ParseLocale(tag, tld string) LocaleContext {
	loc := LocaleContext{TLD: strings.ToLower(strings.TrimPrefix(tld, "."))}

	if tag == "" {
		return loc
	}

	t, err := language.Parse(tag)
	if err != nil {
		return loc
	}

	if base, conf := t.Base(); conf != language.No {
		loc.Language = strings.ToLower(base.String())
	}
	if region, conf := t.Region(); conf != language.No && region.IsCountry() {
		loc.Country = strings.ToUpper(region.String())
	}

	return loc
}
