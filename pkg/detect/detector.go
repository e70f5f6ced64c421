package detect

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/unitglance/unitglance/pkg/currency"
	"github.com/unitglance/unitglance/pkg/settings"
	"github.com/unitglance/unitglance/pkg/units"
)

// Detector scans free text for measurements and renders each one in the
// caller's preferred units. A Detector is immutable after construction
// and safe for concurrent use.
type Detector struct {
	table    *units.Table
	resolver *currency.Resolver
	patterns *catalog
}

// New builds a detector over the given unit table and currency resolver.
func New(table *units.Table, resolver *currency.Resolver) *Detector {
	return &Detector{
		table:    table,
		resolver: resolver,
		patterns: newCatalog(table, resolver.Symbols()),
	}
}

// FindConversions runs every detection pass over text and returns the
// conversions in pass order: currency first, then dimension triples,
// then single-unit measurements by category priority, timezone last.
//
// Each character of text belongs to at most one result. Passes claim
// the span of a match only when they emit for it, so a rejected
// candidate (unknown symbol, mixed-unit triple) leaves the text free
// for later passes.
//
// Currency results carry a Pending rate request and a placeholder
// Converted value; everything else is final. The returned slice is nil
// when nothing matched.
func (d *Detector) FindConversions(text string, prefs settings.Settings, loc currency.LocaleContext) []Conversion {
	prefs = prefs.WithDefaults()

	var (
		out     []Conversion
		claimed spanSet
	)

	out = d.currencyPass(text, prefs, loc, &claimed, out)
	out = d.dimensionPass(text, d.patterns.dimsEach, true, prefs, &claimed, out)
	out = d.dimensionPass(text, d.patterns.dims, false, prefs, &claimed, out)
	out = d.singlePass(text, prefs, &claimed, out)
	out = d.timezonePass(text, prefs, &claimed, out)

	return out
}

func (d *Detector) currencyPass(text string, prefs settings.Settings, loc currency.LocaleContext, claimed *spanSet, out []Conversion) []Conversion {
	if d.patterns.currency == nil {
		return out
	}
	target := strings.ToUpper(prefs.Currency)

	for _, m := range d.patterns.currency.FindAllStringSubmatchIndex(text, -1) {
		// Branch one captures symbol then amount (groups 1, 2), branch
		// two amount then symbol (groups 3, 4). The span runs from the
		// first capture to the last, excluding the outer anchors.
		var symStart, symEnd, amtStart, amtEnd, start, end int
		if m[2] >= 0 {
			symStart, symEnd, amtStart, amtEnd = m[2], m[3], m[4], m[5]
			start, end = symStart, amtEnd
		} else {
			amtStart, amtEnd, symStart, symEnd = m[6], m[7], m[8], m[9]
			start, end = amtStart, symEnd
		}

		span := Span{Start: start, End: end}
		if claimed.overlaps(span) {
			continue
		}

		code := d.resolver.Detect(text[symStart:symEnd], loc)
		if code == currency.UnknownCurrency || strings.EqualFold(code, target) {
			continue
		}

		amount, ok := currency.ExtractAmount(text[amtStart:amtEnd])
		if !ok {
			continue
		}

		out = append(out, Conversion{
			Original:  text[start:end],
			Converted: PendingPlaceholder,
			Category:  units.Currency,
			Span:      span,
			Pending:   &PendingRate{Amount: amount, From: code, To: target},
		})
		claimed.claim(span)
	}
	return out
}

// dimensionPass handles WxHxD triples; eachUnit selects the variant
// where every value carries its own unit token. Mixed-unit triples are
// left unclaimed so the single-unit pass can still pick the pieces up.
func (d *Detector) dimensionPass(text string, re *regexp.Regexp, eachUnit bool, prefs settings.Settings, claimed *spanSet, out []Conversion) []Conversion {
	target, _ := prefs.UnitFor(units.Dimensions)
	targetNorm := d.table.Normalize(target)

	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		span := Span{Start: m[0], End: m[1]}
		if claimed.overlaps(span) {
			continue
		}

		var nums [3]float64
		var source string
		ok := true

		if eachUnit {
			// Groups alternate number, unit. All three unit tokens must
			// normalize to the same length unit.
			for i := 0; i < 3; i++ {
				v, err := strconv.ParseFloat(text[m[2+4*i]:m[3+4*i]], 64)
				if err != nil {
					ok = false
					break
				}
				nums[i] = v

				norm := d.table.Normalize(text[m[4+4*i] : m[5+4*i]])
				if i == 0 {
					source = norm
				} else if norm != source {
					ok = false
					break
				}
			}
		} else {
			for i := 0; i < 3; i++ {
				v, err := strconv.ParseFloat(text[m[2+2*i]:m[3+2*i]], 64)
				if err != nil {
					ok = false
					break
				}
				nums[i] = v
			}
			source = d.table.Normalize(text[m[8]:m[9]])
		}
		if !ok {
			continue
		}
		if cat, catOK := d.table.CategoryOf(source); !catOK || cat != units.Length {
			continue
		}

		// Convert the triple to the preferred unit, then let the largest
		// side pick a legible display unit for all three.
		var converted [3]float64
		largest := math.Inf(-1)
		for i, v := range nums {
			cv, convOK := d.table.Convert(v, source, targetNorm)
			if !convOK {
				ok = false
				break
			}
			converted[i] = cv
			if cv > largest {
				largest = cv
			}
		}
		if !ok {
			continue
		}

		_, displayUnit := d.table.BestUnit(largest, units.Length, targetNorm)

		var display [3]float64
		suppressed := displayUnit == source
		for i, v := range nums {
			dv, _ := d.table.Convert(v, source, displayUnit)
			display[i] = round2(dv)
			if suppressed && math.Abs(display[i]-v) >= 0.01 {
				suppressed = false
			}
		}

		// A triple that round-trips to itself is claimed but not
		// reported, otherwise its trailing unit would surface as a bogus
		// standalone match.
		claimed.claim(span)
		if suppressed {
			continue
		}

		parts := make([]string, 3)
		for i, v := range display {
			parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		out = append(out, Conversion{
			Original:  text[span.Start:span.End],
			Converted: strings.Join(parts, " × ") + " " + displayUnit,
			Category:  units.Dimensions,
			Span:      span,
		})
	}
	return out
}

func (d *Detector) singlePass(text string, prefs settings.Settings, claimed *spanSet, out []Conversion) []Conversion {
	for _, sp := range d.patterns.singles {
		target, hasPref := prefs.UnitFor(sp.category)
		if !hasPref {
			continue
		}
		targetNorm := d.table.Normalize(target)

		for _, m := range sp.re.FindAllStringSubmatchIndex(text, -1) {
			span := Span{Start: m[0], End: m[1]}
			if claimed.overlaps(span) {
				continue
			}

			// A '/' right after the unit means this is the numerator of
			// a compound unit ("5 m/s"); leave it for the speed pattern.
			if span.End < len(text) && text[span.End] == '/' {
				continue
			}

			value, err := strconv.ParseFloat(text[m[2]:m[3]], 64)
			if err != nil {
				continue
			}

			source := d.table.Normalize(text[m[4]:m[5]])
			if cat, ok := d.table.CategoryOf(source); !ok || cat != sp.category {
				continue
			}
			if source == targetNorm {
				continue
			}

			converted, ok := d.table.Convert(value, source, targetNorm)
			if !ok {
				continue
			}
			best, bestUnit := d.table.BestUnit(converted, sp.category, targetNorm)

			// Auto-sizing can land back on the source unit; drop the
			// result when it does and the value is unchanged.
			if bestUnit == source && math.Abs(best-value) < 0.01 {
				claimed.claim(span)
				continue
			}

			out = append(out, Conversion{
				Original:  text[span.Start:span.End],
				Converted: units.Format(best, bestUnit),
				Category:  sp.category,
				Span:      span,
			})
			claimed.claim(span)
		}
	}
	return out
}

// round2 rounds to two decimals. The epsilon absorbs binary
// representation error just below a .xx5 boundary, so 36.5 cm read in
// meters displays as 0.37 and not 0.36.
func round2(v float64) float64 {
	return math.Round(v*100+1e-9) / 100
}

func (d *Detector) timezonePass(text string, prefs settings.Settings, claimed *spanSet, out []Conversion) []Conversion {
	target := strings.ToLower(prefs.Timezone)

	for _, m := range d.patterns.timezone.FindAllStringSubmatchIndex(text, -1) {
		span := Span{Start: m[0], End: m[1]}
		if claimed.overlaps(span) {
			continue
		}

		ct := clockTime{zone: strings.ToLower(text[m[8]:m[9]])}
		ct.hour, _ = strconv.Atoi(text[m[2]:m[3]])
		if m[4] >= 0 {
			ct.minute, _ = strconv.Atoi(text[m[4]:m[5]])
		}
		if m[6] >= 0 {
			ct.meridiem = strings.ToLower(text[m[6]:m[7]])
		}

		if ct.zone == target || !ct.valid() {
			continue
		}

		rendered, ok := convertZone(ct, target)
		if !ok {
			continue
		}

		out = append(out, Conversion{
			Original:  text[span.Start:span.End],
			Converted: rendered,
			Category:  units.Timezone,
			Span:      span,
		})
		claimed.claim(span)
	}
	return out
}
