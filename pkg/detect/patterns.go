package detect

import (
	"regexp"
	"strings"

	"github.com/unitglance/unitglance/pkg/units"
)

// Pattern fragments shared between categories. The trailing \b on unit
// alternations makes alternative order mostly irrelevant: a short token
// can only win where a longer one would not have matched anyway.
const (
	numberPat = `\d+(?:\.\d+)?`

	lengthUnitsPat = `m|cm|mm|km|in|inch|inches|ft|foot|feet|yd|yard|yards|mi|mile|miles|` +
		`meter|meters|centimeter|centimeters|millimeter|millimeters|kilometer|kilometers`

	dimSepPat = `\s*(?:x|×|by|\*)\s*`
)

// singlePattern pairs a category with its compiled pattern; the slice in
// catalog fixes the single-unit priority order as an explicit literal
// sequence (area before length so "cm²" is never captured as "cm").
type singlePattern struct {
	category units.Category
	re       *regexp.Regexp
}

type catalog struct {
	currency *regexp.Regexp
	dimsEach *regexp.Regexp
	dims     *regexp.Regexp
	timezone *regexp.Regexp
	singles  []singlePattern
}

func newCatalog(table *units.Table, symbols []string) *catalog {
	length := `(?i)\b(` + numberPat + `)\s*-?\s*(` + lengthUnitsPat + `)\b`

	weight := `(?i)\b(` + numberPat + `)\s*(kg|g|mg|lb|lbs|oz|ounce|ounces|pound|pounds|` +
		`kilogram|kilograms|gram|grams|milligram|milligrams|tonne|tonnes|t)\b`

	temperature := `(?i)\b(` + numberPat + `)\s*°?\s*(c|f|k|celsius|fahrenheit|kelvin|` +
		`degrees?\s*celsius|degrees?\s*fahrenheit)\b`

	volume := `(?i)\b(` + numberPat + `)\s*(l|ml|gal|gallon|gallons|qt|quart|quarts|` +
		`pt|pint|pints|cup|cups|fl\s*oz|fluid\s*ounce|fluid\s*ounces|` +
		`liter|liters|milliliter|milliliters)\b`

	// Superscript forms end in a non-word rune, so they sit outside the
	// \b-terminated group.
	area := `(?i)(` + numberPat + `)\s*-?\s*(m²|cm²|mm²|km²|ft²|in²|` +
		`(?:m2|cm2|mm2|km2|ft2|in2|acre|acres|` +
		`square\s*(?:meters?|centimeters?|millimeters?|kilometers?|foot|feet|inch|inches)|` +
		`(?:meters?|feet|foot|inch(?:es)?|centimeters?|millimeters?|kilometers?)\s*squared)\b)`

	speed := `(?i)\b(` + numberPat + `)\s*(km/h|kmh|kph|mph|m/s|ft/s|kn|knot|knots|` +
		`miles\s*per\s*hour|kilometers\s*per\s*hour|meters\s*per\s*second|feet\s*per\s*second)\b`

	torque := `(?i)\b(` + numberPat + `)\s*(nm|newton\s*meters?|lbft|lb-ft|lb\s*ft|` +
		`ft-lbs?|ft\s*lbs?|foot\s*pounds?|pound\s*feet|kgfm|kgf-m|kgf\s*m)\b`

	pressure := `(?i)\b(` + numberPat + `)\s*(psi|bar|kpa|pa|atm|mmhg|mm\s*hg|` +
		`pascal|pascals|kilopascal|kilopascals|atmosphere|atmospheres)\b`

	timezone := `(?i)\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\s*` +
		`(utc|gmt|est|edt|cst|cdt|mst|mdt|pst|pdt|cet|cest|eet|eest|bst|ist|jst|kst|aest|aedt|nzst|nzdt)\b`

	dims := `(?i)\b(` + numberPat + `)` + dimSepPat + `(` + numberPat + `)` + dimSepPat +
		`(` + numberPat + `)\s*-?\s*(` + lengthUnitsPat + `)\b`

	dimsEach := `(?i)\b(` + numberPat + `)\s*(` + lengthUnitsPat + `)` + dimSepPat +
		`(` + numberPat + `)\s*(` + lengthUnitsPat + `)` + dimSepPat +
		`(` + numberPat + `)\s*(` + lengthUnitsPat + `)\b`

	return &catalog{
		currency: buildCurrencyPattern(table, symbols),
		dimsEach: regexp.MustCompile(dimsEach),
		dims:     regexp.MustCompile(dims),
		timezone: regexp.MustCompile(timezone),
		singles: []singlePattern{
			{units.Area, regexp.MustCompile(area)},
			{units.Temperature, regexp.MustCompile(temperature)},
			{units.Volume, regexp.MustCompile(volume)},
			{units.Weight, regexp.MustCompile(weight)},
			{units.Length, regexp.MustCompile(length)},
			{units.Speed, regexp.MustCompile(speed)},
			{units.Torque, regexp.MustCompile(torque)},
			{units.Pressure, regexp.MustCompile(pressure)},
		},
	}
}

// buildCurrencyPattern assembles the currency scan pattern from the
// registered symbol list, longest symbol first so "US$" is never
// shadowed by "$". Symbols that double as measurement unit tokens
// ("m" is the manat symbol, "K" the kwacha) are left out of the scan:
// inside running text they are far more likely to be units, and the
// measurement passes still get their shot at them. Matches come in
// symbol-amount or amount-symbol order, anchored on the outside so a
// bare symbol inside an identifier cannot match.
//
// Returns nil when no usable symbols remain; the detector skips the
// currency pass in that case.
func buildCurrencyPattern(table *units.Table, symbols []string) *regexp.Regexp {
	quoted := make([]string, 0, len(symbols))
	for _, sym := range symbols {
		if sym == "" || table.IsUnitToken(sym) {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(sym))
	}
	if len(quoted) == 0 {
		return nil
	}

	symAlt := strings.Join(quoted, "|")
	amount := `\d+(?:[\d.,' ]*\d)?`

	pattern := `(?i)(?:^|[\s(])(` + symAlt + `)\s*(` + amount + `)` +
		`|(` + amount + `)\s*(` + symAlt + `)(?:[\s).,;!?]|$)`

	return regexp.MustCompile(pattern)
}
