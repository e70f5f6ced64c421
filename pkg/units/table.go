package units

// Table is the immutable unit registry: per-category conversion ratios,
// the alias map, and per-category default display units.
//
// Every ratio is the number of that unit per one base unit of its
// category (base units carry ratio 1). Conversion between units A and B
// is value / ratio(A) * ratio(B). Temperature has no ratio entry; its
// three codes (c, f, k) are handled by affine rules in convert.go.
type Table struct {
	ratios   map[Category]map[string]float64
	aliases  map[string]string
	defaults map[Category]string
}

// NewTable builds the built-in unit registry. The returned table is
// never mutated and is safe for concurrent use.
func NewTable() *Table {
	return &Table{
		ratios: map[Category]map[string]float64{
			Length: {
				"m":  1,
				"cm": 100,
				"mm": 1000,
				"km": 0.001,
				"in": 39.3701,
				"ft": 3.28084,
				"yd": 1.09361,
				"mi": 0.000621371,
			},
			Weight: {
				"kg": 1,
				"g":  1000,
				"mg": 1000000,
				"lb": 2.20462,
				"oz": 35.274,
				"t":  0.001,
			},
			Volume: {
				"l":     1,
				"ml":    1000,
				"gal":   0.264172,
				"qt":    1.05669,
				"pt":    2.11338,
				"cup":   4.22675,
				"fl_oz": 33.814,
			},
			Area: {
				"m2":   1,
				"cm2":  10000,
				"mm2":  1000000,
				"km2":  0.000001,
				"ft2":  10.7639,
				"in2":  1550,
				"acre": 0.000247105,
			},
			Speed: {
				"kmh": 1,
				"mph": 0.621371,
				"ms":  0.277778,
				"kn":  0.539957,
				"fts": 0.911344,
			},
			Torque: {
				"nm":   1,
				"lbft": 0.737562,
				"kgfm": 0.101972,
			},
			Pressure: {
				"bar":  1,
				"psi":  14.5038,
				"kpa":  100,
				"pa":   100000,
				"atm":  0.986923,
				"mmhg": 750.062,
			},
		},
		aliases: builtinAliases(),
		defaults: map[Category]string{
			Length:      "m",
			Weight:      "kg",
			Temperature: "c",
			Volume:      "l",
			Area:        "m2",
			Speed:       "kmh",
			Torque:      "nm",
			Pressure:    "bar",
		},
	}
}

func builtinAliases() map[string]string {
	return map[string]string{
		// Length.
		"inch": "in", "inches": "in",
		"foot": "ft", "feet": "ft",
		"yard": "yd", "yards": "yd",
		"mile": "mi", "miles": "mi",
		"meter": "m", "meters": "m",
		"centimeter": "cm", "centimeters": "cm",
		"millimeter": "mm", "millimeters": "mm",
		"kilometer": "km", "kilometers": "km",

		// Weight.
		"kilogram": "kg", "kilograms": "kg",
		"gram": "g", "grams": "g",
		"milligram": "mg", "milligrams": "mg",
		"pound": "lb", "pounds": "lb", "lbs": "lb",
		"ounce": "oz", "ounces": "oz",
		"tonne": "t", "tonnes": "t",

		// Temperature.
		"celsius": "c", "fahrenheit": "f", "kelvin": "k",
		"degrees celsius": "c", "degrees fahrenheit": "f",
		"degree celsius": "c", "degree fahrenheit": "f",

		// Volume.
		"liter": "l", "liters": "l",
		"milliliter": "ml", "milliliters": "ml",
		"gallon": "gal", "gallons": "gal",
		"quart": "qt", "quarts": "qt",
		"pint": "pt", "pints": "pt",
		"cups":   "cup",
		"fl oz":  "fl_oz",
		"fl. oz": "fl_oz",
		"fluid ounce": "fl_oz", "fluid ounces": "fl_oz",

		// Area. Superscript forms are covered by the ²→2 rewrite in
		// Normalize, so only the spelled-out forms need entries.
		"square meter": "m2", "square meters": "m2",
		"square centimeter": "cm2", "square centimeters": "cm2",
		"square millimeter": "mm2", "square millimeters": "mm2",
		"square kilometer": "km2", "square kilometers": "km2",
		"square foot": "ft2", "square feet": "ft2",
		"square inch": "in2", "square inches": "in2",
		"meter squared": "m2", "meters squared": "m2",
		"foot squared": "ft2", "feet squared": "ft2",
		"inch squared": "in2", "inches squared": "in2",
		"centimeter squared": "cm2", "centimeters squared": "cm2",
		"millimeter squared": "mm2", "millimeters squared": "mm2",
		"kilometer squared": "km2", "kilometers squared": "km2",
		"acres": "acre",

		// Speed.
		"km/h": "kmh", "kph": "kmh", "kilometers per hour": "kmh",
		"m/s": "ms", "meters per second": "ms",
		"miles per hour": "mph",
		"knot":           "kn", "knots": "kn",
		"ft/s": "fts", "feet per second": "fts",

		// Torque.
		"newton meter": "nm", "newton meters": "nm",
		"lb ft": "lbft", "lb-ft": "lbft",
		"ft lb": "lbft", "ft lbs": "lbft", "ft-lb": "lbft", "ft-lbs": "lbft",
		"foot pound": "lbft", "foot pounds": "lbft", "pound feet": "lbft",
		"kgf m": "kgfm", "kgf-m": "kgfm",

		// Pressure.
		"pascal": "pa", "pascals": "pa",
		"kilopascal": "kpa", "kilopascals": "kpa",
		"atmosphere": "atm", "atmospheres": "atm",
		"mm hg": "mmhg",
	}
}

// Ratio returns the to-base ratio of a canonical unit code within a
// category. Reports false when the category or code is unknown.
func (t *Table) Ratio(cat Category, code string) (float64, bool) {
	codes, ok := t.ratios[cat]
	if !ok {
		return 0, false
	}
	r, ok := codes[code]
	return r, ok
}

// DefaultUnit returns the built-in default display unit of a category.
// Reports false for categories without one (currency, timezone, dimensions).
func (t *Table) DefaultUnit(cat Category) (string, bool) {
	u, ok := t.defaults[cat]
	return u, ok
}
