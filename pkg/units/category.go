package units

// Category identifies a family of mutually convertible units.
type Category string

// Measurement categories recognized by the detection engine.
//
// Currency, Timezone and Dimensions do not own ratio tables here:
// currency is handled by pkg/currency, timezone and dimension triples
// by the detector's dedicated passes.
const (
	Length      Category = "length"
	Weight      Category = "weight"
	Temperature Category = "temperature"
	Area        Category = "area"
	Volume      Category = "volume"
	Speed       Category = "speed"
	Torque      Category = "torque"
	Pressure    Category = "pressure"
	Currency    Category = "currency"
	Timezone    Category = "timezone"
	Dimensions  Category = "dimensions"
)

// ratioCategories is the fixed lookup order for CategoryOf. Area precedes
// length so area codes are reported consistently with the detector's
// pattern priority; beyond that the order only needs to be deterministic.
var ratioCategories = []Category{Area, Volume, Weight, Length, Speed, Torque, Pressure}
