// Package detect scans free text for measurements and converts them to
// the reader's preferred units.
//
// A single [Detector.FindConversions] call runs a fixed sequence of
// passes over the text: currency amounts, dimension triples (both the
// "5 x 3 x 2 cm" and "5 cm x 3 cm x 2 cm" shapes), single-unit
// measurements by category priority, and clock times with a timezone
// designator. Every pass shares one claimed-span set, so each character
// of the input contributes to at most one result and earlier passes win
// overlaps.
//
// Unit conversions are rendered immediately; converted values pass
// through the auto-sizing rules of pkg/units so "2000 m" reads as
// "2 km" rather than a wall of zeros. Currency matches cannot be
// rendered without an exchange rate, so they are returned with a
// Pending rate request and a placeholder value, to be filled in by the
// caller:
//
//	det := detect.New(units.NewTable(), currency.NewResolver())
//	convs := det.FindConversions("the desk is 5 ft wide", prefs, loc)
//	// convs[0].Converted == "1.524 m"
//
// Detection is pure string work: no I/O, no clocks, no network. That
// keeps it deterministic and trivially testable; everything ambient
// (rates, settings storage) lives in the packages around it.
package detect
