// Package unitglance detects measurements in free text and converts
// them to a reader's preferred units.
//
// The engine recognizes lengths, weights, temperatures, areas, volumes,
// speeds, torques, pressures, currency amounts, clock times with a
// timezone designator, and dimension triples like "10 x 5 x 3 ft". Each
// detected expression is converted and rendered for inline display,
// with an auto-sizing step that keeps magnitudes legible ("2000 m"
// becomes "2 km").
//
// Basic usage:
//
//	engine := unitglance.New()
//	defer engine.Close()
//
//	convs, err := engine.Detect(ctx, "the desk is 5 ft wide and costs €120", loc)
//	if err != nil { ... }
//	convs = engine.Resolve(ctx, convs, loc)
//
// Detection is synchronous and pure. Currency amounts need an exchange
// rate, so Detect returns them in a pending state and Resolve performs
// the rate lookups, through a 30-minute cache so repeated scans of the
// same pair do not hammer the provider.
//
// Preferences are plain data (settings.Settings) persisted through a
// pluggable store; pkg/settings ships in-memory, YAML-file and Redis
// implementations. The subpackages under pkg/ are usable on their own
// when only one piece is needed.
package unitglance
