package rates

import "errors"

// Sentinel errors for rate lookups.
var (
	// ErrUnavailable is returned when both the primary and the fallback
	// provider endpoints failed for a request.
	ErrUnavailable = errors.New("rates: provider unavailable")

	// ErrUnknownPair is returned when the provider answered but carries
	// no rate for the requested currency pair.
	ErrUnknownPair = errors.New("rates: unknown currency pair")
)
