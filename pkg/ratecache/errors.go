package ratecache

import "errors"

// Sentinel errors for rate cache operations.
var (
	// ErrNotFound is returned when a pair is absent or its entry has aged out.
	ErrNotFound = errors.New("ratecache: rate not found")

	// ErrClosed is returned when an operation is attempted on a closed cache.
	ErrClosed = errors.New("ratecache: closed")

	// ErrMarshal is returned when rate serialization fails.
	ErrMarshal = errors.New("ratecache: failed to marshal rate")

	// ErrUnmarshal is returned when rate deserialization fails.
	ErrUnmarshal = errors.New("ratecache: failed to unmarshal rate")
)
