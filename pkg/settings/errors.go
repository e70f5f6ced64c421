package settings

import "errors"

// Sentinel errors for settings stores.
var (
	// ErrInvalidUnit is returned by Validate when a preference names a
	// unit outside its category.
	ErrInvalidUnit = errors.New("settings: invalid unit preference")

	// ErrNotFound is returned by stores when no settings have been saved
	// yet; callers typically fall back to Defaults.
	ErrNotFound = errors.New("settings: not found")
)
