package units

import "errors"

// Sentinel errors for unit and scale operations.
var (
	// ErrUnknownUnit is returned when a unit is not known or not part of a scale.
	ErrUnknownUnit = errors.New("unknown time unit")

	// ErrInvalidScale is returned when a scale definition is inconsistent.
	ErrInvalidScale = errors.New("invalid unit scale")
)
