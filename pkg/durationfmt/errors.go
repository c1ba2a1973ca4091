package durationfmt

import "errors"

// Sentinel errors for formatter construction and formatting.
var (
	// ErrInvalidRange is returned when the minimum unit is coarser than the maximum unit.
	ErrInvalidRange = errors.New("minimum unit must not be coarser than maximum unit")

	// ErrNegativeLimit is returned when the maximum number of visible units is negative.
	ErrNegativeLimit = errors.New("maximum number of units must not be negative")

	// ErrInvalidFormat is returned when a number format cannot render an integer.
	ErrInvalidFormat = errors.New("invalid number format")

	// ErrNegativeValue is returned when a negative duration is formatted.
	ErrNegativeValue = errors.New("duration must not be negative")

	// ErrUnknownPreset is returned when a preset name is not known.
	ErrUnknownPreset = errors.New("unknown preset")
)
