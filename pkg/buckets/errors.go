package buckets

import "errors"

// ErrNegativeAmount is returned when a negative amount is added to a chain.
var ErrNegativeAmount = errors.New("amount must not be negative")
