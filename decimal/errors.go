package decimal

import "errors"

// ErrInvalidDigits indicates a string passed to this package was not a
// canonical non-negative decimal (empty, non-digit characters, or a
// leading zero on a multi-digit value).
var ErrInvalidDigits = errors.New("decimal: invalid digit string")

// ErrDivisorTooSmall indicates Divide was called with a non-positive
// divisor, which is meaningless for non-negative decimal division.
var ErrDivisorTooSmall = errors.New("decimal: divisor must be positive")
