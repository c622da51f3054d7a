package number

import "errors"

var (
	// ErrParse is returned when the input is not a finite decimal numeral.
	ErrParse = errors.New("number: invalid numeral")

	// ErrUnprecise is returned when the value cannot be represented as a float64 exactly.
	ErrUnprecise = errors.New("number: precision lost")

	// ErrNegativeNotFound is returned when a negative value is required.
	ErrNegativeNotFound = errors.New("number: must be negative")

	// ErrNegativeNotAllowed is returned when a negative value is forbidden.
	ErrNegativeNotAllowed = errors.New("number: negative value not allowed")

	// ErrZeroNotFound is returned when the value is required to be zero.
	ErrZeroNotFound = errors.New("number: must be zero")

	// ErrZeroNotAllowed is returned when zero is forbidden.
	ErrZeroNotAllowed = errors.New("number: zero not allowed")
)
