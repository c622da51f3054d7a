package bounded

import "errors"

var (
	// ErrInvalid is returned when a numeral cannot be parsed.
	ErrInvalid = errors.New("bounded: invalid number")

	ErrTooSmall = errors.New("bounded: value too small")
	ErrTooLarge = errors.New("bounded: value too large")

	// ErrForbidden is returned for NaN under a Disallow policy, or for any
	// other value under a Must policy.
	ErrForbidden = errors.New("bounded: value forbidden")

	ErrUnderflow = errors.New("bounded: too few items")
	ErrOverflow  = errors.New("bounded: too many items")
)
