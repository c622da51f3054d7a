package phone

import "errors"

var (
	// ErrIncorrectFormat is returned when no enabled country accepts the number.
	ErrIncorrectFormat = errors.New("phone: incorrect format")

	// ErrUnknownCountry is returned for country codes the phone grammar does not support.
	ErrUnknownCountry = errors.New("phone: unknown country")

	// ErrNoCountries is returned when a matcher is built without countries.
	ErrNoCountries = errors.New("phone: no countries enabled")
)
