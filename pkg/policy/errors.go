package policy

import "errors"

// ErrUnknownPolicy is returned when a textual policy does not name a known value.
var ErrUnknownPolicy = errors.New("unknown policy")
