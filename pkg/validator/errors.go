package validator

import "errors"

// ErrValidationFailed is used when a rule fails without reporting a cause.
var ErrValidationFailed = errors.New("validation failed")
