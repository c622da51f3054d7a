package boolean

import "errors"

// ErrInvalid is returned for tokens that are not a boolean spelling.
var ErrInvalid = errors.New("boolean: invalid value")
