package hexgroup

import "errors"

var (
	// ErrInvalid is returned when the input does not follow the group grammar.
	ErrInvalid = errors.New("hexgroup: invalid format")

	// ErrSeparatorMust is returned when separators are required but absent.
	ErrSeparatorMust = errors.New("hexgroup: separator required")

	// ErrSeparatorDisallow is returned when separators are forbidden but present.
	ErrSeparatorDisallow = errors.New("hexgroup: separator not allowed")

	// ErrBadFormat is returned by Format.Check for an unusable configuration.
	ErrBadFormat = errors.New("hexgroup: bad format configuration")
)
