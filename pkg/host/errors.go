package host

import "errors"

var (
	// ErrInvalid is returned when the input is neither an IP literal nor a valid domain.
	ErrInvalid = errors.New("host: invalid host")

	ErrPortMust     = errors.New("host: port required")
	ErrPortDisallow = errors.New("host: port not allowed")

	ErrLocalMust     = errors.New("host: local host required")
	ErrLocalDisallow = errors.New("host: local host not allowed")

	ErrAtLeastTwoLabelsMust     = errors.New("host: at least two labels required")
	ErrAtLeastTwoLabelsDisallow = errors.New("host: at least two labels not allowed")
)
