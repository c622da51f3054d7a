package mac

import (
	"errors"

	"github.com/dmitrymomot/validators/pkg/hexgroup"
)

var (
	ErrInvalid           = errors.New("mac: invalid address")
	ErrSeparatorMust     = errors.New("mac: separator required")
	ErrSeparatorDisallow = errors.New("mac: separator not allowed")
)

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, hexgroup.ErrSeparatorMust):
		return ErrSeparatorMust
	case errors.Is(err, hexgroup.ErrSeparatorDisallow):
		return ErrSeparatorDisallow
	default:
		return ErrInvalid
	}
}
