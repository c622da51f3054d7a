package uuidfmt

import (
	"errors"

	"github.com/dmitrymomot/validators/pkg/hexgroup"
)

var (
	ErrInvalid           = errors.New("uuid: invalid format")
	ErrSeparatorMust     = errors.New("uuid: separator required")
	ErrSeparatorDisallow = errors.New("uuid: separator not allowed")
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
