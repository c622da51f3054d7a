package formats

import "errors"

var (
	// ErrInvalidSettings is returned by Build when a section cannot produce a validator.
	ErrInvalidSettings = errors.New("formats: invalid settings")

	// ErrUnknownFormat is returned by Kit.Check for a format name it does not serve.
	ErrUnknownFormat = errors.New("formats: unknown format")
)
