package i18n

import "errors"

var (
	// ErrFailedToParseYAML is returned when translation content is not a map of language maps.
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")

	// ErrFailedToReadFile is returned when a translation file cannot be read.
	ErrFailedToReadFile = errors.New("failed to read translation file")

	// ErrNoTranslations is returned when the content holds no languages.
	ErrNoTranslations = errors.New("no translations found")
)
