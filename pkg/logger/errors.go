package logger

import "errors"

// ErrInvalidFormat is returned when a log format name is neither json nor text.
var ErrInvalidFormat = errors.New("invalid log format")
