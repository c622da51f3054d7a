package logger

import (
	"log/slog"
	"strconv"
)

// MaxInputLen is the number of bytes of an input kept by Input.
const MaxInputLen = 64

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Input records a user-supplied value under the key "input". Values longer
// than MaxInputLen bytes are cut and suffixed with "...".
func Input(s string) slog.Attr {
	if len(s) > MaxInputLen {
		s = s[:MaxInputLen] + "..."
	}
	return slog.String("input", s)
}

// FormatName records the validator format name under the key "format".
func FormatName(name string) slog.Attr {
	return slog.String("format", name)
}

// Setting records a configured value by its text form, so policies and
// cases log as "must" or "lower" rather than integers.
func Setting(key string, v interface{ String() string }) slog.Attr {
	return slog.String(key, v.String())
}

// Count records a quantity under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
