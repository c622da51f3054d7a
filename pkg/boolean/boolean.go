package boolean

import (
	"fmt"
	"strings"
)

var tokens = map[string]bool{
	"yes": true, "y": true, "true": true, "t": true, "1": true, "on": true,
	"no": false, "n": false, "false": false, "f": false, "0": false, "off": false,
}

// Integer is the set of integer types accepted by FromInt.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Parse converts a boolean token.
func Parse(s string) (bool, error) {
	// Longest token is "false"; skip lowering anything longer.
	if len(s) == 0 || len(s) > 5 {
		return false, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	v, ok := tokens[strings.ToLower(s)]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	return v, nil
}

// Validate reports whether s is a boolean token.
func Validate(s string) error {
	_, err := Parse(s)
	return err
}

// ParseRune converts a single-character token.
func ParseRune(r rune) (bool, error) {
	switch r {
	case 't', 'T', '1', 'y', 'Y':
		return true, nil
	case 'f', 'F', '0', 'n', 'N':
		return false, nil
	}
	return false, fmt.Errorf("%w: %q", ErrInvalid, r)
}

// FromInt converts 0 and 1.
func FromInt[T Integer](v T) (bool, error) {
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, fmt.Errorf("%w: %d", ErrInvalid, v)
}
