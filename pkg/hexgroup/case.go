package hexgroup

import (
	"fmt"
	"strings"
)

// Case restricts the letters of the hex alphabet.
type Case uint8

const (
	// CaseAny accepts a-f and A-F. Rendering uses lower case.
	CaseAny Case = iota
	// CaseUpper accepts only A-F.
	CaseUpper
	// CaseLower accepts only a-f.
	CaseLower
)

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

func (c Case) String() string {
	switch c {
	case CaseAny:
		return "any"
	case CaseUpper:
		return "upper"
	case CaseLower:
		return "lower"
	default:
		return fmt.Sprintf("case(%d)", uint8(c))
	}
}

// ParseCase converts "any", "upper" or "lower" into a Case.
func ParseCase(s string) (Case, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return CaseAny, nil
	case "upper":
		return CaseUpper, nil
	case "lower":
		return CaseLower, nil
	}
	return CaseAny, fmt.Errorf("%w: unknown case %q", ErrBadFormat, s)
}

func (c Case) MarshalText() ([]byte, error) {
	if c > CaseLower {
		return nil, fmt.Errorf("%w: unknown case %d", ErrBadFormat, uint8(c))
	}
	return []byte(c.String()), nil
}

func (c *Case) UnmarshalText(text []byte) error {
	v, err := ParseCase(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// nibble decodes a single hex digit under the case restriction.
func (c Case) nibble(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f' && c != CaseUpper:
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F' && c != CaseLower:
		return b - 'A' + 10, true
	}
	return 0, false
}

func (c Case) alphabet() string {
	if c == CaseUpper {
		return upperDigits
	}
	return lowerDigits
}

func isHexDigit(b byte) bool {
	_, ok := CaseAny.nibble(b)
	return ok
}
