package policy

import (
	"fmt"
	"strings"
)

// Policy is a tri-state rule for an optional trait of the input.
type Policy uint8

const (
	// Allow accepts input with or without the trait.
	Allow Policy = iota
	// Must rejects input without the trait.
	Must
	// Disallow rejects input with the trait.
	Disallow
)

func (p Policy) String() string {
	switch p {
	case Allow:
		return "allow"
	case Must:
		return "must"
	case Disallow:
		return "disallow"
	default:
		return fmt.Sprintf("policy(%d)", uint8(p))
	}
}

// Valid reports whether p is one of the declared values.
func (p Policy) Valid() bool {
	return p <= Disallow
}

// Check reports whether the presence of a trait satisfies p.
func (p Policy) Check(present bool) bool {
	switch p {
	case Must:
		return present
	case Disallow:
		return !present
	default:
		return true
	}
}

// Parse converts a textual policy into a Policy. Matching is case-insensitive
// and accepts "not_allow" and "notallow" as aliases of "disallow".
func Parse(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "allow":
		return Allow, nil
	case "must":
		return Must, nil
	case "disallow", "not_allow", "notallow":
		return Disallow, nil
	}
	return Allow, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

func (p Policy) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, uint8(p))
	}
	return []byte(p.String()), nil
}

func (p *Policy) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
