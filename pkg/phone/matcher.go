package phone

import (
	"fmt"
	"slices"
	"sync"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/text/language"
)

// Matcher checks numbers against an ordered set of enabled countries.
type Matcher struct {
	countries []language.Region
	codes     []string
}

// NewMatcher builds a matcher over countries, dropping duplicates while
// keeping the first occurrence order.
func NewMatcher(countries ...language.Region) (*Matcher, error) {
	if len(countries) == 0 {
		return nil, ErrNoCountries
	}
	m := &Matcher{}
	for _, r := range countries {
		if slices.Contains(m.countries, r) {
			continue
		}
		code := regionCode(r)
		if !r.IsCountry() || phonenumbers.GetCountryCodeForRegion(code) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCountry, code)
		}
		m.countries = append(m.countries, r)
		m.codes = append(m.codes, code)
	}
	return m, nil
}

// MustMatcher parses codes and builds a matcher, panicking on unknown codes.
func MustMatcher(codes ...string) *Matcher {
	regions, err := ParseCountries(codes...)
	if err != nil {
		panic(err)
	}
	m, err := NewMatcher(regions...)
	if err != nil {
		panic(err)
	}
	return m
}

var defaultMatcher = sync.OnceValue(func() *Matcher {
	m, err := NewMatcher(AllCountries()...)
	if err != nil {
		panic(err)
	}
	return m
})

// Default returns the shared matcher over AllCountries. It is built on first use.
func Default() *Matcher {
	return defaultMatcher()
}

// Countries returns a copy of the enabled countries in matching order.
func (m *Matcher) Countries() []language.Region {
	return slices.Clone(m.countries)
}

// Parse returns the number together with every enabled country in which it is valid.
func (m *Matcher) Parse(s string) (PhoneNumber, error) {
	var (
		matched []language.Region
		first   *phonenumbers.PhoneNumber
	)
	for i, code := range m.codes {
		num, err := phonenumbers.Parse(s, code)
		if err != nil || !phonenumbers.IsValidNumber(num) {
			continue
		}
		if first == nil {
			first = num
		}
		matched = append(matched, m.countries[i])
	}
	if len(matched) == 0 {
		return PhoneNumber{}, fmt.Errorf("%w: %q", ErrIncorrectFormat, s)
	}
	return PhoneNumber{
		text:      s,
		countries: matched,
		e164:      phonenumbers.Format(first, phonenumbers.E164),
	}, nil
}

// Validate reports whether s is valid in at least one enabled country.
func (m *Matcher) Validate(s string) error {
	for _, code := range m.codes {
		num, err := phonenumbers.Parse(s, code)
		if err == nil && phonenumbers.IsValidNumber(num) {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrIncorrectFormat, s)
}

// PhoneNumber is a number with the non-empty set of countries it is valid in.
type PhoneNumber struct {
	text      string
	countries []language.Region
	e164      string
}

// String returns the number as given.
func (n PhoneNumber) String() string { return n.text }

// Countries returns the matched countries in matcher order.
func (n PhoneNumber) Countries() []language.Region {
	return slices.Clone(n.countries)
}

// In reports whether the number is valid in country r.
func (n PhoneNumber) In(r language.Region) bool {
	return slices.Contains(n.countries, r)
}

// E164 formats the number as parsed in the first matched country.
func (n PhoneNumber) E164() string { return n.e164 }
