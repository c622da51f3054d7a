package phone

import (
	"fmt"
	"slices"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/text/language"
)

// ParseCountry converts an ISO 3166 code into a region supported by the
// phone grammar.
func ParseCountry(code string) (language.Region, error) {
	r, err := language.ParseRegion(strings.TrimSpace(code))
	if err != nil || !r.IsCountry() {
		return language.Region{}, fmt.Errorf("%w: %q", ErrUnknownCountry, code)
	}
	if phonenumbers.GetCountryCodeForRegion(regionCode(r)) == 0 {
		return language.Region{}, fmt.Errorf("%w: %q", ErrUnknownCountry, code)
	}
	return r, nil
}

// ParseCountries converts codes in order, failing on the first unknown one.
func ParseCountries(codes ...string) ([]language.Region, error) {
	out := make([]language.Region, 0, len(codes))
	for _, c := range codes {
		r, err := ParseCountry(c)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// AllCountries returns every country supported by the phone grammar, sorted
// by ISO code.
func AllCountries() []language.Region {
	supported := phonenumbers.GetSupportedRegions()
	out := make([]language.Region, 0, len(supported))
	for code := range supported {
		r, err := language.ParseRegion(code)
		if err != nil || !r.IsCountry() || regionCode(r) != code {
			continue
		}
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b language.Region) int {
		return strings.Compare(a.String(), b.String())
	})
	return out
}

// regionCode maps a language region to the phone grammar's region code.
func regionCode(r language.Region) string {
	return r.String()
}
