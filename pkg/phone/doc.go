// Package phone matches phone numbers against a set of enabled countries.
//
// A Matcher tries every enabled country, in the order it was configured, as
// the parsing context for github.com/nyaruka/phonenumbers and keeps each
// country for which the number parses and is reported valid. The result is
// never narrowed to a single "the" country: a number written in international
// form is valid in every enabled context, and a national number may be valid
// in several.
//
// Countries are golang.org/x/text/language regions, so configuration accepts
// "US", "us", "USA" or "840" alike.
//
//	m := phone.MustMatcher("US", "GB", "DE")
//	n, err := m.Parse("+1 650-253-0000")
//	n.Countries() // [US GB DE]
//
// Matchers are immutable after construction and safe for concurrent use.
// Default returns a process-wide matcher over every supported country.
package phone
