// Package i18n renders validation messages from translation keys.
//
// Translations are nested YAML maps keyed by language at the top level and
// addressed with dot-separated keys:
//
//	en:
//	  validation:
//	    mac: "%{field} must be a MAC address (%{reason})"
//
// Placeholders use the `%{name}` form and are filled from the values map
// passed to T. Unknown placeholders are left untouched.
//
// A requested language is matched against the loaded ones with
// golang.org/x/text/language, so "en-GB" resolves to "en". Keys missing in
// the matched language fall back to the default language and then to the
// key itself.
//
// Default returns a Translator over the embedded English messages for every
// key produced by package validator:
//
//	msgs := verrs.Translate(i18n.Default(), "en")
//
// # Error Handling
//
// Loading errors wrap ErrFailedToParseYAML or ErrFailedToReadFile and can be
// checked with errors.Is.
package i18n
