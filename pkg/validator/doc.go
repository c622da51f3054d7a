// Package validator turns the parse-or-reject format validators of this module
// into composable rules that report every failing field at once.
//
// A Rule pairs a Check function returning the validator's own error with
// translation-friendly metadata. Apply evaluates the rules and aggregates
// failures into ValidationErrors, which implements error and unwraps to the
// underlying sentinel errors so errors.Is keeps working:
//
//	err := validator.Apply(
//	    validator.ValidMAC("mac", form.MAC, mac.Parser{}),
//	    validator.ValidHost("endpoint", form.Endpoint, host.Validator{Port: policy.Must}),
//	    validator.ValidBool("enabled", form.Enabled),
//	)
//	if errors.Is(err, host.ErrPortMust) {
//	    // ...
//	}
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    verrs.Get("endpoint")
//	}
//
// Every rule uses a "validation.<name>" translation key with the field name
// and the failure reason in TranslationValues.
package validator
