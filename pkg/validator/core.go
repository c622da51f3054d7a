package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
	// Err is the validator error that caused the failure.
	Err error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, err.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap exposes the underlying validator errors to errors.Is and errors.As.
func (ve ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(ve))
	for _, err := range ve {
		if err.Err != nil {
			errs = append(errs, err.Err)
		}
	}
	return errs
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Translator renders the message for a translation key.
type Translator interface {
	T(lang, key string, values map[string]any) string
}

// Translate renders every error with tr and groups the messages by field.
// Errors without a translation key keep their Message.
func (ve ValidationErrors) Translate(tr Translator, lang string) map[string][]string {
	out := make(map[string][]string, len(ve))
	for _, err := range ve {
		msg := err.Message
		if err.TranslationKey != "" {
			msg = tr.T(lang, err.TranslationKey, err.TranslationValues)
		}
		out[err.Field] = append(out[err.Field], msg)
	}
	return out
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() error
	Error ValidationError
}

// Apply executes multiple validation rules and returns any validation errors.
// The error returned by a failing Check is stored in ValidationError.Err and
// recorded under the "reason" translation value.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		cause := rule.Check()
		if cause == nil {
			continue
		}
		verr := rule.Error
		verr.Err = cause
		values := make(map[string]any, len(verr.TranslationValues)+1)
		for k, v := range verr.TranslationValues {
			values[k] = v
		}
		values["reason"] = cause.Error()
		verr.TranslationValues = values
		errs = append(errs, verr)
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}

// check adapts a boolean predicate to a Rule check.
func check(ok func() bool) func() error {
	return func() error {
		if ok() {
			return nil
		}
		return ErrValidationFailed
	}
}

func newError(field, message, key string, values map[string]any) ValidationError {
	if values == nil {
		values = make(map[string]any, 1)
	}
	values["field"] = field
	return ValidationError{
		Field:             field,
		Message:           message,
		TranslationKey:    key,
		TranslationValues: values,
	}
}
