package validator

import (
	"strings"

	"github.com/dmitrymomot/validators/pkg/boolean"
	"github.com/dmitrymomot/validators/pkg/host"
	"github.com/dmitrymomot/validators/pkg/mac"
	"github.com/dmitrymomot/validators/pkg/number"
	"github.com/dmitrymomot/validators/pkg/phone"
	"github.com/dmitrymomot/validators/pkg/uuidfmt"
)

// Required validates that a string is not blank.
func Required(field, value string) Rule {
	return Rule{
		Check: check(func() bool {
			return strings.TrimSpace(value) != ""
		}),
		Error: newError(field, "field is required", "validation.required", nil),
	}
}

// ValidMAC validates a MAC address under the parser's case and separator policies.
func ValidMAC(field, value string, p mac.Parser) Rule {
	return Rule{
		Check: func() error { return p.Validate(value) },
		Error: newError(field, "must be a valid MAC address", "validation.mac", map[string]any{
			"case":      p.Case.String(),
			"separator": p.Separator.String(),
		}),
	}
}

// ValidUUID validates a UUID under the parser's case and separator policies.
func ValidUUID(field, value string, p uuidfmt.Parser) Rule {
	return Rule{
		Check: func() error { return p.Validate(value) },
		Error: newError(field, "must be a valid UUID", "validation.uuid", map[string]any{
			"case":      p.Case.String(),
			"separator": p.Separator.String(),
		}),
	}
}

// ValidHost validates a host name or IP literal with an optional port.
func ValidHost(field, value string, v host.Validator) Rule {
	return Rule{
		Check: func() error { return v.Validate(value) },
		Error: newError(field, "must be a valid host", "validation.host", hostValues(v)),
	}
}

// ValidIP validates an IP literal, optionally with a port. Domain names are
// rejected regardless of v.Kinds.
func ValidIP(field, value string, v host.Validator) Rule {
	v.Kinds &= host.KindIP
	if v.Kinds == 0 {
		v.Kinds = host.KindIP
	}
	return Rule{
		Check: func() error { return v.Validate(value) },
		Error: newError(field, "must be a valid IP address", "validation.ip", hostValues(v)),
	}
}

func hostValues(v host.Validator) map[string]any {
	return map[string]any{
		"local":               v.Local.String(),
		"port":                v.Port.String(),
		"at_least_two_labels": v.AtLeastTwoLabels.String(),
	}
}

// ValidNumber validates a decimal numeral under sign and zero policies.
func ValidNumber(field, value string, v number.Validator) Rule {
	return Rule{
		Check: func() error { return v.Validate(value) },
		Error: newError(field, "must be a valid number", "validation.number", map[string]any{
			"negative": v.Negative.String(),
			"zero":     v.Zero.String(),
		}),
	}
}

// ValidPhone validates that a phone number is valid in at least one of the
// matcher's countries.
func ValidPhone(field, value string, m *phone.Matcher) Rule {
	return Rule{
		Check: func() error { return m.Validate(value) },
		Error: newError(field, "must be a valid phone number", "validation.phone", nil),
	}
}

// ValidBool validates a boolean token such as "yes", "off" or "1".
func ValidBool(field, value string) Rule {
	return Rule{
		Check: func() error { return boolean.Validate(value) },
		Error: newError(field, "must be a boolean", "validation.boolean", nil),
	}
}
