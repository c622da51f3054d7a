// Package policy defines the tri-state switch shared by every format validator
// in this module.
//
// A Policy answers one question about an optional trait of the input: may it
// be present (Allow), must it be present (Must), or must it be absent
// (Disallow). Separator handling in hex-group identifiers, port suffixes and
// locality in host names, the sign and zero checks of numbers all reuse the
// same three values.
//
// The zero value is Allow, so an unconfigured struct field never rejects
// input. Policy implements encoding.TextMarshaler and encoding.TextUnmarshaler
// which lets environment and YAML configuration carry it as plain strings:
//
//	type Settings struct {
//	    Port policy.Policy `env:"HOST_PORT" yaml:"port"`
//	}
package policy
