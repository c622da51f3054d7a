package validator

import "github.com/dmitrymomot/validators/pkg/bounded"

// InRange validates that value satisfies the range.
func InRange[T bounded.Number](field string, value T, r bounded.Range[T]) Rule {
	return Rule{
		Check: func() error { return r.Check(value) },
		Error: newError(field, "is out of range", "validation.range", map[string]any{
			"value": value,
		}),
	}
}

// SetSize validates the number of distinct items against the set limits.
func SetSize[T comparable](field string, items []T, s bounded.Set[T]) Rule {
	return Rule{
		Check: func() error {
			_, err := s.Collect(items)
			return err
		},
		Error: newError(field, "has an invalid number of items", "validation.set_size", nil),
	}
}
