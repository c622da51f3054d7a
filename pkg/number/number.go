package number

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dmitrymomot/validators/pkg/policy"
)

// maxExact is the largest magnitude below which every integer is a float64.
const maxExact = 1 << 53

// Signed is the set of signed integer types accepted by FromSigned.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer types accepted by FromUnsigned.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Number is a validated finite float64. Values are only obtained from a
// Validator, so every Number satisfies the policies it was checked against.
type Number struct {
	value float64
	text  string
}

// Validator checks numbers against sign and zero policies.
// The zero value accepts every finite number.
type Validator struct {
	Negative policy.Policy `env:"NEGATIVE" yaml:"negative"`
	Zero     policy.Policy `env:"ZERO" yaml:"zero"`
}

// Parse parses s as a decimal numeral, applies the policies and rejects input
// whose float64 value no longer renders to the same canonical numeral.
func (v Validator) Parse(s string) (Number, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Number{}, fmt.Errorf("%w: %q", ErrParse, s)
	}
	if err := v.check(f); err != nil {
		return Number{}, err
	}
	if !Precise(strconv.FormatFloat(f, 'f', -1, 64), s) {
		return Number{}, fmt.Errorf("%w: %q", ErrUnprecise, s)
	}
	return Number{value: f, text: s}, nil
}

// Validate reports whether s would be accepted by Parse.
func (v Validator) Validate(s string) error {
	_, err := v.Parse(s)
	return err
}

// MustParse is like Parse but panics on error. Use it for constants only.
func (v Validator) MustParse(s string) Number {
	n, err := v.Parse(s)
	if err != nil {
		panic(fmt.Sprintf("number: MustParse(%q): %v", s, err))
	}
	return n
}

// FromFloat64 validates a float64 primitive. NaN and infinities are rejected.
func (v Validator) FromFloat64(f float64) (Number, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Number{}, fmt.Errorf("%w: %v", ErrParse, f)
	}
	if err := v.check(f); err != nil {
		return Number{}, err
	}
	return Number{value: f, text: strconv.FormatFloat(f, 'f', -1, 64)}, nil
}

// FromInt64 validates an integer that must fit float64 exactly.
func (v Validator) FromInt64(i int64) (Number, error) {
	if i > maxExact || i < -maxExact {
		return Number{}, fmt.Errorf("%w: %d", ErrUnprecise, i)
	}
	return v.FromFloat64(float64(i))
}

// FromUint64 validates an unsigned integer that must fit float64 exactly.
func (v Validator) FromUint64(u uint64) (Number, error) {
	if u > maxExact {
		return Number{}, fmt.Errorf("%w: %d", ErrUnprecise, u)
	}
	return v.FromFloat64(float64(u))
}

// FromSigned validates any signed integer primitive.
func FromSigned[T Signed](v Validator, i T) (Number, error) {
	return v.FromInt64(int64(i))
}

// FromUnsigned validates any unsigned integer primitive.
func FromUnsigned[T Unsigned](v Validator, u T) (Number, error) {
	return v.FromUint64(uint64(u))
}

// FromFloat32 validates a float32 primitive. Widening to float64 is exact.
func (v Validator) FromFloat32(f float32) (Number, error) {
	return v.FromFloat64(float64(f))
}

func (v Validator) check(f float64) error {
	switch {
	case f > 0:
		if v.Negative == policy.Must {
			return ErrNegativeNotFound
		}
		if v.Zero == policy.Must {
			return ErrZeroNotFound
		}
	case f < 0:
		if v.Negative == policy.Disallow {
			return ErrNegativeNotAllowed
		}
		if v.Zero == policy.Must {
			return ErrZeroNotFound
		}
	default:
		if v.Zero == policy.Disallow {
			return ErrZeroNotAllowed
		}
	}
	return nil
}

// Float64 returns the numeric value.
func (n Number) Float64() float64 { return n.value }

// String returns the numeral the value was parsed from, or the shortest
// decimal rendering for primitive input.
func (n Number) String() string { return n.text }

// Bits returns the IEEE 754 representation with negative zero folded into
// positive zero, suitable as a hash key.
func (n Number) Bits() uint64 {
	if n.value == 0 {
		return 0
	}
	return math.Float64bits(n.value)
}

func (n Number) IsZero() bool     { return n.value == 0 }
func (n Number) IsPositive() bool { return n.value > 0 }
func (n Number) IsNegative() bool { return n.value < 0 }

// IsInteger reports whether the value has no fractional part.
func (n Number) IsInteger() bool { return math.Floor(n.value) == n.value }
