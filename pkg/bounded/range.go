package bounded

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/dmitrymomot/validators/pkg/policy"
)

// Number is the set of types a Range can bound.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Range is an immutable set of bounds for values of type T.
type Range[T Number] struct {
	min, max         T
	hasMin, hasMax   bool
	minExcl, maxExcl bool
	nan              policy.Policy
}

// RangeOption configures a Range.
type RangeOption[T Number] func(*Range[T])

// Min sets an inclusive lower bound.
func Min[T Number](v T) RangeOption[T] {
	return func(r *Range[T]) { r.min, r.hasMin, r.minExcl = v, true, false }
}

// Max sets an inclusive upper bound.
func Max[T Number](v T) RangeOption[T] {
	return func(r *Range[T]) { r.max, r.hasMax, r.maxExcl = v, true, false }
}

// GreaterThan sets an exclusive lower bound.
func GreaterThan[T Number](v T) RangeOption[T] {
	return func(r *Range[T]) { r.min, r.hasMin, r.minExcl = v, true, true }
}

// LessThan sets an exclusive upper bound.
func LessThan[T Number](v T) RangeOption[T] {
	return func(r *Range[T]) { r.max, r.hasMax, r.maxExcl = v, true, true }
}

// NaN sets the policy for NaN values. Only meaningful for float types.
func NaN[T Number](p policy.Policy) RangeOption[T] {
	return func(r *Range[T]) { r.nan = p }
}

// NewRange builds a Range and panics on conflicting options.
func NewRange[T Number](opts ...RangeOption[T]) Range[T] {
	var r Range[T]
	for _, opt := range opts {
		opt(&r)
	}
	if err := r.check(); err != nil {
		panic(fmt.Sprintf("bounded: %v", err))
	}
	return r
}

func (r Range[T]) check() error {
	if !r.nan.Valid() {
		return fmt.Errorf("unknown NaN policy %d", uint8(r.nan))
	}
	if r.nan == policy.Must {
		if !isFloat[T]() {
			return fmt.Errorf("NaN required for integer type %T", r.min)
		}
		if r.hasMin || r.hasMax {
			return errors.New("NaN required together with a bound")
		}
	}
	if isNaN(r.min) || isNaN(r.max) {
		return errors.New("NaN bound")
	}
	if r.hasMin && r.hasMax {
		if r.min > r.max || (r.min == r.max && (r.minExcl || r.maxExcl)) {
			return fmt.Errorf("empty range %v..%v", r.min, r.max)
		}
	}
	return nil
}

// Check reports whether v lies within the range.
func (r Range[T]) Check(v T) error {
	if isNaN(v) {
		if r.nan == policy.Disallow {
			return ErrForbidden
		}
		return nil
	}
	if r.nan == policy.Must {
		return ErrForbidden
	}
	if r.hasMin && (v < r.min || (r.minExcl && v == r.min)) {
		return fmt.Errorf("%w: %v", ErrTooSmall, v)
	}
	if r.hasMax && (v > r.max || (r.maxExcl && v == r.max)) {
		return fmt.Errorf("%w: %v", ErrTooLarge, v)
	}
	return nil
}

// Parse converts a decimal numeral into T and checks it. Integers outside the
// range of T fail with ErrTooSmall or ErrTooLarge.
func (r Range[T]) Parse(s string) (T, error) {
	v, err := parse[T](s)
	if err != nil {
		return v, err
	}
	return v, r.Check(v)
}

func parse[T Number](s string) (T, error) {
	switch {
	case isFloat[T]():
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalid, s)
		}
		return T(f), nil
	case isSigned[T]():
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, rangeErr(err, s, len(s) > 0 && s[0] == '-')
		}
		if v := T(i); int64(v) == i {
			return v, nil
		}
		return 0, rangeErr(strconv.ErrRange, s, i < 0)
	default:
		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, rangeErr(err, s, len(s) > 0 && s[0] == '-')
		}
		if v := T(u); uint64(v) == u {
			return v, nil
		}
		return 0, rangeErr(strconv.ErrRange, s, false)
	}
}

func rangeErr(err error, s string, negative bool) error {
	switch {
	case errors.Is(err, strconv.ErrRange) && negative:
		return fmt.Errorf("%w: %q", ErrTooSmall, s)
	case errors.Is(err, strconv.ErrRange):
		return fmt.Errorf("%w: %q", ErrTooLarge, s)
	case negative && isDigits(s[1:]):
		// ParseUint rejects any sign; a well-formed negative is below zero.
		return fmt.Errorf("%w: %q", ErrTooSmall, s)
	}
	return fmt.Errorf("%w: %q", ErrInvalid, s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isFloat[T Number]() bool {
	one, two := T(1), T(2)
	return one/two != 0
}

func isSigned[T Number]() bool {
	var zero T
	return zero-1 < zero
}

func isNaN[T Number](v T) bool {
	return math.IsNaN(float64(v))
}
