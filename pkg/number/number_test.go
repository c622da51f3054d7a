package number_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validators/pkg/number"
	"github.com/dmitrymomot/validators/pkg/policy"
)

func TestValidatorParse(t *testing.T) {
	t.Parallel()

	t.Run("leading zero keeps precision", func(t *testing.T) {
		v := number.Validator{Zero: policy.Allow, Negative: policy.Disallow}
		n, err := v.Parse("065")
		require.NoError(t, err)
		assert.Equal(t, 65.0, n.Float64())
		assert.Equal(t, "065", n.String())
		assert.True(t, n.IsInteger())
	})

	t.Run("negative zero passes disallowed negatives", func(t *testing.T) {
		v := number.Validator{Zero: policy.Allow, Negative: policy.Disallow}
		n, err := v.Parse("-0")
		require.NoError(t, err)
		assert.True(t, n.IsZero())
		assert.False(t, n.IsNegative())
	})

	t.Run("trailing fractional zeros", func(t *testing.T) {
		n, err := number.Validator{}.Parse("1.10")
		require.NoError(t, err)
		assert.Equal(t, 1.1, n.Float64())
		assert.False(t, n.IsInteger())
		assert.True(t, n.IsPositive())
	})

	t.Run("syntax errors", func(t *testing.T) {
		for _, in := range []string{"", "abc", "1.2.3", " 1", "NaN", "inf", "1e400"} {
			_, err := number.Validator{}.Parse(in)
			assert.ErrorIs(t, err, number.ErrParse, in)
		}
	})

	t.Run("precision loss", func(t *testing.T) {
		for _, in := range []string{"12345678901234567890", "0.1000000000000000000001", "1e5"} {
			_, err := number.Validator{}.Parse(in)
			assert.ErrorIs(t, err, number.ErrUnprecise, in)
		}
	})
}

func TestValidatorPolicies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    number.Validator
		in   string
		err  error
	}{
		{"positive with negative must", number.Validator{Negative: policy.Must}, "5", number.ErrNegativeNotFound},
		{"zero with negative must", number.Validator{Negative: policy.Must}, "0", nil},
		{"negative with negative must", number.Validator{Negative: policy.Must}, "-5", nil},
		{"positive with zero must", number.Validator{Zero: policy.Must}, "5", number.ErrZeroNotFound},
		{"negative with zero must", number.Validator{Zero: policy.Must}, "-5", number.ErrZeroNotFound},
		{"negative with negative disallow", number.Validator{Negative: policy.Disallow}, "-0.5", number.ErrNegativeNotAllowed},
		{"zero with zero disallow", number.Validator{Zero: policy.Disallow}, "0.0", number.ErrZeroNotAllowed},
		{"negative zero with zero disallow", number.Validator{Zero: policy.Disallow}, "-0", number.ErrZeroNotAllowed},
		{"zero with zero must", number.Validator{Zero: policy.Must}, "000", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Validate(tt.in)
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestValidatorPrimitives(t *testing.T) {
	t.Parallel()

	v := number.Validator{}

	n, err := number.FromSigned(v, int8(-3))
	require.NoError(t, err)
	assert.Equal(t, -3.0, n.Float64())
	assert.Equal(t, "-3", n.String())

	_, err = v.FromInt64(1 << 53)
	assert.NoError(t, err)
	_, err = v.FromInt64(1<<53 + 1)
	assert.ErrorIs(t, err, number.ErrUnprecise)
	_, err = v.FromInt64(math.MinInt64)
	assert.ErrorIs(t, err, number.ErrUnprecise)
	_, err = number.FromUnsigned(v, uint64(math.MaxUint64))
	assert.ErrorIs(t, err, number.ErrUnprecise)

	n, err = number.FromUnsigned(v, uint16(7))
	require.NoError(t, err)
	assert.True(t, n.IsInteger())

	n, err = v.FromFloat32(0.5)
	require.NoError(t, err)
	assert.Equal(t, "0.5", n.String())

	_, err = v.FromFloat64(math.NaN())
	assert.ErrorIs(t, err, number.ErrParse)
	_, err = v.FromFloat64(math.Inf(-1))
	assert.ErrorIs(t, err, number.ErrParse)

	_, err = number.FromSigned(number.Validator{Negative: policy.Disallow}, -1)
	assert.ErrorIs(t, err, number.ErrNegativeNotAllowed)
}

func TestNumberBits(t *testing.T) {
	t.Parallel()

	v := number.Validator{}
	a := v.MustParse("-0")
	b := v.MustParse("0")
	assert.Equal(t, a.Bits(), b.Bits())
	assert.NotEqual(t, v.MustParse("1").Bits(), b.Bits())

	assert.Panics(t, func() { v.MustParse("x") })
}
