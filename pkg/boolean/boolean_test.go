package boolean_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validators/pkg/boolean"
)

func TestParse(t *testing.T) {
	t.Parallel()

	truthy := []string{"yes", "y", "true", "t", "1", "on"}
	falsy := []string{"no", "n", "false", "f", "0", "off"}

	for _, tok := range truthy {
		for _, in := range []string{tok, strings.ToUpper(tok), strings.ToUpper(tok[:1]) + tok[1:]} {
			v, err := boolean.Parse(in)
			require.NoError(t, err, in)
			assert.True(t, v, in)
		}
	}
	for _, tok := range falsy {
		for _, in := range []string{tok, strings.ToUpper(tok), strings.ToUpper(tok[:1]) + tok[1:]} {
			v, err := boolean.Parse(in)
			require.NoError(t, err, in)
			assert.False(t, v, in)
		}
	}

	for _, in := range []string{"2", "yess", "", " yes", "truee", "nope", "oN "} {
		_, err := boolean.Parse(in)
		assert.ErrorIs(t, err, boolean.ErrInvalid, in)
		assert.ErrorIs(t, boolean.Validate(in), boolean.ErrInvalid, in)
	}
}

func TestParseRune(t *testing.T) {
	t.Parallel()

	for _, r := range "tT1yY" {
		v, err := boolean.ParseRune(r)
		require.NoError(t, err)
		assert.True(t, v)
	}
	for _, r := range "fF0nN" {
		v, err := boolean.ParseRune(r)
		require.NoError(t, err)
		assert.False(t, v)
	}
	for _, r := range "2xo " {
		_, err := boolean.ParseRune(r)
		assert.ErrorIs(t, err, boolean.ErrInvalid)
	}
}

func TestFromInt(t *testing.T) {
	t.Parallel()

	v, err := boolean.FromInt(1)
	require.NoError(t, err)
	assert.True(t, v)

	v, err = boolean.FromInt(uint8(0))
	require.NoError(t, err)
	assert.False(t, v)

	for _, in := range []int64{2, -1, 10} {
		_, err := boolean.FromInt(in)
		assert.ErrorIs(t, err, boolean.ErrInvalid)
	}
}
