package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validators/pkg/policy"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want policy.Policy
	}{
		{"", policy.Allow},
		{"allow", policy.Allow},
		{"Must", policy.Must},
		{" DISALLOW ", policy.Disallow},
		{"not_allow", policy.Disallow},
		{"notallow", policy.Disallow},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := policy.Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := policy.Parse("sometimes")
	assert.ErrorIs(t, err, policy.ErrUnknownPolicy)
}

func TestPolicyCheck(t *testing.T) {
	t.Parallel()

	assert.True(t, policy.Allow.Check(true))
	assert.True(t, policy.Allow.Check(false))
	assert.True(t, policy.Must.Check(true))
	assert.False(t, policy.Must.Check(false))
	assert.False(t, policy.Disallow.Check(true))
	assert.True(t, policy.Disallow.Check(false))
}

func TestPolicyText(t *testing.T) {
	t.Parallel()

	for _, p := range []policy.Policy{policy.Allow, policy.Must, policy.Disallow} {
		text, err := p.MarshalText()
		require.NoError(t, err)

		var back policy.Policy
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, p, back)
	}

	_, err := policy.Policy(9).MarshalText()
	assert.ErrorIs(t, err, policy.ErrUnknownPolicy)
	assert.Equal(t, "policy(9)", policy.Policy(9).String())

	var p policy.Policy
	assert.ErrorIs(t, p.UnmarshalText([]byte("x")), policy.ErrUnknownPolicy)
}
