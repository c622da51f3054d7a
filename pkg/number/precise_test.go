package number_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/dmitrymomot/validators/pkg/number"
)

func TestEnclose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		want     string
		negative bool
	}{
		{"0.00", "", false},
		{"001.", "1", false},
		{".0", "", false},
		{"-001.2", "1.2", true},
		{"+42", "42", false},
		{"100", "100", false},
		{"10.50", "10.5", false},
		{"0.5", ".5", false},
		{"-0", "", true},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, neg := number.Enclose(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.negative, neg)
		})
	}
}

func TestPrecise(t *testing.T) {
	t.Parallel()

	assert.True(t, number.Precise("-0", "0"))
	assert.True(t, number.Precise("0.000", "-.0"))
	assert.True(t, number.Precise("1.10", "1.1"))
	assert.True(t, number.Precise("065", "65"))
	assert.False(t, number.Precise("-5", "5"))
	assert.False(t, number.Precise("1.01", "1.1"))
	assert.False(t, number.Precise("12345678901234567890", "12345678901234567000"))
}

func TestPreciseSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.StringMatching(`[+-]?[0-9]{0,6}(\.[0-9]{0,6})?`).Draw(t, "a")
		b := rapid.StringMatching(`[+-]?[0-9]{0,6}(\.[0-9]{0,6})?`).Draw(t, "b")
		if number.Precise(a, b) != number.Precise(b, a) {
			t.Fatalf("Precise(%q, %q) is not symmetric", a, b)
		}
		if !number.Precise(a, a) {
			t.Fatalf("Precise(%q, %q) is not reflexive", a, a)
		}
	})
}
