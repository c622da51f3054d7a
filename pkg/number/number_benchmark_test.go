package number_test

import (
	"testing"

	"github.com/dmitrymomot/validators/pkg/number"
	"github.com/dmitrymomot/validators/pkg/policy"
)

func BenchmarkValidatorParse(b *testing.B) {
	v := number.Validator{Negative: policy.Disallow}
	b.ReportAllocs()
	for b.Loop() {
		_, _ = v.Parse("1234.5678")
	}
}

func BenchmarkEnclose(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_, _ = number.Enclose("-000123.456000")
	}
}
