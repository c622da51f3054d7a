// Package number validates decimal numerals and numeric primitives against
// sign and zero policies without silently losing precision.
//
// Textual input is parsed as a 64-bit float and then rendered back. The
// rendering is compared with the original text through Precise, which works on
// the canonical magnitude produced by Enclose: leading integer zeros, trailing
// fractional zeros, a dangling decimal point and the sign are ignored. Input
// such as "12345678901234567890" therefore fails with ErrUnprecise instead of
// being rounded.
//
// # Usage
//
//	v := number.Validator{Negative: policy.Disallow, Zero: policy.Allow}
//	n, err := v.Parse("065")
//	if err != nil {
//	    // errors.Is(err, number.ErrNegativeNotAllowed) and friends
//	}
//	n.Float64() // 65
//
// Integer primitives are accepted through FromSigned and FromUnsigned; values
// outside ±2^53 cannot be represented exactly and fail with ErrUnprecise.
//
// Exact zero never triggers the negative Must check, and negative zero ("-0")
// passes a Disallow negative policy because it compares equal to zero.
package number
