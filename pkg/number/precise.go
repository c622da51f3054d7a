package number

import "strings"

// Enclose returns the canonical magnitude of a decimal numeral and whether it
// carries a leading minus sign. Leading zeros of the integer part and trailing
// zeros of the fractional part are removed, as is a dangling decimal point.
// A zero magnitude is returned as the empty string.
//
//	Enclose("0.00")   // "", false
//	Enclose("001.")   // "1", false
//	Enclose("-001.2") // "1.2", true
func Enclose(s string) (string, bool) {
	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	i := 0
	for i < len(s) && s[i] == '0' {
		i++
	}
	s = s[i:]

	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		end := len(s)
		for end > dot+1 && s[end-1] == '0' {
			end--
		}
		if end == dot+1 {
			end = dot
		}
		s = s[:end]
	}

	return s, negative
}

// Precise reports whether two numerals denote the same value textually.
// Signs are ignored when both magnitudes are zero, so "-0" and "0" are equal.
func Precise(a, b string) bool {
	ma, na := Enclose(a)
	mb, nb := Enclose(b)
	if ma != mb {
		return false
	}
	if ma == "" {
		return true
	}
	return na == nb
}
