package hexgroup

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/validators/pkg/policy"
)

// Separator describes the delimiter between groups.
type Separator struct {
	Policy policy.Policy
	Char   byte
}

// Format is a fixed grouping of hex digits with case and separator rules.
type Format struct {
	// Groups holds the number of hex digits in each group, left to right.
	Groups    []int
	Case      Case
	Separator Separator
}

// Check reports configuration mistakes: no groups, non-positive widths, an
// unknown case or policy, or a separator that is itself a hex digit.
func (f Format) Check() error {
	if len(f.Groups) == 0 {
		return fmt.Errorf("%w: no groups", ErrBadFormat)
	}
	for _, w := range f.Groups {
		if w <= 0 {
			return fmt.Errorf("%w: group width %d", ErrBadFormat, w)
		}
	}
	if f.Case > CaseLower {
		return fmt.Errorf("%w: unknown case %d", ErrBadFormat, uint8(f.Case))
	}
	if !f.Separator.Policy.Valid() {
		return fmt.Errorf("%w: unknown separator policy %d", ErrBadFormat, uint8(f.Separator.Policy))
	}
	if f.Separator.Policy != policy.Disallow && (f.Separator.Char == 0 || isHexDigit(f.Separator.Char)) {
		return fmt.Errorf("%w: separator %q", ErrBadFormat, f.Separator.Char)
	}
	return nil
}

// Digits returns the total number of hex digits.
func (f Format) Digits() int {
	n := 0
	for _, w := range f.Groups {
		n += w
	}
	return n
}

// Size returns the number of bytes Decode needs.
func (f Format) Size() int {
	return (f.Digits() + 1) / 2
}

// Decode scans s and stores its digits into dst, two per byte, starting with
// the high nibble of dst[0]. dst must hold at least Size bytes.
func (f Format) Decode(dst []byte, s string) error {
	if len(dst) < f.Size() {
		return fmt.Errorf("%w: destination holds %d bytes, need %d", ErrBadFormat, len(dst), f.Size())
	}
	clear(dst[:f.Size()])
	return f.scan(s, dst)
}

// Validate scans s without decoding it.
func (f Format) Validate(s string) error {
	return f.scan(s, nil)
}

func (f Format) scan(s string, dst []byte) error {
	digits := f.Digits()
	seps := len(f.Groups) - 1
	sep := f.Separator.Char
	n := len(s)

	switch f.Separator.Policy {
	case policy.Disallow:
		if n != digits {
			if n == digits+seps && sep != 0 && strings.IndexByte(s, sep) >= 0 {
				return ErrSeparatorDisallow
			}
			return ErrInvalid
		}
		return f.hex(s, dst, 0)

	case policy.Must:
		if n == digits && seps > 0 {
			return ErrSeparatorMust
		}
		if n != digits+seps {
			return ErrInvalid
		}
		pos, k := 0, 0
		for i, w := range f.Groups {
			if i > 0 {
				if s[pos] != sep {
					return ErrInvalid
				}
				pos++
			}
			if err := f.hex(s[pos:pos+w], dst, k); err != nil {
				return err
			}
			pos += w
			k += w
		}
		return nil

	default:
		if n < digits || n > digits+seps {
			return ErrInvalid
		}
		pos, k := 0, 0
		for i, w := range f.Groups {
			if i > 0 && pos < n && s[pos] == sep {
				pos++
			}
			if pos+w > n {
				return ErrInvalid
			}
			if err := f.hex(s[pos:pos+w], dst, k); err != nil {
				return err
			}
			pos += w
			k += w
		}
		if pos != n {
			return ErrInvalid
		}
		return nil
	}
}

// hex decodes chunk as consecutive nibbles starting at nibble index k of dst.
func (f Format) hex(chunk string, dst []byte, k int) error {
	for i := 0; i < len(chunk); i++ {
		v, ok := f.Case.nibble(chunk[i])
		if !ok {
			return ErrInvalid
		}
		if dst != nil {
			j := k + i
			dst[j/2] |= v << (4 * (1 - j%2))
		}
	}
	return nil
}

// Append renders the first Digits nibbles of src as groups and appends them to b.
// Separators are written unless the separator policy is Disallow; CaseAny
// renders lower case.
func (f Format) Append(b []byte, src []byte) []byte {
	alphabet := f.Case.alphabet()
	withSep := f.Separator.Policy != policy.Disallow && f.Separator.Char != 0
	k := 0
	for i, w := range f.Groups {
		if i > 0 && withSep {
			b = append(b, f.Separator.Char)
		}
		for end := k + w; k < end; k++ {
			v := src[k/2] >> (4 * (1 - k%2)) & 0x0f
			b = append(b, alphabet[v])
		}
	}
	return b
}

// Len returns the length of the rendering produced by Append.
func (f Format) Len() int {
	n := f.Digits()
	if f.Separator.Policy != policy.Disallow && f.Separator.Char != 0 {
		n += len(f.Groups) - 1
	}
	return n
}
