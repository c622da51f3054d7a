// Package hexgroup implements the fixed-grammar scanner shared by identifiers
// made of hexadecimal digit groups, such as MAC addresses (6 groups of 2) and
// UUIDs (groups of 8, 4, 4, 4 and 12).
//
// A Format fixes the group widths, the letter case of the accepted hex
// alphabet and the separator policy:
//
//   - policy.Disallow: the input is exactly the concatenated digits.
//   - policy.Must: a separator sits at every group boundary.
//   - policy.Allow: each boundary may or may not carry a separator; boundaries
//     are located incrementally so a missing separator shifts every following
//     group by one position.
//
// Decode writes the digits into a caller-provided byte slice, two nibbles per
// byte, left to right, without allocating. Validate runs the same scan without
// materialising a value. Append renders bytes back into groups honouring the
// configured case and separator.
package hexgroup
