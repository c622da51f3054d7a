// Package mac parses and renders 48-bit MAC addresses written as six groups of
// two hex digits, such as "00:1a:2b:3c:4d:5e", "00-1A-2B-3C-4D-5E" or
// "001a2b3c4d5e".
//
// A Parser carries the case and separator policies; its zero value accepts
// either case with optional ':' separators. Parsed addresses keep the input
// text and expose the value as a uint64 whose upper 16 bits are zero.
//
//	p := mac.New(hexgroup.CaseUpper, policy.Must, '-')
//	addr, err := p.Parse("00-1A-2B-3C-4D-5E")
//	addr.Uint64()    // 0x001a2b3c4d5e
//	addr.Canonical() // "00-1A-2B-3C-4D-5E"
package mac
