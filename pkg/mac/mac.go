package mac

import (
	"encoding/binary"
	"fmt"
	"net"

	"github.com/dmitrymomot/validators/pkg/hexgroup"
	"github.com/dmitrymomot/validators/pkg/policy"
)

// DefaultDelimiter separates groups when Parser.Delimiter is unset.
const DefaultDelimiter = ':'

const (
	size = 6
	mask = 1<<48 - 1
)

var groups = []int{2, 2, 2, 2, 2, 2}

// Parser parses MAC addresses under fixed case and separator policies.
type Parser struct {
	Case      hexgroup.Case
	Separator policy.Policy
	// Delimiter is the separator character, DefaultDelimiter when zero.
	Delimiter byte
}

// New returns a Parser and panics if the configuration is unusable, for
// example a delimiter that is a hex digit.
func New(c hexgroup.Case, separator policy.Policy, delimiter byte) Parser {
	p := Parser{Case: c, Separator: separator, Delimiter: delimiter}
	if err := p.Check(); err != nil {
		panic(fmt.Sprintf("mac: %v", err))
	}
	return p
}

// Check reports whether the parser configuration is usable.
func (p Parser) Check() error {
	return p.format().Check()
}

func (p Parser) format() hexgroup.Format {
	d := p.Delimiter
	if d == 0 {
		d = DefaultDelimiter
	}
	return hexgroup.Format{
		Groups:    groups,
		Case:      p.Case,
		Separator: hexgroup.Separator{Policy: p.Separator, Char: d},
	}
}

// Parse decodes s into an Address.
func (p Parser) Parse(s string) (Address, error) {
	var buf [8]byte
	if err := p.format().Decode(buf[8-size:], s); err != nil {
		return Address{}, translate(err)
	}
	return Address{value: binary.BigEndian.Uint64(buf[:]), text: s, parser: p}, nil
}

// Validate reports whether s is a valid address without decoding it.
func (p Parser) Validate(s string) error {
	return translate(p.format().Validate(s))
}

// MustParse is like Parse but panics on error.
func (p Parser) MustParse(s string) Address {
	a, err := p.Parse(s)
	if err != nil {
		panic(fmt.Sprintf("mac: MustParse(%q): %v", s, err))
	}
	return a
}

// FromUint64 builds an Address from an already validated value without
// scanning. Bits above 48 are dropped.
func (p Parser) FromUint64(v uint64) Address {
	v &= mask
	return Address{value: v, text: p.Format(v), parser: p}
}

// Format renders the low 48 bits of v under the parser's policies.
func (p Parser) Format(v uint64) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v&mask)
	f := p.format()
	return string(f.Append(make([]byte, 0, f.Len()), buf[8-size:]))
}

// Address is a parsed MAC address.
type Address struct {
	value  uint64
	text   string
	parser Parser
}

// Uint64 returns the 48-bit address value.
func (a Address) Uint64() uint64 { return a.value }

// String returns the text the address was parsed from.
func (a Address) String() string { return a.text }

// Canonical renders the address under the policies of the parser that produced it.
func (a Address) Canonical() string { return a.parser.Format(a.value) }

// HardwareAddr converts the address to a net.HardwareAddr.
func (a Address) HardwareAddr() net.HardwareAddr {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], a.value)
	return net.HardwareAddr(buf[8-size:])
}
