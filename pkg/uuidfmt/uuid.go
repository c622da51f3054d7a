package uuidfmt

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrymomot/validators/pkg/hexgroup"
	"github.com/dmitrymomot/validators/pkg/policy"
)

// DefaultDelimiter separates groups when Parser.Delimiter is unset.
const DefaultDelimiter = '-'

var groups = []int{8, 4, 4, 4, 12}

// Parser parses UUIDs under fixed case and separator policies.
type Parser struct {
	Case      hexgroup.Case
	Separator policy.Policy
	// Delimiter is the separator character, DefaultDelimiter when zero.
	Delimiter byte
}

// New returns a Parser and panics if the configuration is unusable.
func New(c hexgroup.Case, separator policy.Policy, delimiter byte) Parser {
	p := Parser{Case: c, Separator: separator, Delimiter: delimiter}
	if err := p.Check(); err != nil {
		panic(fmt.Sprintf("uuidfmt: %v", err))
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

// Parse decodes s into a UUID.
func (p Parser) Parse(s string) (UUID, error) {
	var id uuid.UUID
	if err := p.format().Decode(id[:], s); err != nil {
		return UUID{}, translate(err)
	}
	return UUID{value: id, parser: p}, nil
}

// Validate reports whether s is a valid UUID without decoding it.
func (p Parser) Validate(s string) error {
	return translate(p.format().Validate(s))
}

// MustParse is like Parse but panics on error.
func (p Parser) MustParse(s string) UUID {
	id, err := p.Parse(s)
	if err != nil {
		panic(fmt.Sprintf("uuidfmt: MustParse(%q): %v", s, err))
	}
	return id
}

// FromUUID wraps an existing uuid.UUID without scanning.
func (p Parser) FromUUID(id uuid.UUID) UUID {
	return UUID{value: id, parser: p}
}

// FromUint128 builds a UUID from its high and low 64-bit halves.
func (p Parser) FromUint128(hi, lo uint64) UUID {
	var id uuid.UUID
	binary.BigEndian.PutUint64(id[:8], hi)
	binary.BigEndian.PutUint64(id[8:], lo)
	return UUID{value: id, parser: p}
}

// Format renders id under the parser's policies.
func (p Parser) Format(id uuid.UUID) string {
	f := p.format()
	return string(f.Append(make([]byte, 0, f.Len()), id[:]))
}

// UUID is a parsed identifier bound to the parser policies that produced it.
type UUID struct {
	value  uuid.UUID
	parser Parser
}

// UUID returns the underlying github.com/google/uuid value.
func (u UUID) UUID() uuid.UUID { return u.value }

// Uint128 returns the value as big-endian high and low halves.
func (u UUID) Uint128() (hi, lo uint64) {
	return binary.BigEndian.Uint64(u.value[:8]), binary.BigEndian.Uint64(u.value[8:])
}

// Canonical renders the UUID under the policies of its parser.
func (u UUID) Canonical() string { return u.parser.Format(u.value) }

func (u UUID) String() string { return u.Canonical() }
