// Package uuidfmt parses UUIDs written as 8-4-4-4-12 hex digit groups under
// configurable case and separator policies, for example
// "550e8400-e29b-41d4-a716-446655440000", "550E8400E29B41D4A716446655440000"
// or a mix of both when separators are optional.
//
// Parsed values are github.com/google/uuid UUIDs, so they interoperate with the
// rest of the ecosystem; no version or variant bits are enforced.
//
//	p := uuidfmt.New(hexgroup.CaseLower, policy.Allow, 0)
//	id, err := p.Parse("550e8400e29b41d4a716446655440000")
//	id.UUID()      // uuid.UUID
//	id.Canonical() // "550e8400-e29b-41d4-a716-446655440000"
package uuidfmt
