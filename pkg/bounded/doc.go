// Package bounded layers numeric ranges and collection cardinality limits on
// top of the format validators.
//
// Range checks a number against optional inclusive or exclusive bounds and a
// NaN policy. Set deduplicates a collection, preserving first-seen order, and
// enforces minimum and maximum cardinality, optionally validating each item.
//
// Conflicting configuration, such as a NaN Must policy combined with a bound
// or a minimum above the maximum, is a programming error and panics at
// construction time.
package bounded
