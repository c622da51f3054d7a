// Package boolean parses the usual textual spellings of true and false.
//
// Accepted tokens, case-insensitively:
//
//	true:  yes y true t 1 on
//	false: no n false f 0 off
//
// Single characters and the integers 0 and 1 are accepted with the same
// meaning; any other integer is an error rather than an implicit truth value.
package boolean
