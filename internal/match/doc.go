// Package match maps a noisy, human-entered (composer, title) pair onto the
// single best catalog entry, or reports no match.
//
// Matching runs in two passes over a small ordered set of candidate lookup
// keys derived from the input. The first pass tries each candidate as an
// exact catalog key; the second falls back to word-overlap scoring against
// every catalog entry. "No match" is a normal result value, never an error.
//
// The whole package is pure computation over its inputs: no I/O, no shared
// state, safe for concurrent use as long as the catalog is not mutated.
package match
