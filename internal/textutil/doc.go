// Package textutil provides small text helpers shared across the repository.
//
// The primary use cases are:
//   - Folding runs of whitespace when building lookup keys
//   - Sanitizing filenames and path segments for downloaded scores
package textutil
