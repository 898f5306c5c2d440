// Package worklist reads the two-column (composer, work title) CSV that
// drives a scorefind run.
package worklist
