// Package logging configures slog for the CLI: a compact console handler for
// humans and a JSON handler for machine consumption, plus shared attribute
// helpers so call sites stay consistent.
package logging
