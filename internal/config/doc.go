// Package config loads and validates the scorefind TOML configuration.
//
// Loading is a three step pipeline: parse the file over repository defaults,
// normalize (trim, expand ~, fill fallbacks), then validate. Callers get a
// config whose path fields are absolute and whose numeric knobs are in range.
package config
