// Package catalog holds the reference table of canonical IMSLP work entries.
//
// Each entry maps a normalized lookup key ("mozart symphony 40") to a curated
// work record: display title, composer, canonical page URL, and an optional
// clarifying note. A default catalog ships embedded in the binary; users can
// layer their own TOML catalog on top of it.
//
// Entry order is load order and is part of the contract: the matcher's fuzzy
// fallback selects the first sufficiently strong entry, so iteration must be
// stable across runs. Go map iteration is randomized, which is why Catalog
// keeps an explicit key slice alongside the index map.
package catalog
