package match

import "strings"

// Threshold is the fraction of a catalog key's significant tokens that must
// appear in a candidate key for the fuzzy pass to accept it. The source data
// tolerates 0.6..0.7; 0.7 is the fixed choice here — lower values start
// cross-matching generic entries ("X piano sonata" against every sonata).
const Threshold = 0.7

// minCommonTokens rejects matches carried by a single shared word. One token
// ("piano") is never enough signal.
const minCommonTokens = 2

// stopWords carry no discriminating signal and are excluded from overlap
// scoring on both sides.
var stopWords = map[string]struct{}{
	"no":       {},
	"op":       {},
	"in":       {},
	"major":    {},
	"minor":    {},
	"mvt":      {},
	"movement": {},
}

// isStrongMatch reports whether candidateKey shares enough vocabulary with
// catalogKey: at least minCommonTokens words in common, covering at least
// Threshold of the catalog key's significant tokens.
func isStrongMatch(candidateKey, catalogKey string) bool {
	candidate := significantTokens(candidateKey)
	entry := significantTokens(catalogKey)
	if len(candidate) == 0 || len(entry) == 0 {
		return false
	}

	common := 0
	for token := range entry {
		if _, ok := candidate[token]; ok {
			common++
		}
	}
	if common < minCommonTokens {
		return false
	}
	return float64(common)/float64(len(entry)) >= Threshold
}

// significantTokens splits a key on whitespace into a set with stop words
// removed.
func significantTokens(key string) map[string]struct{} {
	fields := strings.Fields(key)
	tokens := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, stop := stopWords[f]; stop {
			continue
		}
		tokens[f] = struct{}{}
	}
	return tokens
}
