package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"scorefind/internal/textutil"
)

// diacriticStripper decomposes characters and drops combining marks, so
// "Dvořák" and "Dvorak" normalize to the same key.
var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// abbrevReplacer flattens the punctuation variants humans type for catalog
// numbering. "No." and "Op." collapse to their bare forms and commas vanish,
// so "Op. 76, No. 3" and "No.40" tokenize the same as "op 76 no 3" and
// "no 40". The trailing space splits run-on forms like "no.40" into two
// tokens; FoldSpace cleans up any doubling.
var abbrevReplacer = strings.NewReplacer(
	"no.", "no ",
	"op.", "op ",
	",", " ",
)

// NormalizeKey converts free text into the catalog's lookup-key form:
// lower-case, diacritics folded, numbering abbreviations flattened, and
// whitespace collapsed. Catalog keys and matcher candidate keys must both
// pass through here or exact lookups spuriously fail.
func NormalizeKey(s string) string {
	s = strings.ToLower(s)
	if folded, _, err := transform.String(diacriticStripper, s); err == nil {
		s = folded
	}
	s = abbrevReplacer.Replace(s)
	return textutil.FoldSpace(s)
}
