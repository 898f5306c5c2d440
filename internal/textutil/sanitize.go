package textutil

import "strings"

// fileNameReplacer replaces filesystem-unsafe characters with safe alternatives.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeFileName makes a score link label safe to use as a filename.
// Slashes, backslashes, colons, and asterisks become dashes; other unsafe
// characters are removed; whitespace runs collapse to single spaces.
// Returns "score" when nothing usable remains, so callers always get a
// non-empty name for a download target.
func SanitizeFileName(name string) string {
	name = FoldSpace(fileNameReplacer.Replace(name))
	if name == "" {
		return "score"
	}
	return name
}
