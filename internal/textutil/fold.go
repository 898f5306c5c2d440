package textutil

import "strings"

// FoldSpace collapses every run of whitespace to a single space and trims the
// result. "Symphony  No.40 " becomes "Symphony No.40".
func FoldSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
