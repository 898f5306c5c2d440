package match

import (
	"strings"

	"scorefind/internal/catalog"
	"scorefind/internal/textutil"
)

// movementMarkers strips the movement references humans append to titles
// ("Symphony No.40, mvt. 1"); catalog entries are indexed by the parent work,
// not by movement. "all movements" is listed first so its words are not
// partially eaten by the shorter markers.
var movementMarkers = strings.NewReplacer(
	"all movements", "",
	"mvt.", "",
	"mvt", "",
	"movement", "",
)

// formWord ties a musical-genre term found in a title to the extra candidate
// keys it contributes, as "{composer} {suffix}". A declarative table instead
// of an if-chain so the vocabulary is data: tests iterate it, and adding a
// genre is a one-line change.
type formWord struct {
	word     string
	suffixes []string
}

// formVocabulary is scanned in order; a title containing several form words
// contributes keys for each of them in this fixed order.
var formVocabulary = []formWord{
	{"sonata", []string{"sonata"}},
	{"symphony", []string{"symphony"}},
	{"concerto", []string{"concerto"}},
	{"trio", []string{"trio"}},
	{"quartet", []string{"quartet"}},
	{"suite", []string{"suite"}},
	{"prelude", []string{"prelude"}},
	{"fugue", []string{"fugue", "well-tempered clavier", "wtc"}},
	{"variation", []string{"variation"}},
	{"brandenburg", []string{"brandenburg"}},
	{"gavotte", []string{"gavottes", "orchestral suite"}},
	{"french suite", []string{"french suite"}},
	{"cello suite", []string{"cello suite"}},
	{"novelletten", []string{"novelletten"}},
	{"four seasons", []string{"winter", "summer"}},
	{"winter", []string{"winter", "summer"}},
	{"summer", []string{"winter", "summer"}},
	{"anna magdalena", []string{"anna magdalena"}},
	{"wtc", []string{"wtc", "well-tempered clavier"}},
}

// CandidateKeys produces the ordered, deduplicated lookup keys tried for one
// query. Order is the contract: the full "composer title" key first, then the
// title alone, then composer + form-word keys in vocabulary order, so a fully
// specified catalog entry always beats a coarser one.
func CandidateKeys(composer, title string) []string {
	composerKey := cleanKey(composer)
	titleKey := cleanKey(title)

	keys := make([]string, 0, 4)
	seen := make(map[string]struct{}, 8)
	add := func(key string) {
		if key == "" {
			return
		}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	add(textutil.FoldSpace(composerKey + " " + titleKey))
	add(titleKey)

	for _, fw := range formVocabulary {
		if !strings.Contains(titleKey, fw.word) {
			continue
		}
		for _, suffix := range fw.suffixes {
			add(textutil.FoldSpace(composerKey + " " + suffix))
		}
	}
	return keys
}

// cleanKey normalizes raw input into catalog key form and removes movement
// markers. Marker removal runs after normalization so it only has to deal
// with lower-case text.
func cleanKey(s string) string {
	return textutil.FoldSpace(movementMarkers.Replace(catalog.NormalizeKey(s)))
}
