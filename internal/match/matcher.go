package match

import "scorefind/internal/catalog"

// Query is one row of input as typed by a human: inconsistent casing and
// punctuation, possibly naming a movement rather than the whole work.
type Query struct {
	Composer string
	Title    string
	Row      int // 1-based source position, for report traceability
}

// Result is the outcome of matching one query. Work is nil when nothing in
// the catalog was close enough; that is an expected outcome, not a failure.
type Result struct {
	Query Query
	Key   string // the candidate key that hit, empty when unmatched
	Work  *catalog.Work
}

// Matched reports whether a catalog entry was selected.
func (r Result) Matched() bool {
	return r.Work != nil
}

// Match resolves composer and title against the catalog. Deterministic:
// identical inputs and catalog always produce the identical result.
//
// Pass 1 tries every candidate key as an exact catalog key, in candidate
// order. Pass 2 re-walks the candidates and scans catalog entries in load
// order, accepting the first entry isStrongMatch approves. The first
// sufficiently strong entry wins rather than a globally best one; with a
// curated catalog this size the distinction has not mattered in practice,
// and it keeps the scan order-stable and explainable.
func Match(composer, title string, cat *catalog.Catalog) Result {
	return MatchQuery(Query{Composer: composer, Title: title}, cat)
}

// MatchQuery is Match with row traceability carried through.
func MatchQuery(q Query, cat *catalog.Catalog) Result {
	keys := CandidateKeys(q.Composer, q.Title)

	for _, key := range keys {
		if work, ok := cat.Lookup(key); ok {
			return Result{Query: q, Key: key, Work: &work}
		}
	}

	for _, key := range keys {
		for _, entry := range cat.Entries() {
			if isStrongMatch(key, entry.Key) {
				work := entry.Work
				return Result{Query: q, Key: key, Work: &work}
			}
		}
	}

	return Result{Query: q}
}
