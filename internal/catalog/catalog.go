package catalog

// Work is a canonical catalog entry. Constructed once at load time and
// treated as immutable afterwards.
type Work struct {
	Title    string // display form, e.g. "Symphony No.40, K.550"
	Composer string // display form, e.g. "Mozart, Wolfgang Amadeus"
	URL      string // canonical IMSLP page
	Note     string // optional clarification, e.g. which aria the key refers to
}

// Entry pairs a normalized lookup key with its work record.
type Entry struct {
	Key  string
	Work Work
}

// Catalog is an ordered reference table keyed by normalized lookup keys.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

// Add inserts or replaces an entry. The key is normalized before use.
// Replacing an existing key keeps its original position so user overlays
// don't reshuffle the fuzzy-match scan order.
func (c *Catalog) Add(key string, work Work) {
	key = NormalizeKey(key)
	if key == "" {
		return
	}
	if i, ok := c.index[key]; ok {
		c.entries[i].Work = work
		return
	}
	c.index[key] = len(c.entries)
	c.entries = append(c.entries, Entry{Key: key, Work: work})
}

// Lookup returns the work for an already-normalized key.
func (c *Catalog) Lookup(key string) (Work, bool) {
	i, ok := c.index[key]
	if !ok {
		return Work{}, false
	}
	return c.entries[i].Work, true
}

// Entries returns all entries in load order. Callers must not mutate the
// returned slice.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}
