package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed default_catalog.toml
var defaultCatalogTOML []byte

// fileEntry is the TOML wire form of one catalog entry.
type fileEntry struct {
	Key      string `toml:"key"`
	Title    string `toml:"title"`
	Composer string `toml:"composer"`
	URL      string `toml:"url"`
	Note     string `toml:"note"`
}

type catalogFile struct {
	Works []fileEntry `toml:"work"`
}

// Default returns the embedded reference catalog.
func Default() *Catalog {
	cat, err := parse(defaultCatalogTOML)
	if err != nil {
		// The embedded catalog is validated by tests; a parse failure here
		// is a build defect, not a runtime condition.
		panic(fmt.Sprintf("embedded catalog invalid: %v", err))
	}
	return cat
}

// Load returns the default catalog with the user catalog at path, if any,
// merged over it. An empty path means default only; a missing file at an
// explicit path is an error.
func Load(path string) (*Catalog, error) {
	cat := Default()
	path = strings.TrimSpace(path)
	if path == "" {
		return cat, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	user, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	for _, e := range user.Entries() {
		cat.Add(e.Key, e.Work)
	}
	return cat, nil
}

func parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if len(file.Works) == 0 {
		return nil, errors.New("catalog has no [[work]] entries")
	}

	cat := New()
	for i, w := range file.Works {
		if err := validateEntry(w); err != nil {
			return nil, fmt.Errorf("work %d (key %q): %w", i+1, w.Key, err)
		}
		cat.Add(w.Key, Work{
			Title:    strings.TrimSpace(w.Title),
			Composer: strings.TrimSpace(w.Composer),
			URL:      strings.TrimSpace(w.URL),
			Note:     strings.TrimSpace(w.Note),
		})
	}
	return cat, nil
}

func validateEntry(w fileEntry) error {
	if strings.TrimSpace(w.Key) == "" {
		return errors.New("key must be set")
	}
	if strings.TrimSpace(w.Title) == "" {
		return errors.New("title must be set")
	}
	if strings.TrimSpace(w.Composer) == "" {
		return errors.New("composer must be set")
	}
	parsed, err := url.Parse(strings.TrimSpace(w.URL))
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("url %q is not a valid http(s) URL", w.URL)
	}
	return nil
}
