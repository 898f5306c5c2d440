package scorecache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"scorefind/internal/imslp"
)

// Entry is one cached page outcome.
type Entry struct {
	URL       string
	Exists    bool
	Scores    []imslp.Score
	CheckedAt time.Time
}

// Stats summarizes cache contents for the CLI.
type Stats struct {
	Path    string
	Entries int64
	Fresh   int64
	Stale   int64
}

// Store manages fetch-result persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	ttl  time.Duration
	lock *flock.Flock
}

// Open initializes or connects to the cache database at path. Entries older
// than ttl are treated as misses; ttl <= 0 disables expiry. A sibling lock
// file serializes writer processes.
func Open(path string, ttl time.Duration) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire cache lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("cache %s is in use by another scorefind process", path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path, ttl: ttl, lock: lock}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return store, nil
}

// Close releases the database connection and the process lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var err error
	if s.db != nil {
		err = s.db.Close()
	}
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); unlockErr != nil && err == nil {
			err = unlockErr
		}
	}
	return err
}

// Get returns the cached entry for url. The boolean reports a usable hit;
// absent or expired rows are misses.
func (s *Store) Get(ctx context.Context, url string) (*Entry, bool, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT url, page_exists, scores_json, checked_at FROM page_results WHERE url = ?", url)

	var (
		entry      Entry
		exists     int
		scoresJSON string
		checkedAt  string
	)
	err := row.Scan(&entry.URL, &exists, &scoresJSON, &checkedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get cache entry: %w", err)
	}

	entry.Exists = exists != 0
	entry.CheckedAt, err = time.Parse(time.RFC3339Nano, checkedAt)
	if err != nil {
		return nil, false, fmt.Errorf("parse checked_at %q: %w", checkedAt, err)
	}
	if s.ttl > 0 && time.Since(entry.CheckedAt) > s.ttl {
		return nil, false, nil
	}
	if err := json.Unmarshal([]byte(scoresJSON), &entry.Scores); err != nil {
		return nil, false, fmt.Errorf("decode cached scores: %w", err)
	}
	return &entry, true, nil
}

// Put inserts or replaces the entry for its URL. A zero CheckedAt is stamped
// with the current time.
func (s *Store) Put(ctx context.Context, entry Entry) error {
	if entry.URL == "" {
		return errors.New("cache entry requires a url")
	}
	checkedAt := entry.CheckedAt
	if checkedAt.IsZero() {
		checkedAt = time.Now().UTC()
	}
	scoresJSON, err := json.Marshal(entry.Scores)
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO page_results (url, page_exists, scores_json, checked_at)
         VALUES (?, ?, ?, ?)
         ON CONFLICT(url) DO UPDATE SET
             page_exists = excluded.page_exists,
             scores_json = excluded.scores_json,
             checked_at = excluded.checked_at`,
		entry.URL,
		boolToInt(entry.Exists),
		string(scoresJSON),
		// Second precision keeps UTC timestamps lexically ordered for the
		// freshness query.
		checkedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("put cache entry: %w", err)
	}
	return nil
}

// Stats reports entry counts split by freshness.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	stats := Stats{Path: s.path}

	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM page_results").Scan(&stats.Entries); err != nil {
		return Stats{}, fmt.Errorf("count cache entries: %w", err)
	}

	if s.ttl <= 0 {
		stats.Fresh = stats.Entries
		return stats, nil
	}

	cutoff := time.Now().UTC().Add(-s.ttl).Format(time.RFC3339)
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM page_results WHERE checked_at >= ?", cutoff).Scan(&stats.Fresh); err != nil {
		return Stats{}, fmt.Errorf("count fresh entries: %w", err)
	}
	stats.Stale = stats.Entries - stats.Fresh
	return stats, nil
}

// Clear removes every cached entry.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM page_results"); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
