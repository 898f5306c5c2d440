package worklist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Entry is one usable CSV row. Composer and Title are trimmed and non-empty;
// Row is the 1-based position in the source file for report traceability.
type Entry struct {
	Composer string
	Title    string
	Row      int
}

// Read loads entries from the CSV file at path.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open worklist: %w", err)
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse worklist %s: %w", path, err)
	}
	return entries, nil
}

// Parse reads entries from r. Rows with fewer than two columns or with a
// blank composer or title are skipped, not errors: spreadsheet exports are
// full of stray separators and half-filled lines. A leading all-empty record
// (the bare "," header some exports emit) is skipped before row numbering
// starts, so data rows keep their spreadsheet line numbers.
func Parse(r io.Reader) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var entries []Entry
	row := 0
	first := true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		if first {
			first = false
			if allEmpty(record) {
				continue
			}
		}
		row++

		if len(record) < 2 {
			continue
		}
		composer := strings.TrimSpace(record[0])
		title := strings.TrimSpace(record[1])
		if composer == "" || title == "" {
			continue
		}
		entries = append(entries, Entry{Composer: composer, Title: title, Row: row})
	}
	return entries, nil
}

func allEmpty(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
