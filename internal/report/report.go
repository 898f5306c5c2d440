package report

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"scorefind/internal/catalog"
	"scorefind/internal/imslp"
)

//go:embed report.html.tmpl
var reportTemplate string

var tmpl = template.Must(template.New("report").Parse(reportTemplate))

// Row is the per-worklist-row view the template renders.
type Row struct {
	Row      int
	Composer string
	Title    string

	Matched  bool
	MatchKey string
	Work     *catalog.Work

	Verified  bool
	Scores    []imslp.Score
	Downloads []string

	// Err is a human-readable description of a fetch failure; the row is
	// still rendered so the batch result stays complete.
	Err string
}

// Summary holds the headline numbers for a run.
type Summary struct {
	RunID       string
	GeneratedAt time.Time
	Total       int
	Matched     int
	Verified    int
	ScoresFound int
}

// Report is a fully assembled run outcome ready for rendering.
type Report struct {
	Summary Summary
	Rows    []Row
}

// New assembles a report from per-row results, computing the summary. Rows
// are rendered in the order given, which callers keep aligned with the
// input worklist.
func New(rows []Row) Report {
	summary := Summary{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now(),
		Total:       len(rows),
	}
	for _, row := range rows {
		if row.Matched {
			summary.Matched++
		}
		if row.Verified {
			summary.Verified++
		}
		summary.ScoresFound += len(row.Scores)
	}
	return Report{Summary: summary, Rows: rows}
}

// SuccessRate returns the share of rows with a verified work page, in
// percent.
func (s Summary) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Verified) / float64(s.Total) * 100
}

// Render writes the HTML document to w.
func (r Report) Render(w io.Writer) error {
	if err := tmpl.Execute(w, r); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// WriteFile renders the report to path, creating parent directories.
func (r Report) WriteFile(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	if err := r.Render(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close report file: %w", err)
	}
	return nil
}
