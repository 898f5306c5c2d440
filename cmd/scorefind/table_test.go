package main

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]string{"Key", "Count"},
		[][]string{
			{"mozart symphony 40", "3"},
			{"short row"},
		},
		[]columnAlignment{alignLeft, alignRight},
	)

	for _, want := range []string{"Key", "Count", "mozart symphony 40", "short row"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	lines := strings.Split(out, "\n")
	width := utf8.RuneCountInString(lines[0])
	for i, line := range lines {
		if got := utf8.RuneCountInString(line); got != width {
			t.Errorf("line %d width %d, want %d (short rows should pad)", i, got, width)
		}
	}
}

func TestRenderTableEmptyHeaders(t *testing.T) {
	if out := renderTable(nil, [][]string{{"x"}}, nil); out != "" {
		t.Errorf("no headers should render nothing, got %q", out)
	}
}
