package worklist

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Entry
	}{
		{
			name:  "plain rows",
			input: "Mozart,Symphony No.40\nBach,Cello Suite No.3\n",
			want: []Entry{
				{Composer: "Mozart", Title: "Symphony No.40", Row: 1},
				{Composer: "Bach", Title: "Cello Suite No.3", Row: 2},
			},
		},
		{
			name:  "leading bare comma header",
			input: ",\nMozart,Symphony No.40\n",
			want: []Entry{
				{Composer: "Mozart", Title: "Symphony No.40", Row: 1},
			},
		},
		{
			name:  "blank and short rows skipped but counted",
			input: "Mozart,Symphony No.40\nBach,\nonlyonecolumn\nHaydn,Symphony 103\n",
			want: []Entry{
				{Composer: "Mozart", Title: "Symphony No.40", Row: 1},
				{Composer: "Haydn", Title: "Symphony 103", Row: 4},
			},
		},
		{
			name:  "fields trimmed and quotes handled",
			input: "  Vivaldi , \"Winter, from The Four Seasons\"\n",
			want: []Entry{
				{Composer: "Vivaldi", Title: "Winter, from The Four Seasons", Row: 1},
			},
		},
		{
			name:  "extra columns ignored",
			input: "Brahms,Clarinet Sonata,extra,columns\n",
			want: []Entry{
				{Composer: "Brahms", Title: "Clarinet Sonata", Row: 1},
			},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse()\n got %+v\nwant %+v", got, tt.want)
			}
		})
	}
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "works.csv")
	if err := os.WriteFile(path, []byte("Mozart,Symphony No.40\n"), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	entries, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(entries) != 1 || entries[0].Composer != "Mozart" {
		t.Errorf("entries = %+v", entries)
	}

	if _, err := Read(filepath.Join(dir, "missing.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}
