package match

import (
	"reflect"
	"testing"
)

func TestCandidateKeysOrder(t *testing.T) {
	tests := []struct {
		name     string
		composer string
		title    string
		want     []string
	}{
		{
			name:     "plain title",
			composer: "Mozart",
			title:    "Eine kleine Nachtmusik",
			want: []string{
				"mozart eine kleine nachtmusik",
				"eine kleine nachtmusik",
			},
		},
		{
			name:     "movement markers removed",
			composer: "Mozart",
			title:    "Symphony No.40 in G minor, mvt. 1",
			want: []string{
				"mozart symphony no 40 in g minor 1",
				"symphony no 40 in g minor 1",
				"mozart symphony",
			},
		},
		{
			name:     "all movements marker",
			composer: "Bach",
			title:    "French Suite No. 6, all movements",
			want: []string{
				"bach french suite no 6",
				"french suite no 6",
				"bach suite",
				"bach french suite",
			},
		},
		{
			name:     "multiple form words in vocabulary order",
			composer: "Bach",
			title:    "Gavottes from Orchestral Suite",
			want: []string{
				"bach gavottes from orchestral suite",
				"gavottes from orchestral suite",
				"bach suite",
				"bach gavottes",
				"bach orchestral suite",
			},
		},
		{
			name:     "wtc alias expands",
			composer: "Bach",
			title:    "WTC Book 1",
			want: []string{
				"bach wtc book 1",
				"wtc book 1",
				"bach wtc",
				"bach well-tempered clavier",
			},
		},
		{
			name:     "fugue aliases include wtc forms",
			composer: "Bach",
			title:    "Fugue in C minor",
			want: []string{
				"bach fugue in c minor",
				"fugue in c minor",
				"bach fugue",
				"bach well-tempered clavier",
				"bach wtc",
			},
		},
		{
			name:     "seasons movement names alias to both",
			composer: "Vivaldi",
			title:    "Winter",
			want: []string{
				"vivaldi winter",
				"winter",
				"vivaldi summer",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CandidateKeys(tt.composer, tt.title)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CandidateKeys(%q, %q)\n got %q\nwant %q", tt.composer, tt.title, got, tt.want)
			}
		})
	}
}

func TestCandidateKeysDeduplicate(t *testing.T) {
	// "winter" already equals the title-only key; the alias pass must not
	// re-add it.
	got := CandidateKeys("Vivaldi", "Winter")
	seen := make(map[string]int)
	for _, key := range got {
		seen[key]++
	}
	for key, n := range seen {
		if n > 1 {
			t.Errorf("candidate key %q emitted %d times", key, n)
		}
	}
}
