package suggest

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestSuggestions(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "empty query",
			query: "",
			want:  []string{"Today", "Yesterday", "Tomorrow"},
		},
		{
			name:  "time prefix",
			query: "time:",
			want:  []string{"time:now", "time:+15 minutes", "time:+1 hour", "time:-15 minutes", "time:-1 hour"},
		},
		{
			name:  "time prefix narrowed",
			query: "time:+",
			want:  []string{"time:+15 minutes", "time:+1 hour"},
		},
		{
			name:  "next",
			query: "next ",
			want: []string{
				"next week", "next month", "next year",
				"next Sunday", "next Monday", "next Tuesday", "next Wednesday",
				"next Thursday", "next Friday", "next Saturday",
			},
		},
		{
			name:  "reference keeps typed case",
			query: "LAST m",
			want:  []string{"LAST month", "LAST Monday"},
		},
		{
			name:  "bare number",
			query: "3",
			want: []string{
				"in 3 minutes", "in 3 hours", "in 3 days", "in 3 weeks", "in 3 months",
				"3 days ago", "3 weeks ago", "3 months ago",
			},
		},
		{
			name:  "in number",
			query: "in 12 w",
			want:  []string{"in 12 weeks"},
		},
		{
			name:  "signed number ago",
			query: "-2 d",
			want:  []string{"in -2 days", "-2 days ago"},
		},
		{
			name:  "default narrowed",
			query: "to",
			want:  []string{"Today", "Tomorrow"},
		},
		{
			name:  "default case insensitive",
			query: "YEST",
			want:  []string{"Yesterday"},
		},
		{
			name:  "no match falls back to query",
			query: "zzz",
			want:  []string{"zzz"},
		},
		{
			name:  "time category hides everything else",
			query: "timeout",
			want:  []string{"timeout"},
		},
		{
			name:  "reference anywhere wins over offset",
			query: "3 next",
			want:  []string{"3 next"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggestions(tt.query)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Suggestions(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestCategory(t *testing.T) {
	tests := map[string]string{
		"":          "default",
		"tod":       "default",
		"Time":      "time",
		"time next": "time",
		"this":      "reference",
		"blast":     "reference",
		"in 4":      "offset",
		"42":        "offset",
		"+1":        "offset",
		"in -7 d":   "offset",
		"in x":      "default",
	}

	for query, want := range tests {
		assert.Equal(t, want, Category(query), "query %q", query)
	}
}

func TestSuggestionsProperties(t *testing.T) {
	queries := []string{
		"", "t", "time", "time:n", "TIME:", "next", "Next f", "this y", "blast",
		"1", "in 1", "in +5 h", "-3", "99 m", "yesterday", "q", "  ", "in x",
	}

	for _, q := range queries {
		got := Suggestions(q)
		assert.NotEmpty(t, got, "query %q", q)
		assert.Equal(t, got, Suggestions(q), "repeat call for %q", q)

		switch Category(q) {
		case "time":
			for _, s := range got {
				if s != q {
					assert.True(t, strings.HasPrefix(s, "time:"), "%q from %q", s, q)
				}
			}
		case "reference":
			word := referenceWord.FindStringSubmatch(q)[1]
			for _, s := range got {
				assert.True(t, strings.HasPrefix(s, word) || s == q, "%q from %q", s, q)
			}
		case "offset":
			_, delta := pick(q)
			for _, s := range got {
				assert.Contains(t, s, delta, "query %q", q)
			}
		}
	}
}

func TestFallbackIsExactQuery(t *testing.T) {
	for _, q := range []string{"zzz", "Next Monday please", "time", "2026-10-17"} {
		got := Suggestions(q)
		if len(got) == 1 && got[0] != q {
			assert.True(t, hasPrefixFold(got[0], q) || hasPrefixFold(got[0], "in "+q), "got %q for %q", got[0], q)
		}
	}
	assert.Equal(t, []string{"2026-10-17"}, Suggestions("2026-10-17"))
}
