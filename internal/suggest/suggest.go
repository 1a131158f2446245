// Package suggest turns a partially typed date phrase into a list of
// completions the date parser understands.
package suggest

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	timePrefix    = regexp.MustCompile(`(?i)^time`)
	referenceWord = regexp.MustCompile(`(?i)(next|last|this)`)
	inOffset      = regexp.MustCompile(`(?i)^in ([+-]?\d+)`)
	bareOffset    = regexp.MustCompile(`^([+-]?\d+)`)
)

// category pairs a trigger with the pool of phrases it offers. match returns
// the captured fragment the pool is built from.
type category struct {
	name  string
	match func(query string) (string, bool)
	pool  func(captured string) []string
	// accept reports whether a pool entry survives the typed query.
	accept func(candidate, query string) bool
}

// categories are evaluated in order; the first match wins.
var categories = []category{
	{
		name: "time",
		match: func(q string) (string, bool) {
			return "", timePrefix.MatchString(q)
		},
		pool: func(string) []string {
			return prefixed("time:", "now", "+15 minutes", "+1 hour", "-15 minutes", "-1 hour")
		},
		accept: hasPrefixFold,
	},
	{
		name: "reference",
		match: func(q string) (string, bool) {
			m := referenceWord.FindStringSubmatch(q)
			if m == nil {
				return "", false
			}
			return m[1], true
		},
		pool: func(word string) []string {
			return prefixed(word+" ",
				"week", "month", "year",
				"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday")
		},
		accept: hasPrefixFold,
	},
	{
		name: "offset",
		match: func(q string) (string, bool) {
			if m := inOffset.FindStringSubmatch(q); m != nil {
				return m[1], true
			}
			if m := bareOffset.FindStringSubmatch(q); m != nil {
				return m[1], true
			}
			return "", false
		},
		pool: func(delta string) []string {
			return []string{
				fmt.Sprintf("in %s minutes", delta),
				fmt.Sprintf("in %s hours", delta),
				fmt.Sprintf("in %s days", delta),
				fmt.Sprintf("in %s weeks", delta),
				fmt.Sprintf("in %s months", delta),
				fmt.Sprintf("%s days ago", delta),
				fmt.Sprintf("%s weeks ago", delta),
				fmt.Sprintf("%s months ago", delta),
			}
		},
		// A bare number also completes into the "in N ..." forms.
		accept: func(candidate, query string) bool {
			if hasPrefixFold(candidate, query) {
				return true
			}
			return !inOffset.MatchString(query) && hasPrefixFold(candidate, "in "+query)
		},
	},
	{
		name: "default",
		match: func(string) (string, bool) {
			return "", true
		},
		pool: func(string) []string {
			return []string{"Today", "Yesterday", "Tomorrow"}
		},
		accept: hasPrefixFold,
	},
}

// Suggestions returns the completions for query in display order. The result
// is never empty: when nothing matches, the query itself is the only entry.
func Suggestions(query string) []string {
	c, captured := pick(query)

	var out []string
	for _, candidate := range c.pool(captured) {
		if c.accept(candidate, query) {
			out = append(out, candidate)
		}
	}
	if len(out) == 0 {
		return []string{query}
	}
	return out
}

// Category names the rule that handles query: time, reference, offset or default.
func Category(query string) string {
	c, _ := pick(query)
	return c.name
}

func pick(query string) (category, string) {
	for _, c := range categories {
		if captured, ok := c.match(query); ok {
			return c, captured
		}
	}
	// unreachable: the default category always matches
	return categories[len(categories)-1], ""
}

func prefixed(prefix string, values ...string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = prefix + v
	}
	return out
}

func hasPrefixFold(s, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
}
