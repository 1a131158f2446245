package dailynotes

import "strings"

// momentTokens maps moment.js style tokens to Go layout elements. Longer
// tokens come first so "YYYY" is not read as two "YY".
var momentTokens = strings.NewReplacer(
	"YYYY", "2006",
	"YY", "06",
	"MMMM", "January",
	"MMM", "Jan",
	"MM", "01",
	"M", "1",
	"DD", "02",
	"D", "2",
	"dddd", "Monday",
	"ddd", "Mon",
	"HH", "15",
	"mm", "04",
	"ss", "05",
	"A", "PM",
)

// Layout converts a moment style format such as "YYYY-MM-DD" into a Go
// time layout.
func Layout(format string) string {
	if format == "" {
		format = DefaultFormat
	}
	return momentTokens.Replace(format)
}
