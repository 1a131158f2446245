package dailynotes

import (
	"regexp"
	"strings"
	"time"
)

var dateToken = regexp.MustCompile(`\{\{\s*(date|time)\s*(?::(.*?))?\s*\}\}`)

// Render fills a daily note template for date. Supported placeholders are
// {{date}}, {{date:FORMAT}}, {{time}}, {{time:FORMAT}}, {{title}},
// {{yesterday}} and {{tomorrow}}.
func Render(tpl string, date time.Time, format, title string, now time.Time) string {
	layout := Layout(format)

	out := dateToken.ReplaceAllStringFunc(tpl, func(tok string) string {
		m := dateToken.FindStringSubmatch(tok)
		kind, custom := m[1], strings.TrimSpace(m[2])
		switch {
		case custom != "" && kind == "date":
			return date.Format(Layout(custom))
		case custom != "":
			return now.Format(Layout(custom))
		case kind == "time":
			return now.Format("15:04")
		default:
			return date.Format(layout)
		}
	})

	return strings.NewReplacer(
		"{{title}}", title,
		"{{yesterday}}", date.AddDate(0, 0, -1).Format(layout),
		"{{tomorrow}}", date.AddDate(0, 0, 1).Format(layout),
	).Replace(out)
}
