// Package dates parses the natural language date phrases offered by the
// suggestion prompt.
package dates

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrEmpty is returned for blank input.
var ErrEmpty = errors.New("empty date input")

// Result mirrors what the prompt hands back after a selection: Date is false
// when the phrase could not be understood and Moment must be ignored.
type Result struct {
	Date   bool
	Moment time.Time
}

// Parser resolves phrases relative to Now in Location.
type Parser struct {
	Location *time.Location
	Now      func() time.Time
}

var (
	timeOffsetRe = regexp.MustCompile(`^([+-]?\d+)\s*(m|min|mins|minute|minutes|h|hr|hrs|hour|hours)$`)
	referenceRe  = regexp.MustCompile(`^(next|last|this)\s+([a-z]+)$`)
	inRe         = regexp.MustCompile(`^in\s+([+-]?\d+)\s+([a-z]+)$`)
	agoRe        = regexp.MustCompile(`^([+-]?\d+)\s+([a-z]+)\s+ago$`)
	bareRe       = regexp.MustCompile(`^(\d+)\s+(day|days|week|weeks|month|months|year|years)$`)
	shortDurRe   = regexp.MustCompile(`^(\d+)([smhdwy])$`)
)

// New returns a parser for loc using the wall clock.
func New(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.Local
	}
	return &Parser{Location: loc, Now: time.Now}
}

// ParseDate never fails; unparseable input yields Result{Date: false}.
func (p *Parser) ParseDate(text string) Result {
	t, err := p.Parse(text)
	if err != nil {
		return Result{}
	}
	return Result{Date: true, Moment: t}
}

// Parse attempts to parse various date formats and natural language
func (p *Parser) Parse(input string) (time.Time, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return time.Time{}, ErrEmpty
	}

	loc := p.location()
	now := p.now().In(loc)

	switch input {
	case "today":
		return midnight(now), nil
	case "yesterday":
		return midnight(now.AddDate(0, 0, -1)), nil
	case "tomorrow":
		return midnight(now.AddDate(0, 0, 1)), nil
	case "now":
		return now, nil
	}

	if rest, ok := strings.CutPrefix(input, "time:"); ok {
		return parseTimeOffset(strings.TrimSpace(rest), now)
	}

	if m := referenceRe.FindStringSubmatch(input); m != nil {
		if t, ok := reference(now, m[1], m[2]); ok {
			return t, nil
		}
	}

	if m := inRe.FindStringSubmatch(input); m != nil {
		if t, ok := shift(now, m[1], m[2], 1); ok {
			return t, nil
		}
	}

	if m := agoRe.FindStringSubmatch(input); m != nil {
		if t, ok := shift(now, m[1], m[2], -1); ok {
			return t, nil
		}
	}

	// "2h ago", "3d ago"
	if durationStr, ok := strings.CutSuffix(input, " ago"); ok {
		if duration, err := parseDuration(durationStr); err == nil {
			return now.Add(-duration), nil
		}
	}

	// "3 days" reads as the past
	if m := bareRe.FindStringSubmatch(input); m != nil {
		if t, ok := shift(now, m[1], m[2], -1); ok {
			return t, nil
		}
	}

	formats := []string{
		"2006-01-02",
		"2006/01/02",
		"01/02/2006",
		"Jan 2, 2006",
		"2 Jan 2006",
		"January 2, 2006",
		"2 January 2006",
		"2006-01-02 15:04",
		"2006-01-02 15:04:05",
		time.RFC3339,
		time.RFC3339Nano,
	}
	for _, format := range formats {
		if t, err := time.ParseInLocation(format, input, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", input)
}

func (p *Parser) location() *time.Location {
	if p.Location == nil {
		return time.Local
	}
	return p.Location
}

func (p *Parser) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}

func parseTimeOffset(rest string, now time.Time) (time.Time, error) {
	if rest == "now" {
		return now, nil
	}
	m := timeOffsetRe.FindStringSubmatch(rest)
	if m == nil {
		return time.Time{}, fmt.Errorf("unable to parse time offset: %s", rest)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, err
	}
	unit := time.Minute
	if strings.HasPrefix(m[2], "h") {
		unit = time.Hour
	}
	return now.Add(time.Duration(n) * unit), nil
}

// reference handles "next week", "last month", "this Friday" and friends.
func reference(now time.Time, word, what string) (time.Time, bool) {
	dir := 0
	switch word {
	case "next":
		dir = 1
	case "last":
		dir = -1
	}

	switch what {
	case "day":
		return midnight(now.AddDate(0, 0, dir)), true
	case "week":
		return midnight(now.AddDate(0, 0, 7*dir)), true
	case "month":
		return midnight(now.AddDate(0, dir, 0)), true
	case "year":
		return midnight(now.AddDate(dir, 0, 0)), true
	}

	wd, ok := weekdays[what]
	if !ok {
		return time.Time{}, false
	}
	// weeks start on Sunday
	start := midnight(now).AddDate(0, 0, -int(now.Weekday()))
	return start.AddDate(0, 0, int(wd)+7*dir), true
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// shift moves now by n units in direction dir (+1 future, -1 past).
func shift(now time.Time, num, unit string, dir int) (time.Time, bool) {
	n, err := strconv.Atoi(num)
	if err != nil {
		return time.Time{}, false
	}
	n *= dir

	switch strings.TrimSuffix(unit, "s") {
	case "minute", "min":
		return now.Add(time.Duration(n) * time.Minute), true
	case "hour":
		return now.Add(time.Duration(n) * time.Hour), true
	case "day":
		return now.AddDate(0, 0, n), true
	case "week":
		return now.AddDate(0, 0, 7*n), true
	case "month":
		return now.AddDate(0, n, 0), true
	case "year":
		return now.AddDate(n, 0, 0), true
	}
	return time.Time{}, false
}

// parseDuration parses simple duration strings like "2h", "30m", "1d"
func parseDuration(input string) (time.Duration, error) {
	matches := shortDurRe.FindStringSubmatch(input)
	if matches == nil {
		return 0, fmt.Errorf("invalid duration format: %s", input)
	}

	num, _ := strconv.Atoi(matches[1])

	switch matches[2] {
	case "s":
		return time.Duration(num) * time.Second, nil
	case "m":
		return time.Duration(num) * time.Minute, nil
	case "h":
		return time.Duration(num) * time.Hour, nil
	case "d":
		return time.Duration(num) * 24 * time.Hour, nil
	case "w":
		return time.Duration(num) * 7 * 24 * time.Hour, nil
	case "y":
		return time.Duration(num) * 365 * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("unknown duration unit: %s", matches[2])
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
