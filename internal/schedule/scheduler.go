// Package schedule fires the daily note reminder.
package schedule

import (
	"context"
	"strings"
	"time"

	"github.com/ramanasai/dailynote/internal/config"
)

// NextAt computes the next occurrence of reminder time that is on a configured workday and not a holiday.
func NextAt(now time.Time, cfg config.Config) time.Time {
	loc := cfg.Location()
	now = now.In(loc)

	// parse "HH:MM"
	hour, min := 9, 0
	if len(cfg.Reminder.Time) >= 4 {
		if t, err := time.ParseInLocation("15:04", cfg.Reminder.Time, loc); err == nil {
			hour = t.Hour()
			min = t.Minute()
		}
	}
	workdays := map[string]bool{}
	for _, d := range cfg.Reminder.Workdays {
		d = strings.TrimSpace(d)
		if len(d) < 3 {
			continue
		}
		workdays[strings.ToUpper(d[:1])+strings.ToLower(d[1:3])] = true
	}
	isWorkday := func(t time.Time) bool {
		// no workdays configured means every day
		return len(workdays) == 0 || workdays[t.Weekday().String()[:3]]
	}
	holidays := map[string]bool{}
	for _, h := range cfg.Reminder.Holidays {
		holidays[strings.TrimSpace(h)] = true
	}
	isHoliday := func(t time.Time) bool {
		return holidays[t.Format("2006-01-02")]
	}

	// candidate today at hh:mm
	cand := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, loc)
	if !now.Before(cand) {
		cand = cand.AddDate(0, 0, 1)
	}
	// a year of holidays is the most we will skip
	for i := 0; i < 366; i++ {
		if isWorkday(cand) && !isHoliday(cand) {
			return cand
		}
		cand = cand.AddDate(0, 0, 1)
	}
	return cand
}

// RunConfigured runs the reminder callback at the configured schedule until ctx is canceled.
func RunConfigured(ctx context.Context, cfg config.Config, f func()) {
	run(ctx, cfg, time.Now, f)
}

func run(ctx context.Context, cfg config.Config, now func() time.Time, f func()) {
	next := NextAt(now(), cfg)
	t := time.NewTimer(next.Sub(now()))
	for {
		select {
		case <-ctx.Done():
			if !t.Stop() {
				select {
				case <-t.C:
				default:
				}
			}
			return
		case <-t.C:
			f()
			next = NextAt(now(), cfg)
			t.Reset(next.Sub(now()))
		}
	}
}
