package db

import (
	"context"
	"database/sql"
	"time"
)

const noteDateLayout = "2006-01-02"

// Opening records one daily note being opened from a phrase.
type Opening struct {
	ID       int64
	At       time.Time
	Phrase   string
	NoteDate time.Time
	Path     string
	Created  bool
}

// RecordOpen stores o. A zero At is stamped with the current time.
func RecordOpen(ctx context.Context, dbh *sql.DB, o Opening) (int64, error) {
	if o.At.IsZero() {
		o.At = time.Now()
	}
	res, err := dbh.ExecContext(ctx, `
		INSERT INTO openings (ts, phrase, note_date, path, created)
		VALUES (?, ?, ?, ?, ?)
	`, o.At.UTC().Format(time.RFC3339Nano), o.Phrase, o.NoteDate.Format(noteDateLayout), o.Path, o.Created)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Recent returns the latest openings, newest first.
func Recent(ctx context.Context, dbh *sql.DB, limit int) ([]Opening, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := dbh.QueryContext(ctx, `
		SELECT id, ts, phrase, note_date, path, created
		FROM openings
		ORDER BY ts DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Opening
	for rows.Next() {
		var o Opening
		var ts, noteDate string
		if err := rows.Scan(&o.ID, &ts, &o.Phrase, &noteDate, &o.Path, &o.Created); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			o.At = t
		}
		if d, err := time.Parse(noteDateLayout, noteDate); err == nil {
			o.NoteDate = d
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// CountsByDate returns how often each note date was opened.
func CountsByDate(ctx context.Context, dbh *sql.DB) (map[string]int, error) {
	rows, err := dbh.QueryContext(ctx, `
		SELECT note_date, COUNT(*)
		FROM openings
		GROUP BY note_date
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var date string
		var n int
		if err := rows.Scan(&date, &n); err != nil {
			return nil, err
		}
		counts[date] = n
	}
	return counts, rows.Err()
}
