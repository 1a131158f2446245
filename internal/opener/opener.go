// Package opener resolves a chosen date phrase to a daily note and opens it,
// creating the note first when it does not exist.
package opener

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ramanasai/dailynote/internal/dailynotes"
	"github.com/ramanasai/dailynote/internal/db"
	"github.com/ramanasai/dailynote/internal/plugins"
	"github.com/ramanasai/dailynote/internal/workspace"
)

// User-visible notices.
const (
	NoticeParserUnavailable = "Please enable Natural Language Dates plugin"
	NoticeUnparseableDate   = "Unable to parse date"
)

var (
	// ErrAborted marks a selection that ended with a notice and changed nothing.
	ErrAborted           = errors.New("aborted")
	ErrParserUnavailable = fmt.Errorf("date parser unavailable: %w", ErrAborted)
	ErrUnparseableDate   = fmt.Errorf("unparseable date: %w", ErrAborted)
)

// PluginHost looks up optional capabilities by id.
type PluginHost interface {
	GetPlugin(id string) (plugins.DateParser, bool)
}

// NoteStore is the daily notes collaborator.
type NoteStore interface {
	All() (map[string]dailynotes.Note, error)
	Create(ctx context.Context, date time.Time) (dailynotes.Note, error)
}

// Notifier shows a notice to the user.
type Notifier interface {
	Notice(msg string)
}

// Result describes what Choose did.
type Result struct {
	Note    dailynotes.Note
	Created bool
}

type Action struct {
	host   PluginHost
	notes  NoteStore
	leaf   workspace.Leaf
	notice Notifier
	log    *zap.Logger

	// History is optional; when set every successful open is recorded.
	History *sql.DB
}

func New(host PluginHost, notes NoteStore, leaf workspace.Leaf, notice Notifier, log *zap.Logger) *Action {
	if log == nil {
		log = zap.NewNop()
	}
	return &Action{host: host, notes: notes, leaf: leaf, notice: notice, log: log}
}

// Choose handles a selected phrase. Both abort paths show a notice and
// return an error wrapping ErrAborted before anything is created or opened.
func (a *Action) Choose(ctx context.Context, phrase string) (Result, error) {
	parser, ok := a.host.GetPlugin(plugins.NaturalLanguageDates)
	if !ok {
		a.notice.Notice(NoticeParserUnavailable)
		a.log.Warn("date parser plugin not enabled", zap.String("plugin", plugins.NaturalLanguageDates))
		return Result{}, ErrParserUnavailable
	}

	parsed := parser.ParseDate(phrase)
	if !parsed.Date {
		a.notice.Notice(NoticeUnparseableDate)
		a.log.Info("unparseable phrase", zap.String("phrase", phrase))
		return Result{}, ErrUnparseableDate
	}
	date := parsed.Moment

	all, err := a.notes.All()
	if err != nil {
		return Result{}, err
	}

	res := Result{}
	if note, found := dailynotes.Lookup(date, all); found {
		res.Note = note
	} else {
		note, err := a.notes.Create(ctx, date)
		if err != nil {
			return Result{}, fmt.Errorf("create daily note: %w", err)
		}
		res.Note, res.Created = note, true
	}

	a.log.Info("opening daily note",
		zap.String("phrase", phrase),
		zap.String("date", date.Format("2006-01-02")),
		zap.String("path", res.Note.Path),
		zap.Bool("created", res.Created))

	if a.History != nil {
		if _, err := db.RecordOpen(ctx, a.History, db.Opening{
			Phrase:   phrase,
			NoteDate: date,
			Path:     res.Note.Path,
			Created:  res.Created,
		}); err != nil {
			a.log.Warn("record history failed", zap.Error(err))
		}
	}

	if err := a.leaf.OpenFile(ctx, res.Note.Path); err != nil {
		return res, err
	}
	return res, nil
}
