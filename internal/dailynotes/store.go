// Package dailynotes finds and creates the per-day notes inside a vault.
package dailynotes

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultFormat names notes like 2026-10-17.md.
const DefaultFormat = "YYYY-MM-DD"

// ErrExists is returned by Create when the note file is already present.
var ErrExists = errors.New("daily note already exists")

// Note is a daily note on disk.
type Note struct {
	Path string
	Date time.Time
}

// Settings locate daily notes inside a vault.
type Settings struct {
	Vault    string
	Folder   string
	Format   string
	Template string
	Location *time.Location
}

type Store struct {
	settings Settings
	log      *zap.Logger
	now      func() time.Time
}

func NewStore(s Settings, log *zap.Logger) *Store {
	if s.Format == "" {
		s.Format = DefaultFormat
	}
	if s.Location == nil {
		s.Location = time.Local
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{settings: s, log: log, now: time.Now}
}

// Dir is the folder daily notes live in.
func (s *Store) Dir() string {
	return filepath.Join(s.settings.Vault, s.settings.Folder)
}

// DateUID keys a note by calendar day, ignoring time of day.
func DateUID(t time.Time) string {
	return "day-" + t.Format("2006-01-02")
}

// All scans the daily folder and returns every note whose name parses with
// the configured format, keyed by DateUID. A missing folder yields no notes.
func (s *Store) All() (map[string]Note, error) {
	notes := make(map[string]Note)
	layout := Layout(s.settings.Format)
	root := s.Dir()

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && path == root {
				return fs.SkipDir
			}
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(filepath.ToSlash(rel), filepath.Ext(rel))
		date, err := time.ParseInLocation(layout, name, s.settings.Location)
		if err != nil {
			return nil
		}
		notes[DateUID(date)] = Note{Path: path, Date: date}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan daily notes: %w", err)
	}

	s.log.Debug("scanned daily notes", zap.String("dir", root), zap.Int("count", len(notes)))
	return notes, nil
}

// Lookup returns the note for date's calendar day.
func Lookup(date time.Time, notes map[string]Note) (Note, bool) {
	n, ok := notes[DateUID(date)]
	return n, ok
}

// PathFor is where the note for date lives (or would be created).
func (s *Store) PathFor(date time.Time) string {
	name := date.In(s.settings.Location).Format(Layout(s.settings.Format))
	return filepath.Join(s.Dir(), filepath.FromSlash(name)+".md")
}

// Create writes a new note for date from the configured template.
func (s *Store) Create(ctx context.Context, date time.Time) (Note, error) {
	if err := ctx.Err(); err != nil {
		return Note{}, err
	}

	date = date.In(s.settings.Location)
	path := s.PathFor(date)

	tpl, err := s.template()
	if err != nil {
		return Note{}, err
	}
	title := strings.TrimSuffix(filepath.Base(path), ".md")
	body := Render(tpl, date, s.settings.Format, title, s.now().In(s.settings.Location))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Note{}, fmt.Errorf("create daily folder: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return Note{}, fmt.Errorf("%s: %w", path, ErrExists)
		}
		return Note{}, err
	}
	if _, err := f.WriteString(body); err != nil {
		_ = f.Close()
		return Note{}, fmt.Errorf("write daily note: %w", err)
	}
	if err := f.Close(); err != nil {
		return Note{}, err
	}

	s.log.Info("created daily note", zap.String("path", path))
	return Note{Path: path, Date: date}, nil
}

func (s *Store) template() (string, error) {
	if s.settings.Template == "" {
		return "", nil
	}
	path := s.settings.Template
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.settings.Vault, path)
	}
	if filepath.Ext(path) == "" {
		path += ".md"
	}
	b, err := os.ReadFile(path)
	if err != nil {
		// a missing template is not fatal; the note starts empty
		s.log.Warn("daily note template unreadable", zap.String("path", path), zap.Error(err))
		return "", nil
	}
	return string(b), nil
}
