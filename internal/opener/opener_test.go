package opener

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/dailynote/internal/dailynotes"
	"github.com/ramanasai/dailynote/internal/dates"
	"github.com/ramanasai/dailynote/internal/db"
	"github.com/ramanasai/dailynote/internal/plugins"
)

type recordingNotifier struct{ notices []string }

func (n *recordingNotifier) Notice(msg string) { n.notices = append(n.notices, msg) }

type recordingLeaf struct {
	opened []string
	err    error
}

func (l *recordingLeaf) OpenFile(_ context.Context, path string) error {
	l.opened = append(l.opened, path)
	return l.err
}

type fakeStore struct {
	notes   map[string]dailynotes.Note
	created []time.Time
	err     error
}

func (s *fakeStore) All() (map[string]dailynotes.Note, error) { return s.notes, s.err }

func (s *fakeStore) Create(_ context.Context, date time.Time) (dailynotes.Note, error) {
	s.created = append(s.created, date)
	n := dailynotes.Note{Path: "/vault/" + date.Format("2006-01-02") + ".md", Date: date}
	s.notes[dailynotes.DateUID(date)] = n
	return n, nil
}

var now = time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)

func registry() *plugins.Registry {
	r := plugins.NewRegistry()
	r.Register(plugins.NaturalLanguageDates, &dates.Parser{Location: time.UTC, Now: func() time.Time { return now }})
	return r
}

func TestChooseMissingPlugin(t *testing.T) {
	store := &fakeStore{notes: map[string]dailynotes.Note{}}
	leaf := &recordingLeaf{}
	notice := &recordingNotifier{}

	a := New(plugins.NewRegistry(), store, leaf, notice, nil)
	_, err := a.Choose(context.Background(), "Today")

	assert.ErrorIs(t, err, ErrParserUnavailable)
	assert.ErrorIs(t, err, ErrAborted)
	assert.Equal(t, []string{"Please enable Natural Language Dates plugin"}, notice.notices)
	assert.Empty(t, store.created)
	assert.Empty(t, leaf.opened)
}

func TestChooseUnparseable(t *testing.T) {
	store := &fakeStore{notes: map[string]dailynotes.Note{}}
	leaf := &recordingLeaf{}
	notice := &recordingNotifier{}

	a := New(registry(), store, leaf, notice, nil)
	_, err := a.Choose(context.Background(), "zzz")

	assert.ErrorIs(t, err, ErrUnparseableDate)
	assert.ErrorIs(t, err, ErrAborted)
	assert.Equal(t, []string{"Unable to parse date"}, notice.notices)
	assert.Empty(t, store.created)
	assert.Empty(t, leaf.opened)
}

func TestChooseOpensExisting(t *testing.T) {
	existing := dailynotes.Note{Path: "/vault/2026-10-16.md", Date: time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)}
	store := &fakeStore{notes: map[string]dailynotes.Note{dailynotes.DateUID(existing.Date): existing}}
	leaf := &recordingLeaf{}
	notice := &recordingNotifier{}

	a := New(registry(), store, leaf, notice, nil)
	res, err := a.Choose(context.Background(), "Yesterday")

	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.Equal(t, existing, res.Note)
	assert.Empty(t, store.created)
	assert.Equal(t, []string{"/vault/2026-10-16.md"}, leaf.opened)
	assert.Empty(t, notice.notices)
}

func TestChooseCreatesMissing(t *testing.T) {
	store := &fakeStore{notes: map[string]dailynotes.Note{}}
	leaf := &recordingLeaf{}

	a := New(registry(), store, leaf, &recordingNotifier{}, nil)
	res, err := a.Choose(context.Background(), "in 3 days")

	require.NoError(t, err)
	assert.True(t, res.Created)
	require.Len(t, store.created, 1)
	assert.Equal(t, "2026-10-20", store.created[0].Format("2006-01-02"))
	assert.Equal(t, []string{"/vault/2026-10-20.md"}, leaf.opened)

	// the second selection finds the note created by the first
	res, err = a.Choose(context.Background(), "in 3 days")
	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.Len(t, store.created, 1)
}

func TestChooseStoreError(t *testing.T) {
	boom := errors.New("disk on fire")
	store := &fakeStore{err: boom}
	leaf := &recordingLeaf{}

	a := New(registry(), store, leaf, &recordingNotifier{}, nil)
	_, err := a.Choose(context.Background(), "Today")

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrAborted)
	assert.Empty(t, leaf.opened)
}

func TestChooseRecordsHistory(t *testing.T) {
	dbh, err := db.OpenAt(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbh.Close() })

	store := &fakeStore{notes: map[string]dailynotes.Note{}}
	a := New(registry(), store, &recordingLeaf{}, &recordingNotifier{}, nil)
	a.History = dbh

	_, err = a.Choose(context.Background(), "Tomorrow")
	require.NoError(t, err)

	recent, err := db.Recent(context.Background(), dbh, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "Tomorrow", recent[0].Phrase)
	assert.Equal(t, "2026-10-18", recent[0].NoteDate.Format("2006-01-02"))
	assert.True(t, recent[0].Created)
}

func TestChooseWithRealStore(t *testing.T) {
	vault := t.TempDir()
	store := dailynotes.NewStore(dailynotes.Settings{Vault: vault, Folder: "daily", Location: time.UTC}, nil)
	leaf := &recordingLeaf{}

	a := New(registry(), store, leaf, &recordingNotifier{}, nil)
	res, err := a.Choose(context.Background(), "next Monday")

	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, filepath.Join(vault, "daily", "2026-10-19.md"), res.Note.Path)
	assert.FileExists(t, res.Note.Path)
}
