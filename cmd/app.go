package cmd

import (
	"context"
	"database/sql"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ramanasai/dailynote/internal/commands"
	"github.com/ramanasai/dailynote/internal/config"
	"github.com/ramanasai/dailynote/internal/dailynotes"
	"github.com/ramanasai/dailynote/internal/dates"
	"github.com/ramanasai/dailynote/internal/db"
	"github.com/ramanasai/dailynote/internal/logging"
	"github.com/ramanasai/dailynote/internal/notify"
	"github.com/ramanasai/dailynote/internal/opener"
	"github.com/ramanasai/dailynote/internal/plugins"
	"github.com/ramanasai/dailynote/internal/suggest"
	"github.com/ramanasai/dailynote/internal/ui"
	"github.com/ramanasai/dailynote/internal/workspace"
)

// OpenDailyNoteID is the palette id of the open command.
const OpenDailyNoteID = "open-daily-note"

// app holds everything a command needs, wired from config.
type app struct {
	cfg      config.Config
	log      *zap.Logger
	plugins  *plugins.Registry
	notes    *dailynotes.Store
	notifier *notify.Notifier
	history  *sql.DB
	commands *commands.Registry
	action   *opener.Action
}

func newApp(stderr, stdout io.Writer) (*app, error) {
	var (
		cfg config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if vaultPath != "" {
		cfg.Vault = vaultPath
	}

	dataDir, err := db.DataDir()
	if err != nil {
		return nil, err
	}
	log, err := logging.New(filepath.Join(dataDir, "dailynote.log"), cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:      cfg,
		log:      log,
		plugins:  plugins.NewRegistry(),
		notifier: notify.New(stderr, cfg.Desktop),
		commands: commands.NewRegistry(),
	}

	loc := cfg.Location()
	if cfg.Plugins.NaturalLanguageDates {
		a.plugins.Register(plugins.NaturalLanguageDates, dates.New(loc))
	}

	a.notes = dailynotes.NewStore(dailynotes.Settings{
		Vault:    cfg.Vault,
		Folder:   cfg.Daily.Folder,
		Format:   cfg.Daily.Format,
		Template: cfg.Daily.Template,
		Location: loc,
	}, log)

	// history is best effort
	if dbh, err := db.OpenAt(filepath.Join(dataDir, "dailynote.db")); err != nil {
		log.Warn("history unavailable", zap.Error(err))
	} else {
		a.history = dbh
	}

	var leaf workspace.Leaf = &workspace.EditorLeaf{Command: cfg.Editor, Log: log}
	if printOnly {
		leaf = workspace.PrintLeaf{Out: stdout}
	}
	a.action = opener.New(a.plugins, a.notes, leaf, a.notifier, log)
	a.action.History = a.history

	err = a.commands.Add(commands.Command{
		ID:   OpenDailyNoteID,
		Name: "Open daily note",
		Icon: "calendar-search",
		Callback: func(ctx context.Context) error {
			phrase, ok, err := ui.Run(ui.Placeholder, suggest.Suggestions)
			if err != nil || !ok {
				return err
			}
			return a.open(ctx, phrase)
		},
	})
	if err != nil {
		return nil, err
	}

	log.Debug("wired", zap.String("vault", cfg.Vault), zap.Strings("plugins", a.plugins.Enabled()))
	return a, nil
}

func (a *app) open(ctx context.Context, phrase string) error {
	phrase = strings.TrimSpace(phrase)
	a.log.Debug("selected", zap.String("phrase", phrase), zap.String("category", suggest.Category(phrase)))
	_, err := a.action.Choose(ctx, phrase)
	return err
}

func (a *app) Close() {
	if a.history != nil {
		_ = a.history.Close()
	}
	_ = a.log.Sync()
}
