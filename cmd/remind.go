package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ramanasai/dailynote/internal/dailynotes"
	"github.com/ramanasai/dailynote/internal/notify"
	"github.com/ramanasai/dailynote/internal/schedule"
)

// remindCmd stays in the foreground and raises the daily note reminder.
var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Run the daily note reminder until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := current.cfg
		if !cfg.Reminder.Enabled {
			return fmt.Errorf("reminder disabled (set reminder.enabled in the config)")
		}

		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		next := schedule.NextAt(time.Now(), cfg)
		fmt.Fprintf(cmd.OutOrStdout(), "Next reminder: %s\n", next.Format("Mon 2006-01-02 15:04"))

		schedule.RunConfigured(ctx, cfg, func() {
			title, msg := notify.FormatDailyPrompt(!todayExists(ctx))
			if err := notify.Info(title, msg); err != nil {
				current.log.Warn("reminder notification failed", zap.Error(err))
			}
		})
		return nil
	},
}

func todayExists(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	notes, err := current.notes.All()
	if err != nil {
		return false
	}
	_, ok := dailynotes.Lookup(time.Now().In(current.cfg.Location()), notes)
	return ok
}
