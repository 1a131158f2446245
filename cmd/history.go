package cmd

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ramanasai/dailynote/internal/db"
)

var (
	historyLimit  int
	historyByDate bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently opened daily notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if current.history == nil {
			return fmt.Errorf("history database unavailable")
		}
		if historyByDate {
			return printCountsByDate(cmd)
		}
		openings, err := db.Recent(cmd.Context(), current.history, historyLimit)
		if err != nil {
			return err
		}

		meta := lipgloss.NewStyle().Faint(true)
		date := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1"))
		created := lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA"))

		out := cmd.OutOrStdout()
		if len(openings) == 0 {
			fmt.Fprintln(out, meta.Render("no history"))
			return nil
		}
		loc := current.cfg.Location()
		for _, o := range openings {
			line := meta.Render(o.At.In(loc).Format("2006-01-02 15:04")) + "  " +
				date.Render(o.NoteDate.Format("2006-01-02")) + "  " + fmt.Sprintf("%q", o.Phrase)
			if o.Created {
				line += "  " + created.Render("created")
			}
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

func printCountsByDate(cmd *cobra.Command) error {
	counts, err := db.CountsByDate(cmd.Context(), current.history)
	if err != nil {
		return err
	}
	dates := make([]string, 0, len(counts))
	for d := range counts {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	for _, d := range dates {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %3d\n", d, counts[d])
	}
	return nil
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum entries to show")
	historyCmd.Flags().BoolVar(&historyByDate, "by-date", false, "Count openings per note date")
}
