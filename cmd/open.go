package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramanasai/dailynote/internal/suggest"
)

var openCmd = &cobra.Command{
	Use:   "open [phrase...]",
	Short: "Open (or create) the daily note for a date",
	Long: `Examples:
	dailynote open                     # interactive prompt
	dailynote open tomorrow
	dailynote open next friday
	dailynote open 3 days ago --print  # print the path instead of editing`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return current.commands.Run(cmd.Context(), OpenDailyNoteID)
		}
		return current.open(cmd.Context(), strings.Join(args, " "))
	},
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return suggest.Suggestions(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
}
