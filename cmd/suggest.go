package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramanasai/dailynote/internal/suggest"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [query...]",
	Short: "Print the suggestions for a partial date phrase, one per line",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, s := range suggest.Suggestions(strings.Join(args, " ")) {
			fmt.Fprintln(cmd.OutOrStdout(), s)
		}
		return nil
	},
}
