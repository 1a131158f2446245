package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// commandsCmd lists the command palette.
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List registered commands",
	RunE: func(cmd *cobra.Command, args []string) error {
		name := lipgloss.NewStyle().Bold(true)
		meta := lipgloss.NewStyle().Faint(true)

		for _, c := range current.commands.List() {
			keys := "no hotkey"
			if len(c.Hotkeys) > 0 {
				keys = strings.Join(c.Hotkeys, ", ")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", name.Render(c.Name), meta.Render(fmt.Sprintf("[%s] icon:%s %s", c.ID, c.Icon, keys)))
		}
		return nil
	},
}
