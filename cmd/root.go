package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ramanasai/dailynote/internal/opener"
	"github.com/ramanasai/dailynote/internal/version"
)

var (
	configPath string
	vaultPath  string
	printOnly  bool

	// wired in PersistentPreRunE
	current *app
)

var rootCmd = &cobra.Command{
	Use:           "dailynote",
	Short:         "Open daily notes by natural language date",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.ErrOrStderr(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		current = a
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if current != nil {
			current.Close()
			current = nil
		}
	},
}

// Execute runs the CLI. Aborted selections already showed a notice, so
// they are not printed again.
func Execute() error {
	rootCmd.Version = version.GetVersion()
	err := rootCmd.Execute()
	if current != nil {
		current.Close()
		current = nil
	}
	if err != nil && !errors.Is(err, opener.ErrAborted) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/dailynote/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&vaultPath, "vault", "", "Vault directory, overrides the config file")
	rootCmd.PersistentFlags().BoolVar(&printOnly, "print", false, "Print the note path instead of opening an editor")

	rootCmd.AddCommand(openCmd, suggestCmd, commandsCmd, historyCmd, remindCmd, versionCmd)
}
