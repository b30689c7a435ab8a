// Package commands wires the CLI surface: statement processing and the
// scheduled watch loop.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bankjournal",
		Short: "Convert bank statement text into journal and voucher files",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newProcessCommand())
	rootCmd.AddCommand(newWatchCommand())

	return rootCmd
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}
