// Package cmd contains the CLI entrypoints and the composition root wiring
// configuration, database, use cases, jobs, and the HTTP server together.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "grocery-sim",
	Short: "Grocery delivery marketplace simulator",
	Long: `A self-driving grocery delivery marketplace. Synthetic customers place
orders at synthetic stores, a bundler clusters them into delivery runs,
and drivers carry them out on simulated schedules.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newLogger builds the process-wide structured logger.
func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
