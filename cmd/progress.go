package cmd

import (
	"time"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/application/usecases/commands"

	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Run a single delivery progression scan",
	RunE:  runProgress,
}

func init() {
	rootCmd.AddCommand(progressCmd)
}

func runProgress(cmd *cobra.Command, _ []string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	logger := newLogger()

	db, err := openDatabase(config)
	if err != nil {
		return err
	}

	root, err := NewCompositionRoot(config, db)
	if err != nil {
		return err
	}

	progressCommand, err := commands.NewProgressDeliveriesCommand(time.Now().UTC())
	if err != nil {
		return err
	}

	result, err := root.CreateProgressDeliveriesCommandHandler().Handle(cmd.Context(), progressCommand)
	if err != nil {
		return err
	}

	logger.Info("Progression scan completed",
		"orders_advanced", result.OrdersAdvanced,
		"bundles_completed", result.BundlesCompleted,
	)
	return nil
}
