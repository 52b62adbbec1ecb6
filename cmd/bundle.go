package cmd

import (
	"errors"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/application/usecases/commands"

	"github.com/spf13/cobra"
)

var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Run a single bundling pass over the order queue",
	RunE:  runBundle,
}

func init() {
	rootCmd.AddCommand(bundleCmd)
}

func runBundle(cmd *cobra.Command, _ []string) error {
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

	handler := root.CreateBundleOrdersCommandHandler()

	result, err := handler.Handle(cmd.Context(), commands.NewBundleOrdersCommand())
	if err != nil {
		if errors.Is(err, commands.ErrNoUnbundledOrdersFound) {
			logger.Info("Order queue is empty, nothing to bundle")
			return nil
		}
		return err
	}

	logger.Info("Bundling pass completed",
		"bundles_created", result.BundlesCreated,
		"orders_bundled", result.OrdersBundled,
		"drivers_assigned", result.DriversAssigned,
	)
	return nil
}
