package cmd

import (
	"github.com/ruizj3/fake-grocery-delivery-service/internal/adapters/out/csvexport"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump every simulation table to CSV files",
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	logger := newLogger()

	db, err := openDatabase(config)
	if err != nil {
		return err
	}

	exporter, err := csvexport.NewExporter(db, config.ExportDir)
	if err != nil {
		return err
	}

	paths, err := exporter.ExportAll(cmd.Context())
	if err != nil {
		return err
	}

	logger.Info("Export completed", "dir", config.ExportDir, "files", len(paths))
	return nil
}
