package cmd

import (
	"fmt"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/application/usecases/queries"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print table counts and bundle statistics",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	db, err := openDatabase(config)
	if err != nil {
		return err
	}

	for _, table := range []string{"customers", "drivers", "stores", "orders", "bundles", "bundle_stops"} {
		var count int64
		if err := db.WithContext(cmd.Context()).Table(table).Count(&count).Error; err != nil {
			return fmt.Errorf("count %s: %w", table, err)
		}
		fmt.Printf("%-14s %d\n", table, count)
	}

	root, err := NewCompositionRoot(config, db)
	if err != nil {
		return err
	}

	stats, err := root.CreateGetBundleStatsQueryHandler().Handle(cmd.Context(), queries.NewGetBundleStatsQuery())
	if err != nil {
		return err
	}

	fmt.Printf("\nbundle stats\n")
	fmt.Printf("  avg orders per bundle  %.2f\n", stats.AvgOrdersPerBundle)
	fmt.Printf("  single order bundles   %d\n", stats.SingleOrderBundles)
	fmt.Printf("  multi order bundles    %d\n", stats.MultiOrderBundles)
	fmt.Printf("  avg distance km        %.2f\n", stats.AvgDistanceKm)
	fmt.Printf("  avg duration min       %.2f\n", stats.AvgDurationMin)
	fmt.Printf("  avg bundle value       %.2f\n", stats.AvgValue)
	fmt.Printf("  total bundle value     %.2f\n", stats.TotalValue)
	return nil
}
