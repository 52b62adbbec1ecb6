package cmd

import (
	"fmt"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/application/usecases/commands"

	"github.com/spf13/cobra"
)

var (
	generateCustomers int
	generateDrivers   int
	generateStores    int
	generateOrders    int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Seed the marketplace with synthetic entities",
	Long: `Generates customers, drivers, stores, and orders in that sequence, so
orders always find the customers and stores they depend on. Counts of
zero skip the respective entity.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&generateCustomers, "customers", 0, "number of customers to generate")
	generateCmd.Flags().IntVar(&generateDrivers, "drivers", 0, "number of drivers to generate")
	generateCmd.Flags().IntVar(&generateStores, "stores", 0, "number of stores to generate")
	generateCmd.Flags().IntVar(&generateOrders, "orders", 0, "number of orders to generate")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
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

	ctx := cmd.Context()

	if generateCustomers > 0 {
		c, err := commands.NewGenerateCustomersCommand(generateCustomers)
		if err != nil {
			return err
		}
		if err := root.CreateGenerateCustomersCommandHandler().Handle(ctx, c); err != nil {
			return fmt.Errorf("generate customers: %w", err)
		}
		logger.Info("Customers generated", "count", generateCustomers)
	}

	if generateDrivers > 0 {
		c, err := commands.NewGenerateDriversCommand(generateDrivers)
		if err != nil {
			return err
		}
		if err := root.CreateGenerateDriversCommandHandler().Handle(ctx, c); err != nil {
			return fmt.Errorf("generate drivers: %w", err)
		}
		logger.Info("Drivers generated", "count", generateDrivers)
	}

	if generateStores > 0 {
		c, err := commands.NewGenerateStoresCommand(generateStores)
		if err != nil {
			return err
		}
		if err := root.CreateGenerateStoresCommandHandler().Handle(ctx, c); err != nil {
			return fmt.Errorf("generate stores: %w", err)
		}
		logger.Info("Stores generated", "count", generateStores)
	}

	if generateOrders > 0 {
		c, err := commands.NewGenerateOrdersCommand(generateOrders)
		if err != nil {
			return err
		}
		if err := root.CreateGenerateOrdersCommandHandler().Handle(ctx, c); err != nil {
			return fmt.Errorf("generate orders: %w", err)
		}
		logger.Info("Orders generated", "count", generateOrders)
	}

	return nil
}
