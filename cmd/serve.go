package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apphttp "github.com/ruizj3/fake-grocery-delivery-service/internal/adapters/in/http"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server and background simulation jobs",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
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

	jobManager := jobs.NewJobManager(
		root.CreateGenerateOrdersCommandHandler(),
		root.CreateBundleOrdersCommandHandler(),
		root.CreateProgressDeliveriesCommandHandler(),
		root.CreateGenerateCustomersCommandHandler(),
		root.CreateGenerateDriversCommandHandler(),
		root.CreateGenerateStoresCommandHandler(),
		config.OrderBatchSize,
		jobs.Schedules{
			OrderGeneration:     config.OrderGenerationSchedule,
			Bundling:            config.BundlingSchedule,
			DeliveryProgression: config.DeliveryProgressionSchedule,
			EntityGrowth:        config.EntityGrowthSchedule,
		},
		logger,
	)

	if err := jobManager.StartAll(); err != nil {
		return fmt.Errorf("start jobs: %w", err)
	}
	defer jobManager.StopAll()

	server := apphttp.NewServer(
		root.CreateGenerateCustomersCommandHandler(),
		root.CreateGenerateDriversCommandHandler(),
		root.CreateGenerateStoresCommandHandler(),
		root.CreateGenerateOrdersCommandHandler(),
		root.CreateBundleOrdersCommandHandler(),
		root.CreateProgressDeliveriesCommandHandler(),
		root.CreateGetOrdersQueryHandler(),
		root.CreateGetUnbundledOrdersQueryHandler(),
		root.CreateGetBundlesQueryHandler(),
		root.CreateGetBundleStatsQueryHandler(),
		jobManager,
	)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	server.RegisterRoutes(e)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)
		if serveErr := e.Start(addr); serveErr != nil && serveErr != http.ErrServerClosed {
			logger.Error("HTTP server stopped", "error", serveErr)
			stop()
		}
	}()

	logger.Info("Simulation running", "port", config.HTTPPort)
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}

	logger.Info("Simulation stopped")
	return nil
}
