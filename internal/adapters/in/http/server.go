// Package http exposes the simulation control surface over REST.
// Handlers translate between JSON payloads and application use cases and
// never touch the domain model directly.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/application/usecases/commands"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/application/usecases/queries"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/jobs"

	"github.com/labstack/echo/v4"
)

// defaultListLimit bounds list endpoints when the client omits ?limit=.
const defaultListLimit = 50

// ErrorResponse is the JSON error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// GenerateRequest is the JSON body for the entity generation endpoints.
type GenerateRequest struct {
	Count int `json:"count"`
}

// GenerateResponse reports how many entities a generation call requested.
type GenerateResponse struct {
	Generated int `json:"generated"`
}

// BundlingRunResponse reports the outcome of an on-demand bundling pass.
type BundlingRunResponse struct {
	BundlesCreated  int `json:"bundles_created"`
	OrdersBundled   int `json:"orders_bundled"`
	DriversAssigned int `json:"drivers_assigned"`
}

// JobStatusResponse reports the running state of every background job.
type JobStatusResponse struct {
	Jobs map[string]bool `json:"jobs"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	generateCustomersHandler  commands.GenerateCustomersCommandHandler
	generateDriversHandler    commands.GenerateDriversCommandHandler
	generateStoresHandler     commands.GenerateStoresCommandHandler
	generateOrdersHandler     commands.GenerateOrdersCommandHandler
	bundleOrdersHandler       commands.BundleOrdersCommandHandler
	progressDeliveriesHandler commands.ProgressDeliveriesCommandHandler

	// Query handlers
	getOrdersHandler          queries.GetOrdersQueryHandler
	getUnbundledOrdersHandler queries.GetUnbundledOrdersQueryHandler
	getBundlesHandler         queries.GetBundlesQueryHandler
	getBundleStatsHandler     queries.GetBundleStatsQueryHandler

	// Background jobs
	jobManager *jobs.JobManager
}

// NewServer creates a new HTTP server with the required command and query
// handlers plus the job manager backing the job control endpoints.
func NewServer(
	generateCustomersHandler commands.GenerateCustomersCommandHandler,
	generateDriversHandler commands.GenerateDriversCommandHandler,
	generateStoresHandler commands.GenerateStoresCommandHandler,
	generateOrdersHandler commands.GenerateOrdersCommandHandler,
	bundleOrdersHandler commands.BundleOrdersCommandHandler,
	progressDeliveriesHandler commands.ProgressDeliveriesCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getUnbundledOrdersHandler queries.GetUnbundledOrdersQueryHandler,
	getBundlesHandler queries.GetBundlesQueryHandler,
	getBundleStatsHandler queries.GetBundleStatsQueryHandler,
	jobManager *jobs.JobManager,
) *Server {
	return &Server{
		generateCustomersHandler:  generateCustomersHandler,
		generateDriversHandler:    generateDriversHandler,
		generateStoresHandler:     generateStoresHandler,
		generateOrdersHandler:     generateOrdersHandler,
		bundleOrdersHandler:       bundleOrdersHandler,
		progressDeliveriesHandler: progressDeliveriesHandler,
		getOrdersHandler:          getOrdersHandler,
		getUnbundledOrdersHandler: getUnbundledOrdersHandler,
		getBundlesHandler:         getBundlesHandler,
		getBundleStatsHandler:     getBundleStatsHandler,
		jobManager:                jobManager,
	}
}

// RegisterRoutes mounts every endpoint on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/customers/generate", s.GenerateCustomers)
	api.POST("/drivers/generate", s.GenerateDrivers)
	api.POST("/stores/generate", s.GenerateStores)
	api.POST("/orders/generate", s.GenerateOrders)

	api.GET("/orders", s.GetOrders)
	api.GET("/orders/queue", s.GetOrderQueue)

	api.GET("/bundles", s.GetBundles)
	api.GET("/bundles/stats", s.GetBundleStats)
	api.POST("/bundles/run", s.RunBundling)
	api.POST("/deliveries/progress", s.ProgressDeliveries)

	api.GET("/jobs", s.GetJobStatus)
	api.POST("/jobs/start", s.StartAllJobs)
	api.POST("/jobs/stop", s.StopAllJobs)
	api.POST("/jobs/:name/start", s.StartJob)
	api.POST("/jobs/:name/stop", s.StopJob)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GenerateCustomers handles POST /api/v1/customers/generate.
func (s *Server) GenerateCustomers(ctx echo.Context) error {
	count, err := bindCount(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewGenerateCustomersCommand(count)
	if err != nil {
		return badRequest(ctx, "Invalid customer count: "+err.Error())
	}

	if handleErr := s.generateCustomersHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return internalError(ctx, "Failed to generate customers")
	}

	return ctx.JSON(http.StatusCreated, GenerateResponse{Generated: count})
}

// GenerateDrivers handles POST /api/v1/drivers/generate.
func (s *Server) GenerateDrivers(ctx echo.Context) error {
	count, err := bindCount(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewGenerateDriversCommand(count)
	if err != nil {
		return badRequest(ctx, "Invalid driver count: "+err.Error())
	}

	if handleErr := s.generateDriversHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return internalError(ctx, "Failed to generate drivers")
	}

	return ctx.JSON(http.StatusCreated, GenerateResponse{Generated: count})
}

// GenerateStores handles POST /api/v1/stores/generate.
func (s *Server) GenerateStores(ctx echo.Context) error {
	count, err := bindCount(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewGenerateStoresCommand(count)
	if err != nil {
		return badRequest(ctx, "Invalid store count: "+err.Error())
	}

	if handleErr := s.generateStoresHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return internalError(ctx, "Failed to generate stores")
	}

	return ctx.JSON(http.StatusCreated, GenerateResponse{Generated: count})
}

// GenerateOrders handles POST /api/v1/orders/generate.
// Requires seeded customers and active stores, otherwise responds 409.
func (s *Server) GenerateOrders(ctx echo.Context) error {
	count, err := bindCount(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewGenerateOrdersCommand(count)
	if err != nil {
		return badRequest(ctx, "Invalid order count: "+err.Error())
	}

	if handleErr := s.generateOrdersHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, commands.ErrNoCustomersFound) || errors.Is(handleErr, commands.ErrNoActiveStoresFound) {
			return ctx.JSON(http.StatusConflict, ErrorResponse{
				Code:    http.StatusConflict,
				Message: handleErr.Error(),
			})
		}
		return internalError(ctx, "Failed to generate orders")
	}

	return ctx.JSON(http.StatusCreated, GenerateResponse{Generated: count})
}

// GetOrders handles GET /api/v1/orders with optional status and limit filters.
func (s *Server) GetOrders(ctx echo.Context) error {
	limit, err := bindLimit(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrdersQuery(ctx.QueryParam("status"), limit)
	if err != nil {
		return badRequest(ctx, "Invalid order filter: "+err.Error())
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetOrderQueue handles GET /api/v1/orders/queue - the unbundled order queue.
func (s *Server) GetOrderQueue(ctx echo.Context) error {
	query := queries.NewGetUnbundledOrdersQuery()

	orders, err := s.getUnbundledOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve order queue")
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetBundles handles GET /api/v1/bundles with an optional limit.
func (s *Server) GetBundles(ctx echo.Context) error {
	limit, err := bindLimit(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetBundlesQuery(limit)
	if err != nil {
		return badRequest(ctx, "Invalid bundle filter: "+err.Error())
	}

	bundles, err := s.getBundlesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve bundles")
	}

	return ctx.JSON(http.StatusOK, bundles)
}

// GetBundleStats handles GET /api/v1/bundles/stats.
func (s *Server) GetBundleStats(ctx echo.Context) error {
	query := queries.NewGetBundleStatsQuery()

	stats, err := s.getBundleStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve bundle stats")
	}

	return ctx.JSON(http.StatusOK, stats)
}

// RunBundling handles POST /api/v1/bundles/run - an on-demand bundling pass.
// An empty queue responds 200 with a zero result rather than an error.
func (s *Server) RunBundling(ctx echo.Context) error {
	result, err := s.bundleOrdersHandler.Handle(ctx.Request().Context(), commands.NewBundleOrdersCommand())
	if err != nil {
		if errors.Is(err, commands.ErrNoUnbundledOrdersFound) {
			return ctx.JSON(http.StatusOK, BundlingRunResponse{})
		}
		return internalError(ctx, "Bundling pass failed")
	}

	return ctx.JSON(http.StatusOK, BundlingRunResponse{
		BundlesCreated:  result.BundlesCreated,
		OrdersBundled:   result.OrdersBundled,
		DriversAssigned: result.DriversAssigned,
	})
}

// ProgressDeliveries handles POST /api/v1/deliveries/progress - an on-demand
// progression scan against the current clock.
func (s *Server) ProgressDeliveries(ctx echo.Context) error {
	cmd, err := commands.NewProgressDeliveriesCommand(time.Now().UTC())
	if err != nil {
		return internalError(ctx, "Failed to build progression command")
	}

	result, err := s.progressDeliveriesHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Progression scan failed")
	}

	return ctx.JSON(http.StatusOK, result)
}

// GetJobStatus handles GET /api/v1/jobs.
func (s *Server) GetJobStatus(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, JobStatusResponse{Jobs: s.jobManager.Status()})
}

// StartAllJobs handles POST /api/v1/jobs/start.
func (s *Server) StartAllJobs(ctx echo.Context) error {
	if err := s.jobManager.StartAll(); err != nil {
		return internalError(ctx, "Failed to start jobs")
	}

	return ctx.JSON(http.StatusOK, JobStatusResponse{Jobs: s.jobManager.Status()})
}

// StopAllJobs handles POST /api/v1/jobs/stop.
func (s *Server) StopAllJobs(ctx echo.Context) error {
	s.jobManager.StopAll()

	return ctx.JSON(http.StatusOK, JobStatusResponse{Jobs: s.jobManager.Status()})
}

// StartJob handles POST /api/v1/jobs/:name/start.
func (s *Server) StartJob(ctx echo.Context) error {
	if err := s.jobManager.StartJob(ctx.Param("name")); err != nil {
		if errors.Is(err, jobs.ErrUnknownJob) {
			return notFound(ctx, err.Error())
		}
		return internalError(ctx, "Failed to start job")
	}

	return ctx.JSON(http.StatusOK, JobStatusResponse{Jobs: s.jobManager.Status()})
}

// StopJob handles POST /api/v1/jobs/:name/stop.
func (s *Server) StopJob(ctx echo.Context) error {
	if err := s.jobManager.StopJob(ctx.Param("name")); err != nil {
		if errors.Is(err, jobs.ErrUnknownJob) {
			return notFound(ctx, err.Error())
		}
		return internalError(ctx, "Failed to stop job")
	}

	return ctx.JSON(http.StatusOK, JobStatusResponse{Jobs: s.jobManager.Status()})
}

func bindCount(ctx echo.Context) (int, error) {
	var req GenerateRequest
	if err := ctx.Bind(&req); err != nil {
		return 0, badRequest(ctx, "Invalid request body")
	}

	return req.Count, nil
}

func bindLimit(ctx echo.Context) (int, error) {
	raw := ctx.QueryParam("limit")
	if raw == "" {
		return defaultListLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, badRequest(ctx, "Invalid limit: "+raw)
	}

	return limit, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, ErrorResponse{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
