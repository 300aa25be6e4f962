package http

import (
	"context"
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/pipeline"

	"github.com/labstack/echo/v4"
)

// PipelineRunner triggers one pipeline run. Satisfied by
// commands.ProcessOrdersCommandHandler.
type PipelineRunner interface {
	Handle(ctx context.Context, cmd commands.ProcessOrdersCommand) (pipeline.Report, error)
}

// ReportReader reads the latest run report. Satisfied by
// queries.GetLastReportQueryHandler.
type ReportReader interface {
	Handle(ctx context.Context, query queries.GetLastReportQuery) (pipeline.Report, error)
}

// ErrorResponse is the JSON error body for failed admin requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server exposes the admin surface of the pipeline: a health probe, an
// on-demand run trigger, and the latest run report. The scheduled cron job
// does the regular polling; these endpoints exist for operators.
type Server struct {
	runner      PipelineRunner
	reports     ReportReader
	orderStatus int
}

// NewServer creates the admin server. orderStatus is the feed status code
// on-demand runs are filtered by, the same one the scheduled job uses.
func NewServer(runner PipelineRunner, reports ReportReader, orderStatus int) *Server {
	return &Server{
		runner:      runner,
		reports:     reports,
		orderStatus: orderStatus,
	}
}

// RegisterRoutes attaches the admin endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/api/v1/pipeline/run", s.RunPipeline)
	e.GET("/api/v1/reports/last", s.GetLastReport)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// RunPipeline handles POST /api/v1/pipeline/run - triggers one pipeline run
// and returns its report. The run itself never fails because individual
// orders failed; those show up in the report counters.
func (s *Server) RunPipeline(ctx echo.Context) error {
	cmd, err := commands.NewProcessOrdersCommand(s.orderStatus)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Invalid order status configuration",
		})
	}

	report, err := s.runner.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Pipeline run failed",
		})
	}

	return ctx.JSON(http.StatusOK, report)
}

// GetLastReport handles GET /api/v1/reports/last - returns the most recent
// run report, or 404 before the first run completes.
func (s *Server) GetLastReport(ctx echo.Context) error {
	report, err := s.reports.Handle(ctx.Request().Context(), queries.NewGetLastReportQuery())
	if err != nil {
		if errors.Is(err, queries.ErrNoReportsYet) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "No pipeline run has completed yet",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to read last report",
		})
	}

	return ctx.JSON(http.StatusOK, report)
}
