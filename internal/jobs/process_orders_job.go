package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ProcessOrdersJob polls the marketplace on a schedule and runs one pipeline
// pass per tick over the orders in the configured status.
type ProcessOrdersJob struct {
	handler  commands.ProcessOrdersCommandHandler
	status   int
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewProcessOrdersJob creates the polling job. schedule is a six-field cron
// expression (seconds included), e.g. "0 * * * * *" for once per minute.
func NewProcessOrdersJob(
	handler commands.ProcessOrdersCommandHandler,
	status int,
	schedule string,
	logger *slog.Logger,
) *ProcessOrdersJob {
	return &ProcessOrdersJob{
		handler:  handler,
		status:   status,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "process_orders_job"),
	}
}

// Start begins polling on the configured schedule.
func (j *ProcessOrdersJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewProcessOrdersCommand(j.status)
		if err != nil {
			j.logger.ErrorContext(ctx, "Process orders job misconfigured", "error", err)
			return
		}

		// Per-order failures are already counted in the report and logged by
		// the handler; only a broken run itself is an error here.
		if _, err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Process orders job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Process orders job started",
		"schedule", j.schedule, "status", j.status)
	return nil
}

// Stop stops the polling job.
func (j *ProcessOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Process orders job stopped")
}
