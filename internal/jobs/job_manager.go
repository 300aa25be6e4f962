package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
)

// JobManager coordinates the scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	processOrdersJob *ProcessOrdersJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	processOrdersHandler commands.ProcessOrdersCommandHandler,
	status int,
	schedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		processOrdersJob: NewProcessOrdersJob(processOrdersHandler, status, schedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.processOrdersJob.Start(); err != nil {
		return fmt.Errorf("failed to start process orders job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.processOrdersJob.Stop()
}
