package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pendingOrdersMonitorJob *PendingOrdersMonitorJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	getPendingOrdersHandler pendingOrdersReader,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pendingOrdersMonitorJob: NewPendingOrdersMonitorJob(getPendingOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingOrdersMonitorJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending orders monitor: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingOrdersMonitorJob.Stop()
}
