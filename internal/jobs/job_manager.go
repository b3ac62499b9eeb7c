package jobs

import (
	"fmt"
	"log/slog"

	"freight/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	carrierAuditJob *CarrierAuditJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	carrierAuditHandler queries.CarrierAuditQueryHandler,
	auditSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		carrierAuditJob: NewCarrierAuditJob(carrierAuditHandler, auditSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.carrierAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start carrier audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.carrierAuditJob.Stop()
}
