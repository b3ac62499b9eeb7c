package jobs

import (
	"context"
	"log/slog"

	"freight/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// CarrierAuditJob periodically scans for packages whose carrier reference
// points at a truck that no longer exists. The job is read-only: it reports
// violations, it never repairs them.
type CarrierAuditJob struct {
	handler  queries.CarrierAuditQueryHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewCarrierAuditJob creates an audit job running on the given cron schedule.
func NewCarrierAuditJob(
	handler queries.CarrierAuditQueryHandler,
	schedule string,
	logger *slog.Logger,
) *CarrierAuditJob {
	return &CarrierAuditJob{
		handler:  handler,
		cron:     cron.New(),
		schedule: schedule,
		logger:   logger.With("component", "carrier_audit_job"),
	}
}

// Start schedules the carrier audit.
func (j *CarrierAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		dangling, auditErr := j.handler.Handle(ctx, queries.NewCarrierAuditQuery())
		if auditErr != nil {
			j.logger.ErrorContext(ctx, "Carrier audit failed", "error", auditErr)
			return
		}

		if len(dangling) == 0 {
			j.logger.InfoContext(ctx, "Carrier audit passed")
			return
		}

		for _, violation := range dangling {
			j.logger.WarnContext(ctx, "Package references a missing carrier",
				"package_id", violation.PackageID.String(),
				"carrier_id", violation.CarrierID.String(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Carrier audit job started", "schedule", j.schedule)
	return nil
}

// Stop stops the carrier audit job.
func (j *CarrierAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Carrier audit job stopped")
}
