// Package jobs provides scheduled background tasks for the freight service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// for periodic maintenance work.
//
// # Available Jobs
//
// 1. CarrierAuditJob - Scans for packages whose carrier truck is missing
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(carrierAuditHandler, "@every 1h", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The audit job is read-only: it logs each violation it finds and never
// modifies the store. Failed audit runs are logged and retried on the next
// scheduled tick.
package jobs
