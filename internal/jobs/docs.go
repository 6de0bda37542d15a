// Package jobs provides scheduled background tasks for the dispatch service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. InvariantAuditJob - scans requests and assignments for consistency
// violations on the configured schedule. It only reads: every finding is
// logged and exported as the dispatch_invariant_violations gauge.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(auditHandler, recorder, "0 */5 * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use six fields with seconds first, as accepted by
// cron.New(cron.WithSeconds()). An empty schedule disables the audit.
//
// # Error Handling
//
// A failed audit is logged and leaves the gauge at its previous values.
package jobs
