package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	invariantAuditJob *InvariantAuditJob
}

// NewJobManager creates a job manager. An empty auditSchedule disables the
// invariant audit.
func NewJobManager(
	auditor Auditor,
	reporter ViolationReporter,
	auditSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if auditSchedule != "" {
		jm.invariantAuditJob = NewInvariantAuditJob(auditor, reporter, auditSchedule, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.invariantAuditJob == nil {
		return nil
	}
	if err := jm.invariantAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start invariant audit job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.invariantAuditJob != nil {
		jm.invariantAuditJob.Stop()
	}
}
