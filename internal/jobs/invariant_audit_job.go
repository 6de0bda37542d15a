package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// Auditor runs the read-only consistency scan.
type Auditor interface {
	Handle(ctx context.Context, query queries.AuditConsistencyQuery) ([]queries.ConsistencyViolation, error)
}

// ViolationReporter receives the number of violations per rule after every run.
type ViolationReporter interface {
	SetInvariantViolations(rule string, count int)
}

// InvariantAuditJob periodically checks the consistency rules and reports,
// but never repairs, what it finds.
type InvariantAuditJob struct {
	auditor  Auditor
	reporter ViolationReporter
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewInvariantAuditJob creates the job. schedule is a six-field cron
// expression (seconds first). reporter may be nil.
func NewInvariantAuditJob(
	auditor Auditor,
	reporter ViolationReporter,
	schedule string,
	logger *slog.Logger,
) *InvariantAuditJob {
	return &InvariantAuditJob{
		auditor:  auditor,
		reporter: reporter,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "invariant_audit_job"),
	}
}

// Start schedules the audit.
func (j *InvariantAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_ = j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Invariant audit job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running audit to finish.
func (j *InvariantAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Invariant audit job stopped")
}

// RunOnce performs one audit and returns the violations found.
func (j *InvariantAuditJob) RunOnce(ctx context.Context) []queries.ConsistencyViolation {
	violations, err := j.auditor.Handle(ctx, queries.NewAuditConsistencyQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Invariant audit failed", "error", err)
		return nil
	}

	counts := make(map[string]int, len(queries.ConsistencyRules()))
	for _, v := range violations {
		counts[v.Rule]++
		j.logger.WarnContext(ctx, "Consistency violation",
			"invariant", v.Rule,
			"entity_id", v.EntityID,
			"detail", v.Detail,
		)
	}

	if j.reporter != nil {
		for _, rule := range queries.ConsistencyRules() {
			j.reporter.SetInvariantViolations(rule, counts[rule])
		}
	}

	return violations
}
