package queries

import (
	"context"
	"fmt"
	"strconv"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/servicerequest"

	"gorm.io/gorm"
)

// AuditConsistencyQueryHandler runs the consistency scan against the database.
type AuditConsistencyQueryHandler struct {
	db *gorm.DB
}

func NewAuditConsistencyQueryHandler(db *gorm.DB) AuditConsistencyQueryHandler {
	return AuditConsistencyQueryHandler{db: db}
}

// Handle returns every violation found, grouped by rule in ConsistencyRules
// order. An empty slice means the data is consistent.
func (h AuditConsistencyQueryHandler) Handle(
	ctx context.Context,
	query AuditConsistencyQuery,
) ([]ConsistencyViolation, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	active := []string{assignment.Scheduled.String(), assignment.InProgress.String()}
	violations := make([]ConsistencyViolation, 0)

	for _, check := range []struct {
		rule   string
		column string
	}{
		{rule: RuleDriverMultipleActive, column: "driver_id"},
		{rule: RuleVehicleMultipleActive, column: "vehicle_id"},
		{rule: RuleRequestMultipleActive, column: "request_id"},
	} {
		found, err := h.multipleActive(ctx, check.rule, check.column, active)
		if err != nil {
			return nil, fmt.Errorf("audit %s: %w", check.rule, err)
		}
		violations = append(violations, found...)
	}

	found, err := h.statusMismatch(ctx, active)
	if err != nil {
		return nil, fmt.Errorf("audit %s: %w", RuleRequestStatusMismatch, err)
	}

	return append(violations, found...), nil
}

func (h AuditConsistencyQueryHandler) multipleActive(
	ctx context.Context,
	rule, column string,
	active []string,
) ([]ConsistencyViolation, error) {
	rows, err := h.db.WithContext(ctx).
		Table("assignments").
		Select(column+", COUNT(*)").
		Where("status IN ?", active).
		Group(column).
		Having("COUNT(*) > 1").
		Order(column).
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var violations []ConsistencyViolation
	for rows.Next() {
		var id, count int64
		if err := rows.Scan(&id, &count); err != nil {
			return nil, err
		}
		violations = append(violations, ConsistencyViolation{
			Rule:     rule,
			EntityID: id,
			Detail:   strconv.FormatInt(count, 10),
		})
	}

	return violations, rows.Err()
}

// statusMismatch finds requests whose status disagrees with whether they
// have an active assignment.
func (h AuditConsistencyQueryHandler) statusMismatch(
	ctx context.Context,
	active []string,
) ([]ConsistencyViolation, error) {
	claiming := []string{servicerequest.Assigned.String(), servicerequest.InProgress.String()}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT sr.id, sr.status
		FROM service_requests sr
		WHERE (sr.status IN ?) <> EXISTS (
			SELECT 1 FROM assignments a
			WHERE a.request_id = sr.id AND a.status IN ?
		)
		ORDER BY sr.id
	`, claiming, active).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var violations []ConsistencyViolation
	for rows.Next() {
		var v ConsistencyViolation
		if err := rows.Scan(&v.EntityID, &v.Detail); err != nil {
			return nil, err
		}
		v.Rule = RuleRequestStatusMismatch
		violations = append(violations, v)
	}

	return violations, rows.Err()
}
