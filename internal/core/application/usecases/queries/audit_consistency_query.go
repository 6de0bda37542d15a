package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrAuditConsistencyQueryIsNotConstructed = errors.New(
	"AuditConsistencyQuery must be created via NewAuditConsistencyQuery constructor",
)

// Consistency rules checked by the audit.
const (
	RuleDriverMultipleActive  = "driver_multiple_active"
	RuleVehicleMultipleActive = "vehicle_multiple_active"
	RuleRequestMultipleActive = "request_multiple_active"
	RuleRequestStatusMismatch = "request_status_mismatch"
)

// ConsistencyRules lists every rule in reporting order.
func ConsistencyRules() []string {
	return []string{
		RuleDriverMultipleActive,
		RuleVehicleMultipleActive,
		RuleRequestMultipleActive,
		RuleRequestStatusMismatch,
	}
}

// AuditConsistencyQuery scans for rows that break a consistency rule. It is
// read-only.
type AuditConsistencyQuery struct {
	guard guard.ConstructorGuard
}

func NewAuditConsistencyQuery() AuditConsistencyQuery {
	return AuditConsistencyQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q AuditConsistencyQuery) Validate() error {
	return q.guard.Validate(ErrAuditConsistencyQueryIsNotConstructed)
}

// ConsistencyViolation is one offending entity.
//
// For the multiple-active rules EntityID is the driver, vehicle or request
// and Detail holds the number of active assignments. For the status rule
// EntityID is the request and Detail its stored status.
type ConsistencyViolation struct {
	Rule     string
	EntityID int64
	Detail   string
}
