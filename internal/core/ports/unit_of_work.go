package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for every coordinator operation.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// Entity names used in StatusChange. Drivers and vehicles use their
// resource.Kind literal.
const (
	EntityServiceRequest = "service_request"
	EntityAssignment     = "assignment"
)

// StatusChange is a status write recorded by a unit of work.
type StatusChange struct {
	Entity string
	ID     kernel.ID
	Status string
}

// UnitOfWork is the transaction boundary of one coordinator operation. All
// three stores obtained from it write inside the same transaction, which
// commits or rolls back as a whole.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ServiceRequestRepository returns the request store bound to the transaction.
	ServiceRequestRepository() ServiceRequestRepository

	// ResourceDirectory returns the resource directory bound to the transaction.
	ResourceDirectory() ResourceDirectory

	// AssignmentLedger returns the assignment ledger bound to the transaction.
	AssignmentLedger() AssignmentLedger

	// Changes lists the status writes of the last committed transaction.
	// It is empty before Commit and after Rollback.
	Changes() []StatusChange
}
