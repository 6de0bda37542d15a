// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
//
// The allocation coordinator is the set of handlers in this package that touch
// assignments: AllocateCommandHandler, UpdateAssignmentCommandHandler,
// DeleteAssignmentCommandHandler, ChangeServiceRequestStatusCommandHandler and
// DeleteServiceRequestCommandHandler.
// Each runs as one unit of work and leaves requests, assignments, drivers and
// vehicles consistent when it commits.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ServiceRequestRepoFactory provides access to the request store within a transaction.
	ServiceRequestRepoFactory interface {
		ServiceRequestRepository() ports.ServiceRequestRepository
	}

	// ResourceDirectoryFactory provides access to the driver and vehicle store within a transaction.
	ResourceDirectoryFactory interface {
		ResourceDirectory() ports.ResourceDirectory
	}

	// AssignmentLedgerFactory provides access to the assignment store within a transaction.
	AssignmentLedgerFactory interface {
		AssignmentLedger() ports.AssignmentLedger
	}

	// ChangeLog exposes the status writes of the last committed transaction.
	ChangeLog interface {
		Changes() []ports.StatusChange
	}

	// ServiceRequestUoW manages transactions for request-only operations
	// (intake and field edits).
	ServiceRequestUoW interface {
		TxManager
		ServiceRequestRepoFactory
	}

	// ServiceRequestUoWFactory creates new request unit of work instances.
	ServiceRequestUoWFactory interface {
		Create() ServiceRequestUoW
	}

	// UoW manages transactions across requests, resources and assignments.
	// Every coordinator operation uses one.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   directory := uow.ResourceDirectory()
	//   ledger := uow.AssignmentLedger()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ServiceRequestRepoFactory
		ResourceDirectoryFactory
		AssignmentLedgerFactory
		ChangeLog
	}

	// UoWFactory creates new unit of work instances for coordinator operations.
	UoWFactory interface {
		Create() UoW
	}
)
