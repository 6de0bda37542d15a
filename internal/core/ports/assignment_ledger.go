package ports

import (
	"context"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/resource"
)

// AssignmentLedger stores assignments. It does not reserve or release resources.
type AssignmentLedger interface {
	// Insert stores a new scheduled assignment and returns its id.
	Insert(ctx context.Context, a *assignment.Assignment) (kernel.ID, error)

	// Get returns the assignment with the given id, or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*assignment.Assignment, error)

	// GetForUpdate is Get that also holds a row lock until the transaction ends.
	// Callers lock the owning request first.
	GetForUpdate(ctx context.Context, id kernel.ID) (*assignment.Assignment, error)

	// Update persists the scheduled date and status of an existing assignment.
	Update(ctx context.Context, a *assignment.Assignment) error

	// Delete removes the assignment row.
	Delete(ctx context.Context, id kernel.ID) error

	// FindActiveForRequest returns the scheduled or in_progress assignment of a
	// request, or nil when there is none.
	FindActiveForRequest(ctx context.Context, requestID kernel.ID) (*assignment.Assignment, error)

	// HasActiveForResource reports whether an active assignment other than
	// excluding references the resource.
	HasActiveForResource(ctx context.Context, kind resource.Kind, id kernel.ID, excluding kernel.ID) (bool, error)
}
