// Package ports defines the persistence contracts the allocation coordinator
// depends on. Adapters in internal/adapters/out implement them; the coordinator
// only sees these interfaces.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/servicerequest"
)

// ServiceRequestRepository is the request store. It owns the service_requests
// rows and their status column but enforces no cross-entity rules.
type ServiceRequestRepository interface {
	// Create inserts a new request in the pending status and returns its id.
	Create(ctx context.Context, req *servicerequest.ServiceRequest) (kernel.ID, error)

	// Get returns the request with the given id, or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*servicerequest.ServiceRequest, error)

	// GetForUpdate is Get that also holds a row lock until the transaction
	// ends. Coordinator operations take it before they read or write the
	// request's assignments, so two operations on one request never interleave.
	GetForUpdate(ctx context.Context, id kernel.ID) (*servicerequest.ServiceRequest, error)

	// UpdateFields persists a non-status edit. Returns an ObjectNotFoundError if
	// the request does not exist.
	UpdateFields(ctx context.Context, id kernel.ID, patch servicerequest.Patch) error

	// SetStatus writes the status column. The value is validated, nothing else is.
	SetStatus(ctx context.Context, id kernel.ID, status servicerequest.Status) error

	// Delete removes the request row together with its assignments. It does not
	// release resources.
	Delete(ctx context.Context, id kernel.ID) error
}
