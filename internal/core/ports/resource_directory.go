package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/resource"
)

// ResourceDirectory owns driver and vehicle availability.
type ResourceDirectory interface {
	// Reserve moves the resource from available to its reserved status in one
	// conditional write. It fails with a ResourceUnavailableError if the resource
	// is not available and with an ObjectNotFoundError if it does not exist.
	// Two concurrent reservations of the same resource never both succeed.
	Reserve(ctx context.Context, kind resource.Kind, id kernel.ID) error

	// Release returns the resource to available. It is a no-op when the resource
	// carries its manual status (off_duty, maintenance).
	Release(ctx context.Context, kind resource.Kind, id kernel.ID) error

	// AddDriver inserts a driver and returns its id. A duplicate license number
	// is reported as a ConflictError.
	AddDriver(ctx context.Context, d *resource.Driver) (kernel.ID, error)

	// AddVehicle inserts a vehicle and returns its id. A duplicate plate number
	// is reported as a ConflictError.
	AddVehicle(ctx context.Context, v *resource.Vehicle) (kernel.ID, error)
}
