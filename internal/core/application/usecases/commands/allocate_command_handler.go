package commands

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/resource"
	"dispatch/internal/core/domain/model/servicerequest"
	"dispatch/internal/pkg/errs"
)

// AllocateCommandHandler reserves a driver and a vehicle for a request and
// records the assignment in one unit of work.
//
// Steps:
//  1. Load and lock the request (NotFound if absent)
//  2. Reject a request that already has an active assignment (Conflict)
//  3. Reserve the driver, then the vehicle (Conflict if either is unavailable
//     or missing)
//  4. Insert the scheduled assignment and move the request to assigned
//
// Nothing is written when any step fails.
type AllocateCommandHandler struct {
	uowFactory UoWFactory
	recorder   Recorder
}

// NewAllocateCommandHandler creates a handler for allocations. recorder may be nil.
func NewAllocateCommandHandler(uowFactory UoWFactory, recorder Recorder) AllocateCommandHandler {
	return AllocateCommandHandler{
		uowFactory: uowFactory,
		recorder:   recorder,
	}
}

// Handle performs the allocation and returns the id of the new assignment.
func (h AllocateCommandHandler) Handle(ctx context.Context, command AllocateCommand) (id kernel.ID, err error) {
	if err := command.Validate(); err != nil {
		return kernel.ID{}, err
	}

	ctx, op := startOperation(ctx, h.recorder, "allocate", "AllocateCommandHandler.Handle")
	uow := h.uowFactory.Create()
	defer func() { op.end(err, uow) }()

	if err := uow.Begin(ctx); err != nil {
		return kernel.ID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	s := storesOf(uow)

	req, err := s.requests.GetForUpdate(ctx, command.RequestID())
	if err != nil {
		return kernel.ID{}, err
	}

	active, err := s.ledger.FindActiveForRequest(ctx, req.ID())
	if err != nil {
		return kernel.ID{}, err
	}
	if active != nil {
		return kernel.ID{}, errs.NewConflictError(fmt.Sprintf(
			"service request %s already has active assignment %s", req.ID(), active.ID()))
	}

	if err := s.directory.Reserve(ctx, resource.KindDriver, command.DriverID()); err != nil {
		return kernel.ID{}, reservationError(resource.KindDriver, command.DriverID(), err)
	}

	if err := s.directory.Reserve(ctx, resource.KindVehicle, command.VehicleID()); err != nil {
		if releaseErr := s.directory.Release(ctx, resource.KindDriver, command.DriverID()); releaseErr != nil {
			return kernel.ID{}, errors.Join(reservationError(resource.KindVehicle, command.VehicleID(), err), releaseErr)
		}
		return kernel.ID{}, reservationError(resource.KindVehicle, command.VehicleID(), err)
	}

	a, err := assignment.NewAssignment(req.ID(), command.DriverID(), command.VehicleID(), command.ScheduledDate())
	if err != nil {
		return kernel.ID{}, err
	}

	id, err = s.ledger.Insert(ctx, a)
	if err != nil {
		return kernel.ID{}, err
	}

	if err := s.requests.SetStatus(ctx, req.ID(), servicerequest.Assigned); err != nil {
		return kernel.ID{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	return id, nil
}

// reservationError turns a failed reservation into a Conflict, whether the
// resource is taken or does not exist. Store failures pass through unchanged.
func reservationError(kind resource.Kind, id kernel.ID, err error) error {
	switch {
	case errors.Is(err, errs.ErrResourceUnavailable):
		return errs.NewConflictErrorWithCause(fmt.Sprintf("%s %s is not available", kind, id), err)
	case errors.Is(err, errs.ErrObjectNotFound):
		return errs.NewConflictError(fmt.Sprintf("%s %s does not exist", kind, id))
	default:
		return err
	}
}
