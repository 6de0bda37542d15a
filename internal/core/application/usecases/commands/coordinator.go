package commands

import (
	"context"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/resource"
	"dispatch/internal/core/domain/model/servicerequest"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// stores are the three stores of one unit of work.
type stores struct {
	requests  ports.ServiceRequestRepository
	directory ports.ResourceDirectory
	ledger    ports.AssignmentLedger
}

func storesOf(uow UoW) stores {
	return stores{
		requests:  uow.ServiceRequestRepository(),
		directory: uow.ResourceDirectory(),
		ledger:    uow.AssignmentLedger(),
	}
}

// persistTransition writes a changed assignment and, when the change ends
// the assignment, releases its driver and vehicle.
func persistTransition(
	ctx context.Context,
	s stores,
	cascade services.StatusCascade,
	a *assignment.Assignment,
	tr assignment.Transition,
) error {
	if err := s.ledger.Update(ctx, a); err != nil {
		return err
	}

	if !cascade.ReleasesResources(tr) {
		return nil
	}

	return releaseResources(ctx, s, a)
}

// releaseResources returns the driver and vehicle of a to available, skipping
// any resource that another active assignment already claims.
func releaseResources(ctx context.Context, s stores, a *assignment.Assignment) error {
	refs := []struct {
		kind resource.Kind
		id   kernel.ID
	}{
		{kind: resource.KindDriver, id: a.DriverID()},
		{kind: resource.KindVehicle, id: a.VehicleID()},
	}

	for _, ref := range refs {
		claimed, err := s.ledger.HasActiveForResource(ctx, ref.kind, ref.id, a.ID())
		if err != nil {
			return err
		}
		if claimed {
			continue
		}

		if err := s.directory.Release(ctx, ref.kind, ref.id); err != nil {
			return err
		}
	}

	return nil
}

// lockAssignment loads an assignment together with its request, locking the
// request row first and the assignment row second. Every coordinator
// operation takes the request lock before it reads or writes assignments, so
// the second read sees the assignment as the last committed operation left it.
func lockAssignment(
	ctx context.Context,
	s stores,
	id kernel.ID,
) (*assignment.Assignment, *servicerequest.ServiceRequest, error) {
	a, err := s.ledger.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	req, err := s.requests.GetForUpdate(ctx, a.RequestID())
	if err != nil {
		return nil, nil, err
	}

	a, err = s.ledger.GetForUpdate(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return a, req, nil
}

// mirrorRequest copies an assignment status onto its request where the
// cascade rules ask for it.
func mirrorRequest(
	ctx context.Context,
	s stores,
	cascade services.StatusCascade,
	req *servicerequest.ServiceRequest,
	status assignment.Status,
) error {
	next, changed := cascade.RequestStatusFor(status, req.Status())
	if !changed {
		return nil
	}

	return s.requests.SetStatus(ctx, req.ID(), next)
}
