package commands

import (
	"context"

	"dispatch/internal/core/domain/model/servicerequest"
)

// DeleteAssignmentCommandHandler deletes an assignment whatever its status.
// It releases the driver and vehicle and returns the request to pending,
// except where another active assignment already claims the resource or the
// request.
type DeleteAssignmentCommandHandler struct {
	uowFactory UoWFactory
	recorder   Recorder
}

// NewDeleteAssignmentCommandHandler creates the handler. recorder may be nil.
func NewDeleteAssignmentCommandHandler(uowFactory UoWFactory, recorder Recorder) DeleteAssignmentCommandHandler {
	return DeleteAssignmentCommandHandler{
		uowFactory: uowFactory,
		recorder:   recorder,
	}
}

// Handle deletes the assignment. Returns an ObjectNotFoundError if it does not exist.
func (h DeleteAssignmentCommandHandler) Handle(ctx context.Context, command DeleteAssignmentCommand) (err error) {
	if err := command.Validate(); err != nil {
		return err
	}

	ctx, op := startOperation(ctx, h.recorder, "delete_assignment", "DeleteAssignmentCommandHandler.Handle")
	uow := h.uowFactory.Create()
	defer func() { op.end(err, uow) }()

	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	s := storesOf(uow)

	a, _, err := lockAssignment(ctx, s, command.AssignmentID())
	if err != nil {
		return err
	}

	if err := releaseResources(ctx, s, a); err != nil {
		return err
	}

	active, err := s.ledger.FindActiveForRequest(ctx, a.RequestID())
	if err != nil {
		return err
	}
	if active == nil || active.ID().IsEqual(a.ID()) {
		if err := s.requests.SetStatus(ctx, a.RequestID(), servicerequest.Pending); err != nil {
			return err
		}
	}

	if err := s.ledger.Delete(ctx, a.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
