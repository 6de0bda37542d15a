package commands

import (
	"context"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/services"
)

// UpdateAssignmentCommandHandler advances an assignment through its state
// machine and cascades the change.
//
// Cascade:
//   - into in_progress: the request becomes in_progress
//   - into completed or cancelled: the driver and vehicle are released and the
//     request takes the same status unless it is already completed or cancelled
//
// Repeating the current status of an active assignment changes nothing.
type UpdateAssignmentCommandHandler struct {
	uowFactory UoWFactory
	recorder   Recorder
	cascade    services.StatusCascade
}

// NewUpdateAssignmentCommandHandler creates the handler. recorder may be nil.
func NewUpdateAssignmentCommandHandler(uowFactory UoWFactory, recorder Recorder) UpdateAssignmentCommandHandler {
	return UpdateAssignmentCommandHandler{
		uowFactory: uowFactory,
		recorder:   recorder,
		cascade:    services.NewStatusCascade(),
	}
}

// Handle applies the update. A transition out of completed or cancelled, or
// rescheduling such an assignment, is a validation error.
func (h UpdateAssignmentCommandHandler) Handle(ctx context.Context, command UpdateAssignmentCommand) (err error) {
	if err := command.Validate(); err != nil {
		return err
	}

	ctx, op := startOperation(ctx, h.recorder, "update_assignment", "UpdateAssignmentCommandHandler.Handle")
	uow := h.uowFactory.Create()
	defer func() { op.end(err, uow) }()

	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	s := storesOf(uow)

	a, req, err := lockAssignment(ctx, s, command.AssignmentID())
	if err != nil {
		return err
	}

	if date := command.ScheduledDate(); date != nil {
		if err := a.Reschedule(*date); err != nil {
			return err
		}
	}

	var tr assignment.Transition
	if status := command.Status(); status != nil {
		tr, err = a.ChangeStatus(*status)
		if err != nil {
			return err
		}
	}

	if command.ScheduledDate() != nil || tr.Changed() {
		if err := persistTransition(ctx, s, h.cascade, a, tr); err != nil {
			return err
		}
	}

	if tr.Changed() {
		if err := mirrorRequest(ctx, s, h.cascade, req, tr.To); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
