package commands

import (
	"context"

	"dispatch/internal/core/domain/services"
)

// ChangeServiceRequestStatusCommandHandler is the status path of a service
// request. The active assignment, when there is one, follows the request:
// completed and cancelled close it out and release its resources, in_progress
// starts it.
//
// A request without an active assignment may be completed or cancelled, but
// not moved to assigned or in_progress. A request with an active assignment
// cannot go back to pending; deleting the assignment does that.
type ChangeServiceRequestStatusCommandHandler struct {
	uowFactory UoWFactory
	recorder   Recorder
	cascade    services.StatusCascade
}

// NewChangeServiceRequestStatusCommandHandler creates the handler. recorder may be nil.
func NewChangeServiceRequestStatusCommandHandler(
	uowFactory UoWFactory,
	recorder Recorder,
) ChangeServiceRequestStatusCommandHandler {
	return ChangeServiceRequestStatusCommandHandler{
		uowFactory: uowFactory,
		recorder:   recorder,
		cascade:    services.NewStatusCascade(),
	}
}

// Handle sets the request status and cascades it.
func (h ChangeServiceRequestStatusCommandHandler) Handle(
	ctx context.Context,
	command ChangeServiceRequestStatusCommand,
) (err error) {
	if err := command.Validate(); err != nil {
		return err
	}

	ctx, op := startOperation(ctx, h.recorder,
		"change_service_request_status", "ChangeServiceRequestStatusCommandHandler.Handle")
	uow := h.uowFactory.Create()
	defer func() { op.end(err, uow) }()

	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	s := storesOf(uow)

	if _, err := s.requests.GetForUpdate(ctx, command.RequestID()); err != nil {
		return err
	}

	active, err := s.ledger.FindActiveForRequest(ctx, command.RequestID())
	if err != nil {
		return err
	}

	target, cascades := h.cascade.AssignmentStatusFor(command.Status())
	activeAfter := active != nil
	if active != nil && cascades {
		activeAfter = target.IsActive()
	}

	if err := h.cascade.CheckRequestStatus(command.Status(), activeAfter); err != nil {
		return err
	}

	if active != nil && cascades {
		tr, err := active.ChangeStatus(target)
		if err != nil {
			return err
		}
		if tr.Changed() {
			if err := persistTransition(ctx, s, h.cascade, active, tr); err != nil {
				return err
			}
		}
	}

	if err := s.requests.SetStatus(ctx, command.RequestID(), command.Status()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
