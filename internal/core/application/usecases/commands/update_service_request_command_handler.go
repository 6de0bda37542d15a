package commands

import (
	"context"
)

// UpdateServiceRequestCommandHandler applies field edits to a request.
type UpdateServiceRequestCommandHandler struct {
	uowFactory ServiceRequestUoWFactory
	recorder   Recorder
}

// NewUpdateServiceRequestCommandHandler creates the handler. recorder may be nil.
func NewUpdateServiceRequestCommandHandler(
	uowFactory ServiceRequestUoWFactory,
	recorder Recorder,
) UpdateServiceRequestCommandHandler {
	return UpdateServiceRequestCommandHandler{
		uowFactory: uowFactory,
		recorder:   recorder,
	}
}

// Handle loads the request, applies the patch and stores the changed fields.
// Returns an ObjectNotFoundError if the request does not exist.
func (h UpdateServiceRequestCommandHandler) Handle(ctx context.Context, command UpdateServiceRequestCommand) (err error) {
	if err := command.Validate(); err != nil {
		return err
	}

	ctx, op := startOperation(ctx, h.recorder, "update_service_request", "UpdateServiceRequestCommandHandler.Handle")
	defer func() { op.end(err, nil) }()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ServiceRequestRepository()

	req, err := repo.Get(ctx, command.RequestID())
	if err != nil {
		return err
	}

	if err := req.Edit(command.Patch()); err != nil {
		return err
	}

	if err := repo.UpdateFields(ctx, req.ID(), command.Patch()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
