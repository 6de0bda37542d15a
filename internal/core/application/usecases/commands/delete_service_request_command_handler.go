package commands

import "context"

// DeleteServiceRequestCommandHandler deletes a request. An active assignment
// is released first, then the row is removed and its assignments with it.
type DeleteServiceRequestCommandHandler struct {
	uowFactory UoWFactory
	recorder   Recorder
}

// NewDeleteServiceRequestCommandHandler creates the handler. recorder may be nil.
func NewDeleteServiceRequestCommandHandler(uowFactory UoWFactory, recorder Recorder) DeleteServiceRequestCommandHandler {
	return DeleteServiceRequestCommandHandler{
		uowFactory: uowFactory,
		recorder:   recorder,
	}
}

// Handle deletes the request. Returns an ObjectNotFoundError if it does not exist.
func (h DeleteServiceRequestCommandHandler) Handle(ctx context.Context, command DeleteServiceRequestCommand) (err error) {
	if err := command.Validate(); err != nil {
		return err
	}

	ctx, op := startOperation(ctx, h.recorder, "delete_service_request", "DeleteServiceRequestCommandHandler.Handle")
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
	if active != nil {
		if err := releaseResources(ctx, s, active); err != nil {
			return err
		}
	}

	if err := s.requests.Delete(ctx, command.RequestID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
