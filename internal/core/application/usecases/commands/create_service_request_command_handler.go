package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/servicerequest"
)

// CreateServiceRequestCommandHandler is the intake path for new requests.
type CreateServiceRequestCommandHandler struct {
	uowFactory ServiceRequestUoWFactory
	recorder   Recorder
}

// NewCreateServiceRequestCommandHandler creates the handler. recorder may be nil.
func NewCreateServiceRequestCommandHandler(
	uowFactory ServiceRequestUoWFactory,
	recorder Recorder,
) CreateServiceRequestCommandHandler {
	return CreateServiceRequestCommandHandler{
		uowFactory: uowFactory,
		recorder:   recorder,
	}
}

// Handle stores the request and returns its id.
func (h CreateServiceRequestCommandHandler) Handle(
	ctx context.Context,
	command CreateServiceRequestCommand,
) (id kernel.ID, err error) {
	if err := command.Validate(); err != nil {
		return kernel.ID{}, err
	}

	ctx, op := startOperation(ctx, h.recorder, "create_service_request", "CreateServiceRequestCommandHandler.Handle")
	defer func() { op.end(err, nil) }()

	req, err := servicerequest.NewServiceRequest(command.Details())
	if err != nil {
		return kernel.ID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.ID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	id, err = uow.ServiceRequestRepository().Create(ctx, req)
	if err != nil {
		return kernel.ID{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	return id, nil
}
