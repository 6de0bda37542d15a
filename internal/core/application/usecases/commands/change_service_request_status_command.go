package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/servicerequest"
	"dispatch/internal/pkg/guard"
)

var ErrChangeServiceRequestStatusCommandIsNotConstructed = errors.New(
	"ChangeServiceRequestStatusCommand must be created via NewChangeServiceRequestStatusCommand constructor",
)

// ChangeServiceRequestStatusCommand sets the status of a service request and
// cascades it to the request's active assignment.
type ChangeServiceRequestStatusCommand struct {
	requestID kernel.ID
	status    servicerequest.Status

	guard guard.ConstructorGuard
}

func NewChangeServiceRequestStatusCommand(
	requestID kernel.ID,
	status servicerequest.Status,
) (ChangeServiceRequestStatusCommand, error) {
	if err := errors.Join(requestID.Validate(), status.Validate()); err != nil {
		return ChangeServiceRequestStatusCommand{}, err
	}

	return ChangeServiceRequestStatusCommand{
		requestID: requestID,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeServiceRequestStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeServiceRequestStatusCommandIsNotConstructed)
}

func (c ChangeServiceRequestStatusCommand) RequestID() kernel.ID {
	return c.requestID
}

func (c ChangeServiceRequestStatusCommand) Status() servicerequest.Status {
	return c.status
}
