package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrDeleteServiceRequestCommandIsNotConstructed = errors.New(
	"DeleteServiceRequestCommand must be created via NewDeleteServiceRequestCommand constructor",
)

// DeleteServiceRequestCommand removes a request and its assignments.
type DeleteServiceRequestCommand struct {
	requestID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteServiceRequestCommand(requestID kernel.ID) (DeleteServiceRequestCommand, error) {
	if err := requestID.Validate(); err != nil {
		return DeleteServiceRequestCommand{}, err
	}

	return DeleteServiceRequestCommand{
		requestID: requestID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteServiceRequestCommand) Validate() error {
	return c.guard.Validate(ErrDeleteServiceRequestCommandIsNotConstructed)
}

func (c DeleteServiceRequestCommand) RequestID() kernel.ID {
	return c.requestID
}
