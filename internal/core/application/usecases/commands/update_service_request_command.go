package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/servicerequest"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateServiceRequestCommandIsNotConstructed = errors.New(
	"UpdateServiceRequestCommand must be created via NewUpdateServiceRequestCommand constructor",
)

// UpdateServiceRequestCommand edits the customer fields of a request. Status
// is not part of the patch.
type UpdateServiceRequestCommand struct {
	requestID kernel.ID
	patch     servicerequest.Patch

	guard guard.ConstructorGuard
}

func NewUpdateServiceRequestCommand(
	requestID kernel.ID,
	patch servicerequest.Patch,
) (UpdateServiceRequestCommand, error) {
	if err := errors.Join(requestID.Validate(), patch.Validate()); err != nil {
		return UpdateServiceRequestCommand{}, err
	}

	return UpdateServiceRequestCommand{
		requestID: requestID,
		patch:     patch,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateServiceRequestCommand) Validate() error {
	return c.guard.Validate(ErrUpdateServiceRequestCommandIsNotConstructed)
}

func (c UpdateServiceRequestCommand) RequestID() kernel.ID {
	return c.requestID
}

func (c UpdateServiceRequestCommand) Patch() servicerequest.Patch {
	return c.patch
}
