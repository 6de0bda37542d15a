package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/servicerequest"
	"dispatch/internal/pkg/guard"
)

var ErrCreateServiceRequestCommandIsNotConstructed = errors.New(
	"CreateServiceRequestCommand must be created via NewCreateServiceRequestCommand constructor",
)

// CreateServiceRequestCommand registers a new customer request. The request
// starts in pending.
//
// Example:
//
//	cmd, err := NewCreateServiceRequestCommand(servicerequest.Details{
//	    CustomerName:    "Alice Thompson",
//	    CustomerEmail:   "alice@example.com",
//	    CustomerPhone:   "555-1001",
//	    ServiceType:     "Package Delivery",
//	    PickupAddress:   "123 Main St",
//	    DeliveryAddress: "456 Oak Ave",
//	    PreferredDate:   tomorrow,
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid request: %w", err)
//	}
//	id, err := handler.Handle(ctx, cmd)
type CreateServiceRequestCommand struct {
	details servicerequest.Details

	guard guard.ConstructorGuard
}

// NewCreateServiceRequestCommand validates the details and creates the command.
func NewCreateServiceRequestCommand(details servicerequest.Details) (CreateServiceRequestCommand, error) {
	if err := details.Validate(); err != nil {
		return CreateServiceRequestCommand{}, err
	}

	return CreateServiceRequestCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateServiceRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateServiceRequestCommandIsNotConstructed)
}

func (c CreateServiceRequestCommand) Details() servicerequest.Details {
	return c.details
}
