package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrAllocateCommandIsNotConstructed = errors.New(
	"AllocateCommand must be created via NewAllocateCommand constructor",
)

// AllocateCommand asks for a driver and a vehicle to be assigned to a service
// request. The caller names both resources; the handler only checks and
// applies that choice.
//
// Example:
//
//	cmd, err := NewAllocateCommand(requestID, driverID, vehicleID, when)
//	if err != nil {
//	    return fmt.Errorf("invalid allocation: %w", err)
//	}
//	id, err := handler.Handle(ctx, cmd)
type AllocateCommand struct {
	requestID     kernel.ID
	driverID      kernel.ID
	vehicleID     kernel.ID
	scheduledDate time.Time

	guard guard.ConstructorGuard
}

// NewAllocateCommand creates an allocation command. All ids and the scheduled
// date are required.
func NewAllocateCommand(
	requestID, driverID, vehicleID kernel.ID,
	scheduledDate time.Time,
) (AllocateCommand, error) {
	c := AllocateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(&c.requestID, "request_id", requestID),
		c.setID(&c.driverID, "driver_id", driverID),
		c.setID(&c.vehicleID, "vehicle_id", vehicleID),
		c.setScheduledDate(scheduledDate),
	); err != nil {
		return AllocateCommand{}, err
	}

	return c, nil
}

// Validate ensures the command was created through the constructor.
func (c AllocateCommand) Validate() error {
	return c.guard.Validate(ErrAllocateCommandIsNotConstructed)
}

func (c AllocateCommand) RequestID() kernel.ID {
	return c.requestID
}

func (c AllocateCommand) DriverID() kernel.ID {
	return c.driverID
}

func (c AllocateCommand) VehicleID() kernel.ID {
	return c.vehicleID
}

func (c AllocateCommand) ScheduledDate() time.Time {
	return c.scheduledDate
}

func (c *AllocateCommand) setID(dst *kernel.ID, param string, id kernel.ID) error {
	if id.Validate() != nil {
		return errs.NewValueIsRequiredError(param)
	}

	*dst = id
	return nil
}

func (c *AllocateCommand) setScheduledDate(date time.Time) error {
	if date.IsZero() {
		return assignment.ErrScheduledDateIsRequired
	}

	c.scheduledDate = date
	return nil
}
