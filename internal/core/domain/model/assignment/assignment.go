package assignment

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrAssignmentIsNotConstructed is returned when an Assignment was not created
	// through NewAssignment or RestoreAssignment.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")
	// ErrScheduledDateIsRequired is returned for a zero scheduled date.
	ErrScheduledDateIsRequired = errs.NewValueIsRequiredError("scheduled_date")
)

// Transition records a status change applied to an assignment.
type Transition struct {
	From Status
	To   Status
}

// Changed reports whether the status actually moved.
func (t Transition) Changed() bool {
	return t.From != t.To
}

// ReleasesResources reports whether the transition ends the assignment's claim
// on its driver and vehicle.
func (t Transition) ReleasesResources() bool {
	return t.Changed() && t.From.IsActive() && t.To.IsTerminal()
}

// Assignment links one service request to one driver and one vehicle.
//
// Invariants:
//   - Request, driver and vehicle ids are always set
//   - Scheduled date is never zero
//   - Status only changes through ChangeStatus, which enforces the state machine
type Assignment struct {
	id            kernel.ID
	requestID     kernel.ID
	driverID      kernel.ID
	vehicleID     kernel.ID
	scheduledDate time.Time
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
	guard         guard.ConstructorGuard
}

// NewAssignment creates an unsaved assignment in the Scheduled status. It does
// not reserve anything: reservation is done by the coordinator before the
// assignment is inserted.
//
// Example:
//
//	a, err := assignment.NewAssignment(requestID, driverID, vehicleID, when)
//	if err != nil {
//	    return err
//	}
//	id, err := ledger.Insert(ctx, a)
func NewAssignment(requestID, driverID, vehicleID kernel.ID, scheduledDate time.Time) (*Assignment, error) {
	a := &Assignment{
		status: Scheduled,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setReferences(requestID, driverID, vehicleID),
		a.setScheduledDate(scheduledDate),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment reconstructs a stored assignment.
func RestoreAssignment(
	id, requestID, driverID, vehicleID kernel.ID,
	scheduledDate time.Time,
	status Status,
	createdAt, updatedAt time.Time,
) (*Assignment, error) {
	a := &Assignment{
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		a.setReferences(requestID, driverID, vehicleID),
		a.setScheduledDate(scheduledDate),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	a.id = id
	a.status = status
	return a, nil
}

// Validate ensures the assignment was created through a constructor.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

func (a *Assignment) ID() kernel.ID {
	return a.id
}

func (a *Assignment) RequestID() kernel.ID {
	return a.requestID
}

func (a *Assignment) DriverID() kernel.ID {
	return a.driverID
}

func (a *Assignment) VehicleID() kernel.ID {
	return a.vehicleID
}

func (a *Assignment) ScheduledDate() time.Time {
	return a.scheduledDate
}

func (a *Assignment) Status() Status {
	return a.status
}

func (a *Assignment) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Assignment) UpdatedAt() time.Time {
	return a.updatedAt
}

// IsActive reports whether the assignment holds its driver and vehicle.
func (a *Assignment) IsActive() bool {
	return a.status.IsActive()
}

// ChangeStatus moves the assignment to next and reports the transition. On
// error the assignment is left unchanged.
func (a *Assignment) ChangeStatus(next Status) (Transition, error) {
	to, err := a.status.TransitionTo(next)
	if err != nil {
		return Transition{}, err
	}

	t := Transition{From: a.status, To: to}
	a.status = to
	return t, nil
}

// Reschedule changes the scheduled date of an active assignment.
func (a *Assignment) Reschedule(date time.Time) error {
	if a.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"scheduled_date",
			fmt.Errorf("assignment is %s and cannot be rescheduled", a.status),
		)
	}
	return a.setScheduledDate(date)
}

func (a *Assignment) setReferences(requestID, driverID, vehicleID kernel.ID) error {
	if err := errors.Join(
		requireRef("request_id", requestID),
		requireRef("driver_id", driverID),
		requireRef("vehicle_id", vehicleID),
	); err != nil {
		return err
	}

	a.requestID = requestID
	a.driverID = driverID
	a.vehicleID = vehicleID
	return nil
}

func (a *Assignment) setScheduledDate(date time.Time) error {
	if date.IsZero() {
		return ErrScheduledDateIsRequired
	}
	a.scheduledDate = date
	return nil
}

func requireRef(param string, id kernel.ID) error {
	if id.Validate() != nil {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
