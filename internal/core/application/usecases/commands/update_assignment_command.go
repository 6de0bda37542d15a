package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrUpdateAssignmentCommandIsNotConstructed = errors.New(
		"UpdateAssignmentCommand must be created via NewUpdateAssignmentCommand constructor",
	)
	ErrNothingToUpdate = errs.NewValueIsRequiredError("status or scheduled_date")
)

// UpdateAssignmentCommand changes the status and/or the scheduled date of an
// assignment. At least one of them must be set.
type UpdateAssignmentCommand struct {
	assignmentID  kernel.ID
	status        *assignment.Status
	scheduledDate *time.Time

	guard guard.ConstructorGuard
}

// NewUpdateAssignmentCommand creates the command. A nil status or date leaves
// that field unchanged.
func NewUpdateAssignmentCommand(
	assignmentID kernel.ID,
	status *assignment.Status,
	scheduledDate *time.Time,
) (UpdateAssignmentCommand, error) {
	c := UpdateAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if status == nil && scheduledDate == nil {
		return UpdateAssignmentCommand{}, ErrNothingToUpdate
	}

	if err := errors.Join(
		c.setAssignmentID(assignmentID),
		c.setStatus(status),
		c.setScheduledDate(scheduledDate),
	); err != nil {
		return UpdateAssignmentCommand{}, err
	}

	return c, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAssignmentCommandIsNotConstructed)
}

func (c UpdateAssignmentCommand) AssignmentID() kernel.ID {
	return c.assignmentID
}

// Status returns the requested status, or nil when the status is not changed.
func (c UpdateAssignmentCommand) Status() *assignment.Status {
	return c.status
}

// ScheduledDate returns the requested date, or nil when the date is not changed.
func (c UpdateAssignmentCommand) ScheduledDate() *time.Time {
	return c.scheduledDate
}

func (c *UpdateAssignmentCommand) setAssignmentID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.assignmentID = id
	return nil
}

func (c *UpdateAssignmentCommand) setStatus(status *assignment.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}

	s := *status
	c.status = &s
	return nil
}

func (c *UpdateAssignmentCommand) setScheduledDate(date *time.Time) error {
	if date == nil {
		return nil
	}
	if date.IsZero() {
		return assignment.ErrScheduledDateIsRequired
	}

	d := *date
	c.scheduledDate = &d
	return nil
}
