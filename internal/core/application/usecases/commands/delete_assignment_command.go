package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrDeleteAssignmentCommandIsNotConstructed = errors.New(
	"DeleteAssignmentCommand must be created via NewDeleteAssignmentCommand constructor",
)

// DeleteAssignmentCommand removes an assignment and undoes its effects.
type DeleteAssignmentCommand struct {
	assignmentID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteAssignmentCommand(assignmentID kernel.ID) (DeleteAssignmentCommand, error) {
	if err := assignmentID.Validate(); err != nil {
		return DeleteAssignmentCommand{}, err
	}

	return DeleteAssignmentCommand{
		assignmentID: assignmentID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAssignmentCommandIsNotConstructed)
}

func (c DeleteAssignmentCommand) AssignmentID() kernel.ID {
	return c.assignmentID
}
