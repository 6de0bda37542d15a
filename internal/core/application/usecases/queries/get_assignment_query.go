package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetAssignmentQueryIsNotConstructed = errors.New(
	"GetAssignmentQuery must be created via NewGetAssignmentQuery constructor",
)

// GetAssignmentQuery loads one assignment by id.
type GetAssignmentQuery struct {
	assignmentID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetAssignmentQuery(assignmentID kernel.ID) (GetAssignmentQuery, error) {
	if err := assignmentID.Validate(); err != nil {
		return GetAssignmentQuery{}, err
	}
	return GetAssignmentQuery{assignmentID: assignmentID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAssignmentQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentQueryIsNotConstructed)
}

func (q GetAssignmentQuery) AssignmentID() kernel.ID {
	return q.assignmentID
}

// AssignmentResponse is the read model of an assignment.
type AssignmentResponse struct {
	ID            int64
	RequestID     int64
	DriverID      int64
	VehicleID     int64
	ScheduledDate time.Time
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
