package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrListAssignmentsQueryIsNotConstructed = errors.New(
	"ListAssignmentsQuery must be created via NewListAssignmentsQuery constructor",
)

// ListAssignmentsQuery lists every assignment, latest scheduled date first.
type ListAssignmentsQuery struct {
	guard guard.ConstructorGuard
}

func NewListAssignmentsQuery() ListAssignmentsQuery {
	return ListAssignmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrListAssignmentsQueryIsNotConstructed)
}
