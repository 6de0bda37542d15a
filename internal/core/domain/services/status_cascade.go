package services

import (
	"fmt"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/servicerequest"
	"dispatch/internal/pkg/errs"
)

// StatusCascade derives the status changes that follow from a change on a
// linked entity.
//
// Business rules:
//   - A request is assigned or in_progress exactly while it has an active assignment
//   - A completed or cancelled request has no active assignment
//   - An assignment entering completed or cancelled releases its driver and vehicle
//   - A request that is already completed or cancelled is never reopened by an
//     assignment change
//
// Example usage:
//
//	cascade := services.NewStatusCascade()
//	tr, _ := a.ChangeStatus(assignment.Completed)
//	if cascade.ReleasesResources(tr) {
//	    // release driver and vehicle
//	}
//	if next, ok := cascade.RequestStatusFor(tr.To, req.Status()); ok {
//	    // persist next on the request
//	}
type StatusCascade struct{}

// NewStatusCascade creates a StatusCascade.
func NewStatusCascade() StatusCascade {
	return StatusCascade{}
}

// RequestStatusFor maps an assignment status onto its owning request.
//
// Returns:
//   - (assigned, true) for scheduled
//   - (in_progress, true) for in_progress
//   - (completed|cancelled, true) for the same terminal status, unless the
//     request is already terminal
//   - (current, false) when the request does not change
func (StatusCascade) RequestStatusFor(
	assignmentStatus assignment.Status,
	current servicerequest.Status,
) (servicerequest.Status, bool) {
	var next servicerequest.Status

	switch assignmentStatus {
	case assignment.Scheduled:
		next = servicerequest.Assigned
	case assignment.InProgress:
		next = servicerequest.InProgress
	case assignment.Completed:
		next = servicerequest.Completed
	case assignment.Cancelled:
		next = servicerequest.Cancelled
	default:
		return current, false
	}

	if assignmentStatus.IsTerminal() && current.IsTerminal() {
		return current, false
	}

	return next, next != current
}

// ReleasesResources reports whether a transition returns the assignment's
// driver and vehicle to the directory.
func (StatusCascade) ReleasesResources(t assignment.Transition) bool {
	return t.ReleasesResources()
}

// AssignmentStatusFor maps a request status onto its active assignment.
// pending has no mapping: a request returns to pending only through deletion
// of its assignment.
func (StatusCascade) AssignmentStatusFor(requestStatus servicerequest.Status) (assignment.Status, bool) {
	switch requestStatus {
	case servicerequest.Assigned:
		return assignment.Scheduled, true
	case servicerequest.InProgress:
		return assignment.InProgress, true
	case servicerequest.Completed:
		return assignment.Completed, true
	case servicerequest.Cancelled:
		return assignment.Cancelled, true
	case servicerequest.Pending:
		return "", false
	default:
		return "", false
	}
}

// CheckRequestStatus verifies that a request status agrees with whether the
// request has an active assignment. Disagreement is reported as a conflict.
func (StatusCascade) CheckRequestStatus(status servicerequest.Status, hasActiveAssignment bool) error {
	if err := status.Validate(); err != nil {
		return err
	}

	if status.RequiresActiveAssignment() && !hasActiveAssignment {
		return errs.NewConflictError(fmt.Sprintf("request cannot be %s without an active assignment", status))
	}

	if !status.RequiresActiveAssignment() && hasActiveAssignment {
		return errs.NewConflictError(fmt.Sprintf("request cannot be %s while it has an active assignment", status))
	}

	return nil
}
