package servicerequest

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status is the lifecycle state of a service request. The literal values are
// stored and exchanged verbatim.
//
//	pending ──> assigned ──> in_progress ──> completed
//	   │           │              │
//	   └───────────┴──────────────┴────────> cancelled
//
// A request is assigned or in_progress exactly while it has an active
// assignment. The transitions themselves are driven by the coordinator, so
// Status only validates values and classifies them.
type Status string

const (
	Pending    Status = "pending"
	Assigned   Status = "assigned"
	InProgress Status = "in_progress"
	Completed  Status = "completed"
	Cancelled  Status = "cancelled"
)

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Assigned, InProgress, Completed, Cancelled}
}

// ParseStatus converts an external literal into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate returns a ValueIsInvalidError for anything outside the five literals.
func (s Status) Validate() error {
	switch s {
	case Pending, Assigned, InProgress, Completed, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid request status", string(s)))
	}
}

// String returns the stored literal.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the request is completed or cancelled.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// RequiresActiveAssignment reports whether the status is only valid while the
// request has an active assignment.
func (s Status) RequiresActiveAssignment() bool {
	return s == Assigned || s == InProgress
}
