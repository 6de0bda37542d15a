package assignment

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an assignment.
//
// State transitions:
//
//	scheduled ──> in_progress ──> completed
//	    │              │
//	    ├──────────────┴──────────> cancelled
//	    └─────────────────────────> completed
//
// scheduled goes straight to completed when a request is closed before the job
// was started. Repeating the current status of an active assignment is a no-op.
type Status string

const (
	// Scheduled is the initial status. The driver and vehicle are reserved.
	Scheduled Status = "scheduled"

	// InProgress means the job has started.
	InProgress Status = "in_progress"

	// Completed is terminal. The driver and vehicle have been released.
	Completed Status = "completed"

	// Cancelled is terminal. The driver and vehicle have been released.
	Cancelled Status = "cancelled"
)

// allowedTransitions lists, for every non-terminal status, the statuses it may
// move to.
//
//nolint:gochecknoglobals // read-only transition table
var allowedTransitions = map[Status][]Status{
	Scheduled:  {InProgress, Completed, Cancelled},
	InProgress: {Completed, Cancelled},
}

// Statuses lists every assignment status.
func Statuses() []Status {
	return []Status{Scheduled, InProgress, Completed, Cancelled}
}

// ParseStatus converts an external literal into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks if the Status value is one of the four literals.
func (s Status) Validate() error {
	switch s {
	case Scheduled, InProgress, Completed, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%q is not a valid assignment status", string(s)),
		)
	}
}

func (s Status) String() string {
	return string(s)
}

// IsActive reports whether the assignment still holds its resources.
func (s Status) IsActive() bool {
	return s == Scheduled || s == InProgress
}

// IsTerminal reports whether the status is completed or cancelled.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// TransitionTo validates a move from s to next and returns the resulting status.
//
// Returns:
//   - (next, nil) for an allowed transition
//   - (s, nil) when next equals an active s
//   - ("", error) for an invalid target, any move out of a terminal status, or a
//     move backwards (in_progress -> scheduled)
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return "", err
	}

	if s.IsTerminal() {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("assignment is %s, no further transitions are allowed", s),
		)
	}

	if s == next {
		return s, nil
	}

	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return next, nil
		}
	}

	return "", errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("cannot move assignment from %s to %s", s, next),
	)
}

// Start transitions to InProgress.
func (s Status) Start() (Status, error) {
	return s.TransitionTo(InProgress)
}

// Complete transitions to Completed.
func (s Status) Complete() (Status, error) {
	return s.TransitionTo(Completed)
}

// Cancel transitions to Cancelled.
func (s Status) Cancel() (Status, error) {
	return s.TransitionTo(Cancelled)
}
