package queries

import (
	"errors"
	"strings"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrTrackServiceRequestsQueryIsNotConstructed = errors.New(
	"TrackServiceRequestsQuery must be created via NewTrackServiceRequestsQuery constructor",
)

// TrackServiceRequestsQuery finds a customer's requests by the email and phone
// they were filed with. Both must match exactly.
type TrackServiceRequestsQuery struct {
	email string
	phone string

	guard guard.ConstructorGuard
}

func NewTrackServiceRequestsQuery(email, phone string) (TrackServiceRequestsQuery, error) {
	var err error
	if strings.TrimSpace(email) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("email"))
	}
	if strings.TrimSpace(phone) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("phone"))
	}
	if err != nil {
		return TrackServiceRequestsQuery{}, err
	}

	return TrackServiceRequestsQuery{
		email: email,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackServiceRequestsQuery) Validate() error {
	return q.guard.Validate(ErrTrackServiceRequestsQueryIsNotConstructed)
}

func (q TrackServiceRequestsQuery) Email() string {
	return q.email
}

func (q TrackServiceRequestsQuery) Phone() string {
	return q.phone
}

// TrackedServiceRequestResponse is a request together with its latest
// assignment, if any.
type TrackedServiceRequestResponse struct {
	ServiceRequestResponse

	Assignment *TrackedAssignmentResponse
}

// TrackedAssignmentResponse carries what a customer sees of an assignment.
type TrackedAssignmentResponse struct {
	ID            int64
	ScheduledDate time.Time
	Status        string
	DriverName    string
	DriverPhone   string
	VehicleModel  string
	VehiclePlate  string
}
