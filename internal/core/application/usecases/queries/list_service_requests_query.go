package queries

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/servicerequest"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrListServiceRequestsQueryIsNotConstructed = errors.New(
	"ListServiceRequestsQuery must be created via NewListServiceRequestsQuery constructor",
)

// ListServiceRequestsQuery lists requests, newest first. Both filters are
// optional exact matches.
type ListServiceRequestsQuery struct {
	status      *servicerequest.Status
	serviceType *string

	guard guard.ConstructorGuard
}

// NewListServiceRequestsQuery builds the query. A nil filter matches every row.
func NewListServiceRequestsQuery(
	status *servicerequest.Status,
	serviceType *string,
) (ListServiceRequestsQuery, error) {
	q := ListServiceRequestsQuery{guard: guard.NewConstructorGuard()}

	if status != nil {
		if err := status.Validate(); err != nil {
			return ListServiceRequestsQuery{}, err
		}
		s := *status
		q.status = &s
	}

	if serviceType != nil {
		if strings.TrimSpace(*serviceType) == "" {
			return ListServiceRequestsQuery{}, errs.NewValueIsRequiredError("service_type")
		}
		st := *serviceType
		q.serviceType = &st
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListServiceRequestsQuery) Validate() error {
	return q.guard.Validate(ErrListServiceRequestsQueryIsNotConstructed)
}

func (q ListServiceRequestsQuery) Status() (servicerequest.Status, bool) {
	if q.status == nil {
		return "", false
	}
	return *q.status, true
}

func (q ListServiceRequestsQuery) ServiceType() (string, bool) {
	if q.serviceType == nil {
		return "", false
	}
	return *q.serviceType, true
}
