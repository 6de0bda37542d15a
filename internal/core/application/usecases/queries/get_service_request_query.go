// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models built straight from SQL rows and never go
// through the unit of work.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetServiceRequestQueryIsNotConstructed = errors.New(
	"GetServiceRequestQuery must be created via NewGetServiceRequestQuery constructor",
)

// GetServiceRequestQuery loads one service request by id.
//
// Example:
//
//	query, err := NewGetServiceRequestQuery(id)
//	if err != nil {
//	    return err
//	}
//	req, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // 404
//	}
type GetServiceRequestQuery struct {
	requestID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetServiceRequestQuery(requestID kernel.ID) (GetServiceRequestQuery, error) {
	if err := requestID.Validate(); err != nil {
		return GetServiceRequestQuery{}, err
	}
	return GetServiceRequestQuery{requestID: requestID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetServiceRequestQuery) Validate() error {
	return q.guard.Validate(ErrGetServiceRequestQueryIsNotConstructed)
}

func (q GetServiceRequestQuery) RequestID() kernel.ID {
	return q.requestID
}

// ServiceRequestResponse is the read model of a service request.
type ServiceRequestResponse struct {
	ID                  int64
	CustomerName        string
	CustomerEmail       string
	CustomerPhone       string
	ServiceType         string
	PickupAddress       string
	DeliveryAddress     string
	PreferredDate       time.Time
	SpecialInstructions *string
	Status              string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
