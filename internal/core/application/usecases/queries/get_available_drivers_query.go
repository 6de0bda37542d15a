package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetAvailableDriversQueryIsNotConstructed = errors.New(
	"GetAvailableDriversQuery must be created via NewGetAvailableDriversQuery constructor",
)

// GetAvailableDriversQuery lists drivers whose status is available, ordered
// by name.
//
// Example:
//
//	drivers, err := handler.Handle(ctx, NewGetAvailableDriversQuery())
//	if err != nil {
//	    return fmt.Errorf("failed to list drivers: %w", err)
//	}
type GetAvailableDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableDriversQuery creates the parameterless query.
func NewGetAvailableDriversQuery() GetAvailableDriversQuery {
	return GetAvailableDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDriversQueryIsNotConstructed)
}

// DriverResponse is the read model of a driver.
type DriverResponse struct {
	ID            int64
	Name          string
	Phone         string
	Email         *string
	LicenseNumber string
	Status        string
}
