package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetAvailableVehiclesQueryIsNotConstructed = errors.New(
	"GetAvailableVehiclesQuery must be created via NewGetAvailableVehiclesQuery constructor",
)

// GetAvailableVehiclesQuery lists vehicles whose status is available, ordered
// by model.
type GetAvailableVehiclesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAvailableVehiclesQuery() GetAvailableVehiclesQuery {
	return GetAvailableVehiclesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableVehiclesQueryIsNotConstructed)
}

// VehicleResponse is the read model of a vehicle.
type VehicleResponse struct {
	ID          int64
	Model       string
	PlateNumber string
	Year        int
	Capacity    *string
	Status      string
}
