package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetVehicleQueryIsNotConstructed = errors.New(
	"GetVehicleQuery must be created via NewGetVehicleQuery constructor",
)

// GetVehicleQuery loads one vehicle by id.
type GetVehicleQuery struct {
	vehicleID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetVehicleQuery(vehicleID kernel.ID) (GetVehicleQuery, error) {
	if err := vehicleID.Validate(); err != nil {
		return GetVehicleQuery{}, err
	}
	return GetVehicleQuery{vehicleID: vehicleID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVehicleQuery) Validate() error {
	return q.guard.Validate(ErrGetVehicleQueryIsNotConstructed)
}

func (q GetVehicleQuery) VehicleID() kernel.ID {
	return q.vehicleID
}
