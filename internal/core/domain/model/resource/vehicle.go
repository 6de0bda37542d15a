package resource

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	minVehicleYear = 1900
	maxVehicleYear = 2100
)

var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")

// Vehicle is a vehicle that can be allocated to a service request. Capacity is
// free text ("4 passengers", "1000 lbs").
type Vehicle struct {
	id          kernel.ID
	model       string
	plateNumber string
	year        int
	capacity    *string
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
	guard       guard.ConstructorGuard
}

// NewVehicle creates an unsaved vehicle. Plate numbers are unique across vehicles.
func NewVehicle(model, plateNumber string, year int, capacity *string, status Status) (*Vehicle, error) {
	if err := errors.Join(
		requireText("model", model),
		requireText("plate_number", plateNumber),
		validateYear(year),
		KindVehicle.ValidateStatus(status),
	); err != nil {
		return nil, err
	}

	return &Vehicle{
		model:       model,
		plateNumber: plateNumber,
		year:        year,
		capacity:    capacity,
		status:      status,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreVehicle reconstructs a stored vehicle.
func RestoreVehicle(
	id kernel.ID,
	model, plateNumber string,
	year int,
	capacity *string,
	status Status,
	createdAt, updatedAt time.Time,
) (*Vehicle, error) {
	if err := errors.Join(id.Validate(), KindVehicle.ValidateStatus(status)); err != nil {
		return nil, err
	}

	return &Vehicle{
		id:          id,
		model:       model,
		plateNumber: plateNumber,
		year:        year,
		capacity:    capacity,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

func (v *Vehicle) ID() kernel.ID { return v.id }
func (v *Vehicle) Model() string { return v.model }
func (v *Vehicle) PlateNumber() string { return v.plateNumber }
func (v *Vehicle) Year() int { return v.year }
func (v *Vehicle) Capacity() *string { return v.capacity }
func (v *Vehicle) Status() Status { return v.status }
func (v *Vehicle) CreatedAt() time.Time { return v.createdAt }
func (v *Vehicle) UpdatedAt() time.Time { return v.updatedAt }
func (v *Vehicle) IsAvailable() bool { return v.status == Available }

func validateYear(year int) error {
	if year < minVehicleYear || year > maxVehicleYear {
		return errs.NewValueIsOutOfRangeError("year", year, minVehicleYear, maxVehicleYear)
	}
	return nil
}
