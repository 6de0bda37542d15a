// Package resourcerepo persists drivers and vehicles with GORM and implements
// the resource directory: reservation and release of their availability.
package resourcerepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/resource"
)

// DriverDTO is the row layout of the drivers table.
type DriverDTO struct {
	ID            int64   `gorm:"primaryKey;autoIncrement"`
	Name          string  `gorm:"size:100;not null"`
	Phone         string  `gorm:"size:20;not null"`
	Email         *string `gorm:"size:100"`
	LicenseNumber string  `gorm:"size:50;not null;uniqueIndex"`
	Status        string  `gorm:"type:text;not null;default:available;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (DriverDTO) TableName() string {
	return "drivers"
}

// VehicleDTO is the row layout of the vehicles table.
type VehicleDTO struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Model       string  `gorm:"size:100;not null"`
	PlateNumber string  `gorm:"size:20;not null;uniqueIndex"`
	Year        int     `gorm:"not null"`
	Capacity    *string `gorm:"size:50"`
	Status      string  `gorm:"type:text;not null;default:available;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (VehicleDTO) TableName() string {
	return "vehicles"
}

// modelFor returns the GORM model of the kind's table.
func modelFor(kind resource.Kind) any {
	if kind == resource.KindVehicle {
		return &VehicleDTO{}
	}
	return &DriverDTO{}
}

func driverFromDomain(d *resource.Driver) DriverDTO {
	return DriverDTO{
		Name:          d.Name(),
		Phone:         d.Phone(),
		Email:         d.Email(),
		LicenseNumber: d.LicenseNumber(),
		Status:        d.Status().String(),
	}
}

// DriverToDomain converts a stored row into a Driver.
func DriverToDomain(dto DriverDTO) (*resource.Driver, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	return resource.RestoreDriver(
		id, dto.Name, dto.Phone, dto.Email, dto.LicenseNumber,
		resource.Status(dto.Status), dto.CreatedAt, dto.UpdatedAt,
	)
}

func vehicleFromDomain(v *resource.Vehicle) VehicleDTO {
	return VehicleDTO{
		Model:       v.Model(),
		PlateNumber: v.PlateNumber(),
		Year:        v.Year(),
		Capacity:    v.Capacity(),
		Status:      v.Status().String(),
	}
}

// VehicleToDomain converts a stored row into a Vehicle.
func VehicleToDomain(dto VehicleDTO) (*resource.Vehicle, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	return resource.RestoreVehicle(
		id, dto.Model, dto.PlateNumber, dto.Year, dto.Capacity,
		resource.Status(dto.Status), dto.CreatedAt, dto.UpdatedAt,
	)
}
