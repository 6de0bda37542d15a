// Package assignmentrepo persists assignments with GORM. It implements the
// assignment ledger used by the allocation coordinator.
package assignmentrepo

import (
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/resource"
)

// AssignmentDTO is the row layout of the assignments table. Foreign keys and
// the partial unique indexes on active rows are created by the schema migration.
type AssignmentDTO struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	RequestID     int64     `gorm:"not null;index"`
	DriverID      int64     `gorm:"not null;index"`
	VehicleID     int64     `gorm:"not null;index"`
	ScheduledDate time.Time `gorm:"not null;index"`
	Status        string    `gorm:"type:text;not null;default:scheduled;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (AssignmentDTO) TableName() string {
	return "assignments"
}

// ActiveStatuses are the stored literals of active assignments.
func ActiveStatuses() []string {
	return []string{assignment.Scheduled.String(), assignment.InProgress.String()}
}

// ResourceColumn returns the column referencing a resource of the given kind.
func ResourceColumn(kind resource.Kind) string {
	if kind == resource.KindVehicle {
		return "vehicle_id"
	}
	return "driver_id"
}

func fromDomain(a *assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:            a.ID().Int64(),
		RequestID:     a.RequestID().Int64(),
		DriverID:      a.DriverID().Int64(),
		VehicleID:     a.VehicleID().Int64(),
		ScheduledDate: a.ScheduledDate(),
		Status:        a.Status().String(),
	}
}

// ToDomain converts a stored row into an Assignment.
func ToDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	ids := make([]kernel.ID, 0, 4)
	for _, raw := range []int64{dto.ID, dto.RequestID, dto.DriverID, dto.VehicleID} {
		id, err := kernel.NewID(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return assignment.RestoreAssignment(
		ids[0], ids[1], ids[2], ids[3],
		dto.ScheduledDate,
		assignment.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
