package queries

import (
	"context"
	"database/sql"

	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

const assignmentColumns = `
	id,
	request_id,
	driver_id,
	vehicle_id,
	scheduled_date,
	status,
	created_at,
	updated_at`

// GetAssignmentQueryHandler reads one row of the assignments table.
type GetAssignmentQueryHandler struct {
	db *gorm.DB
}

func NewGetAssignmentQueryHandler(db *gorm.DB) GetAssignmentQueryHandler {
	return GetAssignmentQueryHandler{db: db}
}

// Handle returns the assignment or an ObjectNotFoundError.
func (h GetAssignmentQueryHandler) Handle(ctx context.Context, query GetAssignmentQuery) (*AssignmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+assignmentColumns+`
		FROM assignments
		WHERE id = ?
	`, query.AssignmentID().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError(ports.EntityAssignment, query.AssignmentID().Int64())
	}

	a, err := scanAssignment(rows)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func scanAssignment(rows *sql.Rows) (AssignmentResponse, error) {
	var a AssignmentResponse
	err := rows.Scan(
		&a.ID,
		&a.RequestID,
		&a.DriverID,
		&a.VehicleID,
		&a.ScheduledDate,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}
