package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListAssignmentsQueryHandler reads the assignments table.
type ListAssignmentsQueryHandler struct {
	db *gorm.DB
}

func NewListAssignmentsQueryHandler(db *gorm.DB) ListAssignmentsQueryHandler {
	return ListAssignmentsQueryHandler{db: db}
}

// Handle returns all assignments by scheduled date, newest first.
func (h ListAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query ListAssignmentsQuery,
) ([]AssignmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + assignmentColumns + `
		FROM assignments
		ORDER BY scheduled_date DESC, id DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]AssignmentResponse, 0)
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}
