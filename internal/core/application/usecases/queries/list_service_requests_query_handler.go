package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListServiceRequestsQueryHandler reads the service_requests table.
type ListServiceRequestsQueryHandler struct {
	db *gorm.DB
}

func NewListServiceRequestsQueryHandler(db *gorm.DB) ListServiceRequestsQueryHandler {
	return ListServiceRequestsQueryHandler{db: db}
}

// Handle returns the matching requests ordered by creation time, newest first.
// Ties are broken by id so the order is stable.
func (h ListServiceRequestsQueryHandler) Handle(
	ctx context.Context,
	query ListServiceRequestsQuery,
) ([]ServiceRequestResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Table("service_requests").
		Select(serviceRequestColumns)
	if status, ok := query.Status(); ok {
		tx = tx.Where("status = ?", status.String())
	}
	if serviceType, ok := query.ServiceType(); ok {
		tx = tx.Where("service_type = ?", serviceType)
	}

	rows, err := tx.Order("created_at DESC").Order("id DESC").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]ServiceRequestResponse, 0)
	for rows.Next() {
		req, err := scanServiceRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
