package queries

import (
	"context"
	"database/sql"

	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

const serviceRequestColumns = `
	id,
	customer_name,
	customer_email,
	customer_phone,
	service_type,
	pickup_address,
	delivery_address,
	preferred_date,
	special_instructions,
	status,
	created_at,
	updated_at`

// GetServiceRequestQueryHandler reads one request from the service_requests table.
type GetServiceRequestQueryHandler struct {
	db *gorm.DB
}

func NewGetServiceRequestQueryHandler(db *gorm.DB) GetServiceRequestQueryHandler {
	return GetServiceRequestQueryHandler{db: db}
}

// Handle returns the request or an ObjectNotFoundError.
func (h GetServiceRequestQueryHandler) Handle(
	ctx context.Context,
	query GetServiceRequestQuery,
) (*ServiceRequestResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+serviceRequestColumns+`
		FROM service_requests
		WHERE id = ?
	`, query.RequestID().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError(ports.EntityServiceRequest, query.RequestID().Int64())
	}

	req, err := scanServiceRequest(rows)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func scanServiceRequest(rows *sql.Rows) (ServiceRequestResponse, error) {
	var req ServiceRequestResponse
	err := rows.Scan(
		&req.ID,
		&req.CustomerName,
		&req.CustomerEmail,
		&req.CustomerPhone,
		&req.ServiceType,
		&req.PickupAddress,
		&req.DeliveryAddress,
		&req.PreferredDate,
		&req.SpecialInstructions,
		&req.Status,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	return req, err
}
