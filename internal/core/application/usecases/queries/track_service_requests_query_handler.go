package queries

import (
	"context"
	"time"

	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackServiceRequestsQueryHandler joins service_requests with the latest
// assignment of each request and its driver and vehicle.
type TrackServiceRequestsQueryHandler struct {
	db *gorm.DB
}

func NewTrackServiceRequestsQueryHandler(db *gorm.DB) TrackServiceRequestsQueryHandler {
	return TrackServiceRequestsQueryHandler{db: db}
}

// Handle returns the customer's requests, newest first. An ObjectNotFoundError
// is returned when nothing matches.
func (h TrackServiceRequestsQueryHandler) Handle(
	ctx context.Context,
	query TrackServiceRequestsQuery,
) ([]TrackedServiceRequestResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			sr.id,
			sr.customer_name,
			sr.customer_email,
			sr.customer_phone,
			sr.service_type,
			sr.pickup_address,
			sr.delivery_address,
			sr.preferred_date,
			sr.special_instructions,
			sr.status,
			sr.created_at,
			sr.updated_at,
			a.id,
			a.scheduled_date,
			a.status,
			d.name,
			d.phone,
			v.model,
			v.plate_number
		FROM service_requests sr
		LEFT JOIN LATERAL (
			SELECT id, driver_id, vehicle_id, scheduled_date, status
			FROM assignments
			WHERE request_id = sr.id
			ORDER BY id DESC
			LIMIT 1
		) a ON true
		LEFT JOIN drivers d ON d.id = a.driver_id
		LEFT JOIN vehicles v ON v.id = a.vehicle_id
		WHERE sr.customer_email = ? AND sr.customer_phone = ?
		ORDER BY sr.created_at DESC, sr.id DESC
	`, query.Email(), query.Phone()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tracked := make([]TrackedServiceRequestResponse, 0)
	for rows.Next() {
		var (
			t             TrackedServiceRequestResponse
			assignmentID  *int64
			scheduledDate *time.Time
			status        *string
			driverName    *string
			driverPhone   *string
			vehicleModel  *string
			vehiclePlate  *string
		)
		req := &t.ServiceRequestResponse
		if err := rows.Scan(
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
			&assignmentID,
			&scheduledDate,
			&status,
			&driverName,
			&driverPhone,
			&vehicleModel,
			&vehiclePlate,
		); err != nil {
			return nil, err
		}

		if assignmentID != nil {
			t.Assignment = &TrackedAssignmentResponse{
				ID:            *assignmentID,
				ScheduledDate: deref(scheduledDate),
				Status:        deref(status),
				DriverName:    deref(driverName),
				DriverPhone:   deref(driverPhone),
				VehicleModel:  deref(vehicleModel),
				VehiclePlate:  deref(vehiclePlate),
			}
		}
		tracked = append(tracked, t)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(tracked) == 0 {
		return nil, errs.NewObjectNotFoundError(ports.EntityServiceRequest, query.Email())
	}

	return tracked, nil
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
