package queries

import (
	"context"
	"database/sql"

	"dispatch/internal/core/domain/model/resource"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

const vehicleColumns = `
	id,
	model,
	plate_number,
	year,
	capacity,
	status`

// GetVehicleQueryHandler reads one row of the vehicles table.
type GetVehicleQueryHandler struct {
	db *gorm.DB
}

func NewGetVehicleQueryHandler(db *gorm.DB) GetVehicleQueryHandler {
	return GetVehicleQueryHandler{db: db}
}

// Handle returns the vehicle or an ObjectNotFoundError.
func (h GetVehicleQueryHandler) Handle(ctx context.Context, query GetVehicleQuery) (*VehicleResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+vehicleColumns+`
		FROM vehicles
		WHERE id = ?
	`, query.VehicleID().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError(resource.KindVehicle.String(), query.VehicleID().Int64())
	}

	v, err := scanVehicle(rows)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func scanVehicle(rows *sql.Rows) (VehicleResponse, error) {
	var v VehicleResponse
	err := rows.Scan(&v.ID, &v.Model, &v.PlateNumber, &v.Year, &v.Capacity, &v.Status)
	return v, err
}
