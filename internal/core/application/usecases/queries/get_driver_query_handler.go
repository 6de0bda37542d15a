package queries

import (
	"context"
	"database/sql"

	"dispatch/internal/core/domain/model/resource"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

const driverColumns = `
	id,
	name,
	phone,
	email,
	license_number,
	status`

// GetDriverQueryHandler reads one row of the drivers table.
type GetDriverQueryHandler struct {
	db *gorm.DB
}

func NewGetDriverQueryHandler(db *gorm.DB) GetDriverQueryHandler {
	return GetDriverQueryHandler{db: db}
}

// Handle returns the driver or an ObjectNotFoundError.
func (h GetDriverQueryHandler) Handle(ctx context.Context, query GetDriverQuery) (*DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+driverColumns+`
		FROM drivers
		WHERE id = ?
	`, query.DriverID().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError(resource.KindDriver.String(), query.DriverID().Int64())
	}

	d, err := scanDriver(rows)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func scanDriver(rows *sql.Rows) (DriverResponse, error) {
	var d DriverResponse
	err := rows.Scan(&d.ID, &d.Name, &d.Phone, &d.Email, &d.LicenseNumber, &d.Status)
	return d, err
}
