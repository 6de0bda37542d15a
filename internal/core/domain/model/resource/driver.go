package resource

import (
	"errors"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

// Driver is a person who can be allocated to a service request.
type Driver struct {
	id            kernel.ID
	name          string
	phone         string
	email         *string
	licenseNumber string
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
	guard         guard.ConstructorGuard
}

// NewDriver creates an unsaved driver. The license number is unique across
// drivers; the store reports duplicates as a conflict.
func NewDriver(name, phone string, email *string, licenseNumber string, status Status) (*Driver, error) {
	if err := errors.Join(
		requireText("name", name),
		requireText("phone", phone),
		requireText("license_number", licenseNumber),
		KindDriver.ValidateStatus(status),
	); err != nil {
		return nil, err
	}

	return &Driver{
		name:          name,
		phone:         phone,
		email:         email,
		licenseNumber: licenseNumber,
		status:        status,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestoreDriver reconstructs a stored driver.
func RestoreDriver(
	id kernel.ID,
	name, phone string,
	email *string,
	licenseNumber string,
	status Status,
	createdAt, updatedAt time.Time,
) (*Driver, error) {
	if err := errors.Join(id.Validate(), KindDriver.ValidateStatus(status)); err != nil {
		return nil, err
	}

	return &Driver{
		id:            id,
		name:          name,
		phone:         phone,
		email:         email,
		licenseNumber: licenseNumber,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

func (d *Driver) ID() kernel.ID { return d.id }
func (d *Driver) Name() string { return d.name }
func (d *Driver) Phone() string { return d.phone }
func (d *Driver) Email() *string { return d.email }
func (d *Driver) LicenseNumber() string { return d.licenseNumber }
func (d *Driver) Status() Status { return d.status }
func (d *Driver) CreatedAt() time.Time { return d.createdAt }
func (d *Driver) UpdatedAt() time.Time { return d.updatedAt }
func (d *Driver) IsAvailable() bool { return d.status == Available }

func requireText(param, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
